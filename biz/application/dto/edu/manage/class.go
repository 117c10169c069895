package manage

type CreateClassReq struct {
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type CreateClassResp struct {
	Message    string `json:"message"`
	InsertedId string `json:"insertedId"`
}

type ClassInfo struct {
	Id            string  `json:"_id"`
	Title         string  `json:"title"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Status        string  `json:"status"`
	TotalEnrolled int64   `json:"totalEnrolled"`
	CreatedAt     int64   `json:"createdAt"`
}

type ListClassesByTeacherReq struct {
	Email string `query:"email"`
}

type GetClassReq struct {
	Id string `path:"id"`
}

type UpdateClassReq struct {
	Id          string   `path:"id"`
	Title       *string  `json:"title,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type UpdateClassResp struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

type DeleteClassReq struct {
	Id string `path:"id"`
}

type ListApprovedClassesReq struct {
	Page  *int64 `query:"page"`
	Limit *int64 `query:"limit"`
}

type ListApprovedClassesResp struct {
	Data        []*ClassInfo `json:"data"`
	TotalItems  int64        `json:"totalItems"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
}
