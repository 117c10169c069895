package manage

type SubmitTeacherReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	Experience string `json:"experience"`
	Title      string `json:"title"`
	Category   string `json:"category"`
}

type SubmitTeacherResp struct {
	Message    string `json:"message"`
	InsertedId string `json:"insertedId"`
}

type TeacherApplicationInfo struct {
	Id         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	Experience string `json:"experience"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Status     string `json:"status"`
}

type UpdateTeacherStatusReq struct {
	Id     string `path:"id"`
	Status string `json:"status"`
}

type UpdateTeacherStatusResp struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

type TeacherStatusReq struct {
	Email string `path:"email"`
}

type TeacherStatusResp struct {
	Status *string `json:"status"`
}
