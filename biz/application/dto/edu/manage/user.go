package manage

type IssueTokenReq struct {
	Email string `json:"email"`
}

type IssueTokenResp struct {
	Token string `json:"token"`
}

type CreateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
	Role  string `json:"role"`
}

type CreateUserResp struct {
	Message    string `json:"message"`
	InsertedId string `json:"insertedId"`
}

type GetUserReq struct {
	Email string `path:"email"`
}

type UserInfo struct {
	Id        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

type SearchUsersReq struct {
	Search string `query:"search"`
}

type CheckRoleReq struct {
	Email string `path:"email"`
}

type CheckTeacherResp struct {
	Teacher bool `json:"teacher"`
}

type CheckAdminResp struct {
	Admin bool `json:"admin"`
}

type UpdateRoleReq struct {
	Email string `path:"email"`
	Role  string `json:"role"`
}

type UpdateRoleResp struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

type TeacherDetailsReq struct {
	Email string `path:"email"`
}

type TeacherDetailsResp struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	Email      string `json:"email"`
	Experience string `json:"experience"`
}
