package basic

// UserMeta 请求上下文中的用户身份, 从token解出
type UserMeta struct {
	Email string `json:"email" mapstructure:"email"`
}

func (m *UserMeta) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty"`
	Limit *int64 `json:"limit,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}
