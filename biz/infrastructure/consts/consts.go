package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID            = "_id"
	Email         = "email"
	Status        = "status"
	Role          = "role"
	ClassID       = "class_id"
	StudentEmail  = "student_email"
	CreateTime    = "create_time"
	TotalEnrolled = "total_enrolled"
)

// 角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleUser    = "user"
)

// 审核状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// 支付
const (
	PaymentUnpaid = "unpaid"
)

// 默认值
const (
	DefaultName      = "Unknown"
	DefaultAvatar    = "https://i.ibb.co/4pDNDk1/avatar.png"
	TopEnrolledLimit = 4
	LatestFeedbacks  = 10
)
