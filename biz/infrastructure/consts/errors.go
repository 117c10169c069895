package consts

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// ErrMissingFields 缺少必填字段
func ErrMissingFields(fields ...string) *Errno {
	return NewErrno(codes.InvalidArgument, fmt.Errorf("missing required fields: %s", strings.Join(fields, ", ")))
}

// 定义常量错误
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("Unauthorized"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden token"))
	ErrEmailMismatch     = NewErrno(codes.PermissionDenied, errors.New("email does not match the signed-in user"))

	ErrUserAlreadyExists = NewErrno(codes.AlreadyExists, errors.New("User already exists"))
	ErrAlreadyEnrolled   = NewErrno(codes.AlreadyExists, errors.New("Already enrolled"))

	ErrUserNotFound       = NewErrno(codes.NotFound, errors.New("User not found"))
	ErrTeacherNotFound    = NewErrno(codes.NotFound, errors.New("Teacher not found"))
	ErrClassNotFound      = NewErrno(codes.NotFound, errors.New("Class not found"))
	ErrAssignmentNotFound = NewErrno(codes.NotFound, errors.New("Assignment not found"))
	ErrNoSubmissions      = NewErrno(codes.NotFound, errors.New("No submissions found"))

	ErrInvalidStatus = NewErrno(codes.InvalidArgument, errors.New("invalid status"))
	ErrInvalidPrice  = NewErrno(codes.InvalidArgument, errors.New("Price is required"))
	ErrPayment       = NewErrno(codes.Internal, errors.New("payment provider error"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("Invalid ID"))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("update failed"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("call failed"))
)
