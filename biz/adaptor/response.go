package adaptor

import (
	"context"
	"edu-manage/biz/infrastructure/util/log"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPStatus 错误码到HTTP状态码
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail 统一错误出口, 内部错误只记日志不回显细节
func Fail(ctx context.Context, c *app.RequestContext, err error) {
	st, _ := status.FromError(err)
	httpCode := HTTPStatus(st.Code())
	msg := st.Message()
	if httpCode == http.StatusInternalServerError {
		log.CtxError(ctx, "internal error: %v", err)
		msg = "Server error"
	}
	c.JSON(httpCode, utils.H{"message": msg})
}
