package controller

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

func Ping(ctx context.Context, c *app.RequestContext) {
	c.String(http.StatusOK, "pong")
}
