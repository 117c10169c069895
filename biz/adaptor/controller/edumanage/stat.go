package edumanage

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/provider"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

func GetStats(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.StatService.GetStats(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
