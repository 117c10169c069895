package edumanage

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/provider"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func SubmitFeedback(ctx context.Context, c *app.RequestContext) {
	var req manage.SubmitFeedbackReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.FeedbackService.Submit(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func ListLatestFeedback(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.FeedbackService.ListLatest(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
