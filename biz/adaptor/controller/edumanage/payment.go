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

func CreatePaymentIntent(ctx context.Context, c *app.RequestContext) {
	var req manage.CreatePaymentIntentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.CreatePaymentIntent(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
