package edumanage

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/provider"
	"errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func SubmitTeacherApplication(ctx context.Context, c *app.RequestContext) {
	var req manage.SubmitTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.TeacherService.SubmitApplication(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func ListTeacherApplications(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TeacherService.ListApplications(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func UpdateTeacherStatus(ctx context.Context, c *app.RequestContext) {
	var req manage.UpdateTeacherStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.TeacherService.UpdateStatus(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTeacherStatus 查不到申请时返回status为null
func GetTeacherStatus(ctx context.Context, c *app.RequestContext) {
	var req manage.TeacherStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.TeacherService.GetStatusByEmail(adaptor.InjectContext(ctx, c), &req)
	if errors.Is(err, consts.ErrNotFound) {
		c.JSON(http.StatusNotFound, utils.H{"status": nil})
		return
	}
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
