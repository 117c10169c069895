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

func Enroll(ctx context.Context, c *app.RequestContext) {
	var req manage.EnrollReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.Enroll(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func CheckEnrollment(ctx context.Context, c *app.RequestContext) {
	var req manage.CheckEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.CheckEnrollment(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func EnrollmentHistory(ctx context.Context, c *app.RequestContext) {
	var req manage.EnrollmentHistoryReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.HistoryByStudent(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func EnrollmentHistoryAll(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.EnrollmentService.HistoryAll(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func MyEnrollments(ctx context.Context, c *app.RequestContext) {
	var req manage.MyEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.MyEnrollments(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func CountEnrollments(ctx context.Context, c *app.RequestContext) {
	var req manage.CountByClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.CountByClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
