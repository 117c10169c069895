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

func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req manage.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func ListClassesByTeacher(ctx context.Context, c *app.RequestContext) {
	var req manage.ListClassesByTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListByTeacher(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func ListAllClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.ListAll(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func ListApprovedClasses(ctx context.Context, c *app.RequestContext) {
	var req manage.ListApprovedClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListApproved(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func TopEnrolledClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.TopEnrolled(adaptor.InjectContext(ctx, c))
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func GetClass(ctx context.Context, c *app.RequestContext) {
	var req manage.GetClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func UpdateClass(ctx context.Context, c *app.RequestContext) {
	var req manage.UpdateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req manage.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
