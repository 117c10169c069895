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

func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req manage.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req manage.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.ListByClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func CountAssignments(ctx context.Context, c *app.RequestContext) {
	var req manage.CountByClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CountByClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func IncrementSubmission(ctx context.Context, c *app.RequestContext) {
	var req manage.IncrementSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.IncrementSubmission(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func SubmitAssignment(ctx context.Context, c *app.RequestContext) {
	var req manage.SubmitAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.SubmitAssignment(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func ListSubmissions(ctx context.Context, c *app.RequestContext) {
	var req manage.CountByClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.ListSubmissionsByClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func CountSubmissions(ctx context.Context, c *app.RequestContext) {
	var req manage.CountByClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CountSubmissionsByClass(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
