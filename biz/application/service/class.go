package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/basic"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/class"
	"edu-manage/biz/infrastructure/util/log"
	util "edu-manage/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *manage.CreateClassReq) (*manage.CreateClassResp, error)
	ListByTeacher(ctx context.Context, req *manage.ListClassesByTeacherReq) ([]*manage.ClassInfo, error)
	ListAll(ctx context.Context) ([]*manage.ClassInfo, error)
	ListApproved(ctx context.Context, req *manage.ListApprovedClassesReq) (*manage.ListApprovedClassesResp, error)
	TopEnrolled(ctx context.Context) ([]*manage.ClassInfo, error)
	GetClass(ctx context.Context, req *manage.GetClassReq) (*manage.ClassInfo, error)
	UpdateClass(ctx context.Context, req *manage.UpdateClassReq) (*manage.UpdateClassResp, error)
	DeleteClass(ctx context.Context, req *manage.DeleteClassReq) (*basic.Response, error)
}

type ClassService struct {
	ClassMapper class.IMongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 提交班级, 归属取token里的邮箱
func (s *ClassService) CreateClass(ctx context.Context, req *manage.CreateClassReq) (*manage.CreateClassResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, consts.ErrMissingFields("title")
	}
	// 不信任请求体里的邮箱
	if req.Email != "" && req.Email != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	c := new(class.Class)
	if err := copier.Copy(c, req); err != nil {
		return nil, consts.ErrInvalidParams
	}
	c.Email = meta.GetEmail()

	err = s.ClassMapper.Insert(ctx, c)
	if err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, err
	}

	return &manage.CreateClassResp{
		Message:    "Class submitted",
		InsertedId: c.ID.Hex(),
	}, nil
}

func (s *ClassService) ListByTeacher(ctx context.Context, req *manage.ListClassesByTeacherReq) ([]*manage.ClassInfo, error) {
	if req.Email == "" {
		return nil, consts.ErrMissingFields("email")
	}
	classes, err := s.ClassMapper.FindByTeacherEmail(ctx, req.Email)
	if err != nil {
		log.Error("获取班级列表失败: %v", err)
		return nil, err
	}
	return classInfos(classes), nil
}

func (s *ClassService) ListAll(ctx context.Context) ([]*manage.ClassInfo, error) {
	classes, err := s.ClassMapper.FindAll(ctx)
	if err != nil {
		log.Error("获取全部班级失败: %v", err)
		return nil, err
	}
	return classInfos(classes), nil
}

// ListApproved 已过审班级分页列表
func (s *ClassService) ListApproved(ctx context.Context, req *manage.ListApprovedClassesReq) (*manage.ListApprovedClassesResp, error) {
	skip, limit := util.ParsePageOpt(&basic.PaginationOptions{
		Page:  req.Page,
		Limit: req.Limit,
	})

	classes, total, err := s.ClassMapper.FindApproved(ctx, skip, limit)
	if err != nil {
		log.Error("获取已过审班级失败: %v", err)
		return nil, err
	}

	return &manage.ListApprovedClassesResp{
		Data:        classInfos(classes),
		TotalItems:  total,
		TotalPages:  util.TotalPages(total, limit),
		CurrentPage: skip/limit + 1,
	}, nil
}

// TopEnrolled 报名数实时统计的前几名
func (s *ClassService) TopEnrolled(ctx context.Context) ([]*manage.ClassInfo, error) {
	classes, err := s.ClassMapper.FindTopEnrolled(ctx)
	if err != nil {
		log.Error("获取热门班级失败: %v", err)
		return nil, err
	}
	return classInfos(classes), nil
}

func (s *ClassService) GetClass(ctx context.Context, req *manage.GetClassReq) (*manage.ClassInfo, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return classInfo(c), nil
}

// UpdateClass 部分更新, 只动带了的字段
func (s *ClassService) UpdateClass(ctx context.Context, req *manage.UpdateClassReq) (*manage.UpdateClassResp, error) {
	_, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, consts.ErrInvalidStatus
		}
		patch[consts.Status] = *req.Status
	}
	if len(patch) == 0 {
		return nil, consts.ErrInvalidParams
	}

	modified, err := s.ClassMapper.Update(ctx, req.Id, patch)
	if err != nil {
		log.Error("更新班级失败: %v", err)
		return nil, err
	}
	return &manage.UpdateClassResp{
		Message:       "Class updated",
		ModifiedCount: modified,
	}, nil
}

func (s *ClassService) DeleteClass(ctx context.Context, req *manage.DeleteClassReq) (*basic.Response, error) {
	_, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.ClassMapper.Delete(ctx, req.Id)
	if err != nil {
		log.Error("删除班级失败: %v", err)
		return nil, err
	}
	if deleted == 0 {
		return nil, consts.ErrClassNotFound
	}
	return &basic.Response{Message: "Class deleted successfully"}, nil
}

func classInfo(c *class.Class) *manage.ClassInfo {
	return &manage.ClassInfo{
		Id:            c.ID.Hex(),
		Title:         c.Title,
		Name:          c.Name,
		Email:         c.Email,
		Price:         c.Price,
		Description:   c.Description,
		Image:         c.Image,
		Status:        c.Status,
		TotalEnrolled: c.TotalEnrolled,
		CreatedAt:     c.CreateTime.Unix(),
	}
}

func classInfos(classes []*class.Class) []*manage.ClassInfo {
	return lo.Map(classes, func(c *class.Class, _ int) *manage.ClassInfo {
		return classInfo(c)
	})
}
