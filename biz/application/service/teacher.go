package service

import (
	"context"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/teacher"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ITeacherService interface {
	SubmitApplication(ctx context.Context, req *manage.SubmitTeacherReq) (*manage.SubmitTeacherResp, error)
	ListApplications(ctx context.Context) ([]*manage.TeacherApplicationInfo, error)
	UpdateStatus(ctx context.Context, req *manage.UpdateTeacherStatusReq) (*manage.UpdateTeacherStatusResp, error)
	GetStatusByEmail(ctx context.Context, req *manage.TeacherStatusReq) (*manage.TeacherStatusResp, error)
}

type TeacherService struct {
	TeacherMapper teacher.IMongoMapper
}

var TeacherServiceSet = wire.NewSet(
	wire.Struct(new(TeacherService), "*"),
	wire.Bind(new(ITeacherService), new(*TeacherService)),
)

// SubmitApplication 提交入驻申请, 状态一律从pending开始
func (s *TeacherService) SubmitApplication(ctx context.Context, req *manage.SubmitTeacherReq) (*manage.SubmitTeacherResp, error) {
	if req.Email == "" {
		return nil, consts.ErrMissingFields("email")
	}

	a := new(teacher.Application)
	if err := copier.Copy(a, req); err != nil {
		return nil, consts.ErrInvalidParams
	}

	err := s.TeacherMapper.Insert(ctx, a)
	if err != nil {
		log.Error("提交教师申请失败: %v", err)
		return nil, err
	}

	return &manage.SubmitTeacherResp{
		Message:    "Teacher application submitted",
		InsertedId: a.ID.Hex(),
	}, nil
}

func (s *TeacherService) ListApplications(ctx context.Context) ([]*manage.TeacherApplicationInfo, error) {
	apps, err := s.TeacherMapper.FindAll(ctx)
	if err != nil {
		log.Error("获取教师申请列表失败: %v", err)
		return nil, err
	}
	return lo.Map(apps, func(a *teacher.Application, _ int) *manage.TeacherApplicationInfo {
		return &manage.TeacherApplicationInfo{
			Id:         a.ID.Hex(),
			Name:       a.Name,
			Email:      a.Email,
			Image:      a.Image,
			Experience: a.Experience,
			Title:      a.Title,
			Category:   a.Category,
			Status:     a.Status,
		}
	}), nil
}

func (s *TeacherService) UpdateStatus(ctx context.Context, req *manage.UpdateTeacherStatusReq) (*manage.UpdateTeacherStatusResp, error) {
	if req.Status == "" {
		return nil, consts.ErrMissingFields("status")
	}
	if !validStatus(req.Status) {
		return nil, consts.ErrInvalidStatus
	}

	modified, err := s.TeacherMapper.UpdateStatus(ctx, req.Id, req.Status)
	if err != nil {
		log.Error("更新教师申请状态失败: %v", err)
		return nil, err
	}
	return &manage.UpdateTeacherStatusResp{
		Message:       "Teacher status updated",
		ModifiedCount: modified,
	}, nil
}

func (s *TeacherService) GetStatusByEmail(ctx context.Context, req *manage.TeacherStatusReq) (*manage.TeacherStatusResp, error) {
	a, err := s.TeacherMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	return &manage.TeacherStatusResp{Status: &a.Status}, nil
}

func validStatus(status string) bool {
	switch status {
	case consts.StatusPending, consts.StatusApproved, consts.StatusRejected:
		return true
	}
	return false
}
