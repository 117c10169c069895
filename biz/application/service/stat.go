package service

import (
	"context"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/repository/class"
	"edu-manage/biz/infrastructure/repository/enrollment"
	"edu-manage/biz/infrastructure/repository/user"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IStatService interface {
	GetStats(ctx context.Context) (*manage.StatsResp, error)
}

type StatService struct {
	UserMapper       user.IMongoMapper
	ClassMapper      class.IMongoMapper
	EnrollmentMapper enrollment.IMongoMapper
}

var StatServiceSet = wire.NewSet(
	wire.Struct(new(StatService), "*"),
	wire.Bind(new(IStatService), new(*StatService)),
)

// GetStats 首页看板的粗略统计, 用估算计数
func (s *StatService) GetStats(ctx context.Context) (*manage.StatsResp, error) {
	totalUsers, err := s.UserMapper.EstimatedCount(ctx)
	if err != nil {
		log.Error("统计用户数失败: %v", err)
		return nil, err
	}
	totalClasses, err := s.ClassMapper.EstimatedCount(ctx)
	if err != nil {
		log.Error("统计班级数失败: %v", err)
		return nil, err
	}
	totalEnrollments, err := s.EnrollmentMapper.EstimatedCount(ctx)
	if err != nil {
		log.Error("统计报名数失败: %v", err)
		return nil, err
	}

	return &manage.StatsResp{
		TotalUsers:       totalUsers,
		TotalClasses:     totalClasses,
		TotalEnrollments: totalEnrollments,
	}, nil
}
