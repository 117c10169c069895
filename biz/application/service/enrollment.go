package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/class"
	"edu-manage/biz/infrastructure/repository/enrollment"
	"edu-manage/biz/infrastructure/util/log"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IEnrollmentService interface {
	Enroll(ctx context.Context, req *manage.EnrollReq) (*manage.EnrollResp, error)
	CheckEnrollment(ctx context.Context, req *manage.CheckEnrollmentReq) ([]*manage.EnrollmentInfo, error)
	HistoryByStudent(ctx context.Context, req *manage.EnrollmentHistoryReq) ([]*manage.EnrollmentInfo, error)
	HistoryAll(ctx context.Context) ([]*manage.EnrollmentInfo, error)
	MyEnrollments(ctx context.Context, req *manage.MyEnrollmentsReq) ([]*manage.EnrollmentInfo, error)
	CountByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.CountResp, error)
}

type EnrollmentService struct {
	EnrollmentMapper enrollment.IMongoMapper
	ClassMapper      class.IMongoMapper
}

var EnrollmentServiceSet = wire.NewSet(
	wire.Struct(new(EnrollmentService), "*"),
	wire.Bind(new(IEnrollmentService), new(*EnrollmentService)),
)

// Enroll 报名班级, 重复报名返回Conflict且不改计数
func (s *EnrollmentService) Enroll(ctx context.Context, req *manage.EnrollReq) (*manage.EnrollResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	if req.StudentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if req.ClassId == "" {
		missing = append(missing, "classId")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}
	// 只能给自己报名
	if req.StudentEmail != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	e := new(enrollment.Enrollment)
	if err := copier.Copy(e, req); err != nil {
		return nil, consts.ErrInvalidParams
	}
	e.ClassID = req.ClassId

	err = s.EnrollmentMapper.Insert(ctx, e)
	if err != nil {
		return nil, err
	}

	// 报名成功后维护班级上的冗余计数, 失败只记日志
	if err := s.ClassMapper.IncTotalEnrolled(ctx, req.ClassId, 1); err != nil {
		log.Error("更新班级报名计数失败: %v", err)
	}

	return &manage.EnrollResp{
		Message:    "Enrollment successful",
		InsertedId: e.ID.Hex(),
	}, nil
}

// CheckEnrollment 查某学生是否已报名, 返回空数组或单元素数组
func (s *EnrollmentService) CheckEnrollment(ctx context.Context, req *manage.CheckEnrollmentReq) ([]*manage.EnrollmentInfo, error) {
	var missing []string
	if req.StudentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if req.ClassId == "" {
		missing = append(missing, "classId")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}

	e, err := s.EnrollmentMapper.FindOneByStudentAndClass(ctx, req.StudentEmail, req.ClassId)
	if errors.Is(err, consts.ErrNotFound) {
		return []*manage.EnrollmentInfo{}, nil
	} else if err != nil {
		return nil, err
	}
	return []*manage.EnrollmentInfo{enrollmentInfo(e)}, nil
}

// HistoryByStudent 只允许查自己的报名记录
func (s *EnrollmentService) HistoryByStudent(ctx context.Context, req *manage.EnrollmentHistoryReq) ([]*manage.EnrollmentInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if req.StudentEmail == "" {
		return nil, consts.ErrMissingFields("studentEmail")
	}
	if req.StudentEmail != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	enrollments, err := s.EnrollmentMapper.FindByStudentEmail(ctx, req.StudentEmail)
	if err != nil {
		log.Error("获取报名记录失败: %v", err)
		return nil, err
	}
	return enrollmentInfos(enrollments), nil
}

func (s *EnrollmentService) HistoryAll(ctx context.Context) ([]*manage.EnrollmentInfo, error) {
	enrollments, err := s.EnrollmentMapper.FindAll(ctx)
	if err != nil {
		log.Error("获取全部报名记录失败: %v", err)
		return nil, err
	}
	return enrollmentInfos(enrollments), nil
}

func (s *EnrollmentService) MyEnrollments(ctx context.Context, req *manage.MyEnrollmentsReq) ([]*manage.EnrollmentInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if req.StudentEmail == "" {
		return nil, consts.ErrMissingFields("studentEmail")
	}
	if req.StudentEmail != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	enrollments, err := s.EnrollmentMapper.FindByStudentEmail(ctx, req.StudentEmail)
	if err != nil {
		log.Error("获取我的报名失败: %v", err)
		return nil, err
	}
	return enrollmentInfos(enrollments), nil
}

func (s *EnrollmentService) CountByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.CountResp, error) {
	count, err := s.EnrollmentMapper.CountByClassID(ctx, req.ClassId)
	if err != nil {
		log.Error("统计报名数失败: %v", err)
		return nil, err
	}
	return &manage.CountResp{Count: count}, nil
}

// enrollmentInfo 老数据可能缺字段, 给默认值兜底
func enrollmentInfo(e *enrollment.Enrollment) *manage.EnrollmentInfo {
	paymentStatus := e.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = consts.PaymentUnpaid
	}
	enrolledAt := e.EnrollTime
	if enrolledAt.IsZero() {
		enrolledAt = time.Now()
	}
	return &manage.EnrollmentInfo{
		Id:            e.ID.Hex(),
		StudentEmail:  e.StudentEmail,
		ClassId:       e.ClassID,
		Title:         e.Title,
		Image:         e.Image,
		Price:         e.Price,
		PaymentStatus: paymentStatus,
		EnrolledAt:    enrolledAt.Unix(),
	}
}

func enrollmentInfos(enrollments []*enrollment.Enrollment) []*manage.EnrollmentInfo {
	return lo.Map(enrollments, func(e *enrollment.Enrollment, _ int) *manage.EnrollmentInfo {
		return enrollmentInfo(e)
	})
}
