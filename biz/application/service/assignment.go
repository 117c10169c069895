package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/assignment"
	"edu-manage/biz/infrastructure/repository/submission"
	"edu-manage/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *manage.CreateAssignmentReq) (*manage.CreateAssignmentResp, error)
	ListByClass(ctx context.Context, req *manage.ListAssignmentsReq) ([]*manage.AssignmentInfo, error)
	CountByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.CountResp, error)
	IncrementSubmission(ctx context.Context, req *manage.IncrementSubmissionReq) (*manage.IncrementSubmissionResp, error)
	SubmitAssignment(ctx context.Context, req *manage.SubmitAssignmentReq) (*manage.SubmitAssignmentResp, error)
	ListSubmissionsByClass(ctx context.Context, req *manage.CountByClassReq) ([]*manage.SubmissionInfo, error)
	CountSubmissionsByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.SubmissionsCountResp, error)
}

type AssignmentService struct {
	AssignmentMapper assignment.IMongoMapper
	SubmissionMapper submission.IMongoMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

func (s *AssignmentService) CreateAssignment(ctx context.Context, req *manage.CreateAssignmentReq) (*manage.CreateAssignmentResp, error) {
	_, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	if req.ClassId == "" {
		missing = append(missing, "classId")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Deadline == "" {
		missing = append(missing, "deadline")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}

	a := new(assignment.Assignment)
	if err := copier.Copy(a, req); err != nil {
		return nil, consts.ErrInvalidParams
	}

	err = s.AssignmentMapper.Insert(ctx, a)
	if err != nil {
		log.Error("创建作业失败: %v", err)
		return nil, err
	}

	return &manage.CreateAssignmentResp{
		Message: "Assignment created",
		Id:      a.ID.Hex(),
	}, nil
}

func (s *AssignmentService) ListByClass(ctx context.Context, req *manage.ListAssignmentsReq) ([]*manage.AssignmentInfo, error) {
	if req.ClassId == "" {
		return nil, consts.ErrMissingFields("classId")
	}
	assignments, err := s.AssignmentMapper.FindByClassID(ctx, req.ClassId)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, err
	}
	return lo.Map(assignments, func(a *assignment.Assignment, _ int) *manage.AssignmentInfo {
		return &manage.AssignmentInfo{
			Id:              a.ID.Hex(),
			ClassId:         a.ClassID,
			Title:           a.Title,
			Deadline:        a.Deadline,
			Description:     a.Description,
			Image:           a.Image,
			SubmissionCount: a.SubmissionCount,
			CreatedAt:       a.CreateTime.Unix(),
		}
	}), nil
}

func (s *AssignmentService) CountByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.CountResp, error) {
	count, err := s.AssignmentMapper.CountByClassID(ctx, req.ClassId)
	if err != nil {
		log.Error("统计作业数失败: %v", err)
		return nil, err
	}
	return &manage.CountResp{Count: count}, nil
}

func (s *AssignmentService) IncrementSubmission(ctx context.Context, req *manage.IncrementSubmissionReq) (*manage.IncrementSubmissionResp, error) {
	modified, err := s.AssignmentMapper.IncSubmissionCount(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, consts.ErrAssignmentNotFound
	}
	return &manage.IncrementSubmissionResp{
		Success: true,
		Message: "Submission count incremented.",
	}, nil
}

// SubmitAssignment 记录提交并维护作业上的提交计数
func (s *AssignmentService) SubmitAssignment(ctx context.Context, req *manage.SubmitAssignmentReq) (*manage.SubmitAssignmentResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	if req.AssignmentId == "" {
		missing = append(missing, "assignmentId")
	}
	if req.ClassId == "" {
		missing = append(missing, "classId")
	}
	if req.StudentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if req.SubmissionText == "" {
		missing = append(missing, "submissionText")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}
	// 只能以自己的身份提交
	if req.StudentEmail != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	sub := &submission.Submission{
		AssignmentID:   req.AssignmentId,
		ClassID:        req.ClassId,
		StudentEmail:   req.StudentEmail,
		SubmissionText: req.SubmissionText,
	}
	if req.SubmittedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.SubmittedAt); err == nil {
			sub.SubmitTime = t
		}
	}

	err = s.SubmissionMapper.Insert(ctx, sub)
	if err != nil {
		log.Error("提交作业失败: %v", err)
		return nil, err
	}

	// 计数失败不影响主流程
	if _, err := s.AssignmentMapper.IncSubmissionCount(ctx, req.AssignmentId); err != nil {
		log.Error("更新提交计数失败: %v", err)
	}

	return &manage.SubmitAssignmentResp{
		Message: "Assignment submitted successfully",
		Id:      sub.ID.Hex(),
	}, nil
}

// ListSubmissionsByClass 班级下没有任何提交时返回404
func (s *AssignmentService) ListSubmissionsByClass(ctx context.Context, req *manage.CountByClassReq) ([]*manage.SubmissionInfo, error) {
	_, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	submissions, err := s.SubmissionMapper.FindByClassID(ctx, req.ClassId)
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, consts.ErrNoSubmissions
	}
	return lo.Map(submissions, func(sub *submission.Submission, _ int) *manage.SubmissionInfo {
		return &manage.SubmissionInfo{
			Id:             sub.ID.Hex(),
			AssignmentId:   sub.AssignmentID,
			ClassId:        sub.ClassID,
			StudentEmail:   sub.StudentEmail,
			SubmissionText: sub.SubmissionText,
			SubmittedAt:    sub.SubmitTime.Unix(),
		}
	}), nil
}

func (s *AssignmentService) CountSubmissionsByClass(ctx context.Context, req *manage.CountByClassReq) (*manage.SubmissionsCountResp, error) {
	count, err := s.SubmissionMapper.CountByClassID(ctx, req.ClassId)
	if err != nil {
		log.Error("统计提交数失败: %v", err)
		return nil, err
	}
	return &manage.SubmissionsCountResp{TotalSubmissions: count}, nil
}
