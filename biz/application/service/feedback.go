package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/feedback"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IFeedbackService interface {
	Submit(ctx context.Context, req *manage.SubmitFeedbackReq) (*manage.SubmitFeedbackResp, error)
	ListLatest(ctx context.Context) ([]*manage.FeedbackInfo, error)
}

type FeedbackService struct {
	FeedbackMapper feedback.IMongoMapper
}

var FeedbackServiceSet = wire.NewSet(
	wire.Struct(new(FeedbackService), "*"),
	wire.Bind(new(IFeedbackService), new(*FeedbackService)),
)

func (s *FeedbackService) Submit(ctx context.Context, req *manage.SubmitFeedbackReq) (*manage.SubmitFeedbackResp, error) {
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
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.Rating == 0 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}
	if req.StudentEmail != meta.GetEmail() {
		return nil, consts.ErrEmailMismatch
	}

	f := &feedback.Feedback{
		StudentEmail: req.StudentEmail,
		ClassID:      req.ClassId,
		Description:  req.Description,
		Rating:       req.Rating,
	}
	if req.Image != "" {
		f.Image = &req.Image
	}

	err = s.FeedbackMapper.Insert(ctx, f)
	if err != nil {
		log.Error("保存反馈失败: %v", err)
		return nil, err
	}

	return &manage.SubmitFeedbackResp{
		Message: "Feedback saved",
		Id:      f.ID.Hex(),
	}, nil
}

func (s *FeedbackService) ListLatest(ctx context.Context) ([]*manage.FeedbackInfo, error) {
	feedbacks, err := s.FeedbackMapper.FindLatest(ctx, consts.LatestFeedbacks)
	if err != nil {
		log.Error("获取反馈失败: %v", err)
		return nil, err
	}
	return lo.Map(feedbacks, func(f *feedback.Feedback, _ int) *manage.FeedbackInfo {
		return &manage.FeedbackInfo{
			Id:           f.ID.Hex(),
			StudentEmail: f.StudentEmail,
			ClassId:      f.ClassID,
			Description:  f.Description,
			Rating:       f.Rating,
			Image:        f.Image,
			CreatedAt:    f.CreateTime.Unix(),
		}
	}), nil
}
