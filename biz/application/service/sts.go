package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/storage"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IStsService interface {
	GenUploadUrl(ctx context.Context, req *manage.GenUploadUrlReq) (*manage.GenUploadUrlResp, error)
}

type StsService struct {
	S3Client *storage.S3Client
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// GenUploadUrl 图片直传S3用的预签名地址
func (s *StsService) GenUploadUrl(ctx context.Context, req *manage.GenUploadUrlReq) (*manage.GenUploadUrlResp, error) {
	_, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	if req.FileName == "" {
		missing = append(missing, "fileName")
	}
	if req.ContentType == "" {
		missing = append(missing, "contentType")
	}
	if len(missing) > 0 {
		return nil, consts.ErrMissingFields(missing...)
	}

	uploadUrl, fileUrl, err := s.S3Client.GenUploadUrl(ctx, req.FileName, req.ContentType)
	if err != nil {
		log.CtxError(ctx, "生成上传地址失败: %v", err)
		return nil, consts.ErrCall
	}

	return &manage.GenUploadUrlResp{
		UploadUrl: uploadUrl,
		FileUrl:   fileUrl,
	}, nil
}
