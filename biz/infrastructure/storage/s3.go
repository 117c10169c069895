package storage

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/util/log"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Client 生成图片直传用的预签名URL
type S3Client struct {
	svc    *s3.S3
	bucket string
	region string
	expire time.Duration
}

func NewS3Client(config *config.Config) *S3Client {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(config.S3.Region),
		Credentials: credentials.NewStaticCredentials(config.S3.AccessKey, config.S3.SecretKey, ""),
	}))
	return &S3Client{
		svc:    s3.New(sess),
		bucket: config.S3.Bucket,
		region: config.S3.Region,
		expire: time.Duration(config.S3.PresignExpire) * time.Second,
	}
}

// GenUploadUrl 预签名PUT地址和上传后的访问地址
func (c *S3Client) GenUploadUrl(ctx context.Context, fileName, contentType string) (uploadUrl, fileUrl string, err error) {
	key := fmt.Sprintf("uploads/%s/%s-%s", time.Now().Format("2006-01-02"), uuid.NewString(), fileName)

	req, _ := c.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	req.SetContext(ctx)

	uploadUrl, err = req.Presign(c.expire)
	if err != nil {
		log.CtxError(ctx, "生成预签名URL失败: %v", err)
		return "", "", err
	}

	fileUrl = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
	return uploadUrl, fileUrl, nil
}
