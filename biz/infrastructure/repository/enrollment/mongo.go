package enrollment

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/util/log"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixEnrollmentCacheKey = "cache:enrollment"
	EnrollmentCollectionName = "enrollments"
)

type IMongoMapper interface {
	Insert(ctx context.Context, e *Enrollment) error
	FindOneByStudentAndClass(ctx context.Context, studentEmail, classID string) (*Enrollment, error)
	FindByStudentEmail(ctx context.Context, studentEmail string) ([]*Enrollment, error)
	FindAll(ctx context.Context) ([]*Enrollment, error)
	CountByClassID(ctx context.Context, classID string) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// model mapper用到的monc.Model子集
type model interface {
	FindOneNoCache(ctx context.Context, v, filter any, opts ...*options.FindOneOptions) error
	InsertOneNoCache(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, v, filter any, opts ...*options.FindOptions) error
	CountDocuments(ctx context.Context, filter any, opts ...*options.CountOptions) (int64, error)
	EstimatedDocumentCount(ctx context.Context, opts ...*options.EstimatedDocumentCountOptions) (int64, error)
}

type MongoMapper struct {
	conn model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewEnrollmentMongoMapper collection: %s", EnrollmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, EnrollmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// Insert (student_email, class_id)为自然键, 先查重再插入
func (m *MongoMapper) Insert(ctx context.Context, e *Enrollment) error {
	_, err := m.FindOneByStudentAndClass(ctx, e.StudentEmail, e.ClassID)
	switch {
	case err == nil:
		return consts.ErrAlreadyEnrolled
	case !errors.Is(err, consts.ErrNotFound):
		return err
	}

	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
		e.CreateTime = time.Now()
		e.UpdateTime = e.CreateTime
	}
	if e.PaymentStatus == "" {
		e.PaymentStatus = consts.PaymentUnpaid
	}
	if e.EnrollTime.IsZero() {
		e.EnrollTime = time.Now()
	}
	_, err = m.conn.InsertOneNoCache(ctx, e)
	return err
}

func (m *MongoMapper) FindOneByStudentAndClass(ctx context.Context, studentEmail, classID string) (*Enrollment, error) {
	var e Enrollment
	err := m.conn.FindOneNoCache(ctx, &e, bson.M{
		consts.StudentEmail: studentEmail,
		consts.ClassID:      classID,
	})
	switch {
	case err == nil:
		return &e, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByStudentEmail(ctx context.Context, studentEmail string) ([]*Enrollment, error) {
	var enrollments []*Enrollment
	err := m.conn.Find(ctx, &enrollments, bson.M{consts.StudentEmail: studentEmail}, &options.FindOptions{
		Sort: bson.M{"enroll_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Enrollment, error) {
	var enrollments []*Enrollment
	err := m.conn.Find(ctx, &enrollments, bson.M{}, &options.FindOptions{
		Sort: bson.M{"enroll_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (m *MongoMapper) CountByClassID(ctx context.Context, classID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.ClassID: classID})
}

func (m *MongoMapper) EstimatedCount(ctx context.Context) (int64, error) {
	return m.conn.EstimatedDocumentCount(ctx)
}
