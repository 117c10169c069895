package submission

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submissions"
)

type IMongoMapper interface {
	Insert(ctx context.Context, s *Submission) error
	FindByClassID(ctx context.Context, classID string) ([]*Submission, error)
	CountByClassID(ctx context.Context, classID string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Submission) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	if s.SubmitTime.IsZero() {
		s.SubmitTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) FindByClassID(ctx context.Context, classID string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.ClassID: classID}, &options.FindOptions{
		Sort: bson.M{"submit_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoMapper) CountByClassID(ctx context.Context, classID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.ClassID: classID})
}
