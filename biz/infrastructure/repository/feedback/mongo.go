package feedback

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
	prefixFeedbackCacheKey = "cache:feedback"
	FeedbackCollectionName = "feedbacks"
)

type IMongoMapper interface {
	Insert(ctx context.Context, f *Feedback) error
	FindLatest(ctx context.Context, limit int64) ([]*Feedback, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewFeedbackMongoMapper collection: %s", FeedbackCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, FeedbackCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, f *Feedback) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
		f.CreateTime = time.Now()
		f.UpdateTime = f.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, f)
	return err
}

// FindLatest 最新的若干条反馈
func (m *MongoMapper) FindLatest(ctx context.Context, limit int64) ([]*Feedback, error) {
	var feedbacks []*Feedback
	err := m.conn.Find(ctx, &feedbacks, bson.M{}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
