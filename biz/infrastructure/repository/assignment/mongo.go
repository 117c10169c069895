package assignment

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
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignments"
)

type IMongoMapper interface {
	Insert(ctx context.Context, a *Assignment) error
	FindByClassID(ctx context.Context, classID string) ([]*Assignment, error)
	CountByClassID(ctx context.Context, classID string) (int64, error)
	IncSubmissionCount(ctx context.Context, id string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAssignmentMongoMapper collection: %s", AssignmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Assignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, a)
	return err
}

func (m *MongoMapper) FindByClassID(ctx context.Context, classID string) ([]*Assignment, error) {
	var assignments []*Assignment
	err := m.conn.Find(ctx, &assignments, bson.M{consts.ClassID: classID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (m *MongoMapper) CountByClassID(ctx context.Context, classID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.ClassID: classID})
}

// IncSubmissionCount 提交作业后维护提交计数
func (m *MongoMapper) IncSubmissionCount(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$inc": bson.M{
			"submission_count": 1,
		},
		"$set": bson.M{
			"update_time": time.Now(),
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
