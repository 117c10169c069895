package teacher

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixTeacherCacheKey = "cache:teacher"
	TeacherCollectionName = "teachers"
)

type IMongoMapper interface {
	Insert(ctx context.Context, a *Application) error
	FindAll(ctx context.Context) ([]*Application, error)
	FindOneByEmail(ctx context.Context, email string) (*Application, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTeacherMongoMapper collection: %s", TeacherCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TeacherCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Application) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	// 提交时一律置为待审核
	a.Status = consts.StatusPending
	_, err := m.conn.InsertOneNoCache(ctx, a)
	return err
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Application, error) {
	var apps []*Application
	err := m.conn.Find(ctx, &apps, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*Application, error) {
	var a Application
	err := m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$set": bson.M{
			consts.Status: status,
			"update_time": time.Now(),
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
