package user

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
	mopt "go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "users"
)

type IMongoMapper interface {
	Insert(ctx context.Context, u *User) error
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	Search(ctx context.Context, search string) ([]*User, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// model mapper用到的monc.Model子集
type model interface {
	FindOneNoCache(ctx context.Context, v, filter any, opts ...*mopt.FindOneOptions) error
	InsertOneNoCache(ctx context.Context, document any, opts ...*mopt.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, v, filter any, opts ...*mopt.FindOptions) error
	UpdateOneNoCache(ctx context.Context, filter, update any, opts ...*mopt.UpdateOptions) (*mongo.UpdateResult, error)
	EstimatedDocumentCount(ctx context.Context, opts ...*mopt.EstimatedDocumentCountOptions) (int64, error)
}

type MongoMapper struct {
	conn model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", UserCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// Insert 邮箱为自然键, 先查重再插入
func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	_, err := m.FindOneByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return consts.ErrUserAlreadyExists
	case !errors.Is(err, consts.ErrNotFound):
		return err
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	_, err = m.conn.InsertOneNoCache(ctx, u)
	return err
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// Search 按姓名或邮箱模糊搜索, 为空时返回全部
func (m *MongoMapper) Search(ctx context.Context, search string) ([]*User, error) {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{consts.Email: bson.M{"$regex": search, "$options": "i"}},
		}
	}

	var users []*User
	err := m.conn.Find(ctx, &users, filter)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error) {
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		"$set": bson.M{
			consts.Role:  role,
			"update_time": time.Now(),
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *MongoMapper) EstimatedCount(ctx context.Context) (int64, error) {
	return m.conn.EstimatedDocumentCount(ctx)
}
