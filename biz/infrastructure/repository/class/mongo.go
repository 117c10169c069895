package class

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/enrollment"
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
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "classes"
)

type IMongoMapper interface {
	Insert(ctx context.Context, c *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindByTeacherEmail(ctx context.Context, email string) ([]*Class, error)
	FindAll(ctx context.Context) ([]*Class, error)
	FindApproved(ctx context.Context, skip, limit int64) ([]*Class, int64, error)
	FindTopEnrolled(ctx context.Context) ([]*Class, error)
	Update(ctx context.Context, id string, patch bson.M) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	IncTotalEnrolled(ctx context.Context, id string, increment int64) error
	EstimatedCount(ctx context.Context) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	// 新建班级待审核, 报名数从0开始
	c.Status = consts.StatusPending
	c.TotalEnrolled = 0
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByTeacherEmail(ctx context.Context, email string) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{consts.Email: email}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// FindApproved 分页查询已过审班级, 按报名数降序
func (m *MongoMapper) FindApproved(ctx context.Context, skip, limit int64) ([]*Class, int64, error) {
	filter := bson.M{consts.Status: consts.StatusApproved}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var classes []*Class
	err = m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.D{{Key: consts.TotalEnrolled, Value: -1}, {Key: consts.ID, Value: 1}},
	})
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

// FindTopEnrolled 报名最多的前几个已过审班级
// 报名数通过关联enrollments实时统计, 不信任冗余计数字段
func (m *MongoMapper) FindTopEnrolled(ctx context.Context) ([]*Class, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{consts.Status: consts.StatusApproved}}},
		// enrollments存的是班级id的hex字符串, 先转换再关联
		bson.D{{Key: "$addFields", Value: bson.M{"id_hex": bson.M{"$toString": "$_id"}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         enrollment.EnrollmentCollectionName,
			"localField":   "id_hex",
			"foreignField": consts.ClassID,
			"as":           "enrollments",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{consts.TotalEnrolled: bson.M{"$size": "$enrollments"}}}},
		bson.D{{Key: "$sort", Value: bson.M{consts.TotalEnrolled: -1}}},
		bson.D{{Key: "$limit", Value: consts.TopEnrolledLimit}},
		bson.D{{Key: "$project", Value: bson.M{"enrollments": 0, "id_hex": 0}}},
	}

	var classes []*Class
	err := m.conn.Aggregate(ctx, &classes, pipeline)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// Update 部分更新, 只替换patch里的字段
func (m *MongoMapper) Update(ctx context.Context, id string, patch bson.M) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	patch["update_time"] = time.Now()
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	return m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
}

// IncTotalEnrolled 报名成功后维护冗余计数
func (m *MongoMapper) IncTotalEnrolled(ctx context.Context, id string, increment int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$inc": bson.M{
			consts.TotalEnrolled: increment,
		},
		"$set": bson.M{
			"update_time": time.Now(),
		},
	})
	return err
}

func (m *MongoMapper) EstimatedCount(ctx context.Context) (int64, error) {
	return m.conn.EstimatedDocumentCount(ctx)
}
