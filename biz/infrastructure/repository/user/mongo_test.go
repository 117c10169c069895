package user

import (
	"context"
	"edu-manage/biz/infrastructure/consts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/mongo"
	mopt "go.mongodb.org/mongo-driver/mongo/options"
)

type fakeModel struct {
	existing *User
	inserted int
}

func (f *fakeModel) FindOneNoCache(ctx context.Context, v, filter any, opts ...*mopt.FindOneOptions) error {
	if f.existing == nil {
		return monc.ErrNotFound
	}
	*v.(*User) = *f.existing
	return nil
}

func (f *fakeModel) InsertOneNoCache(ctx context.Context, document any, opts ...*mopt.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.inserted++
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeModel) Find(ctx context.Context, v, filter any, opts ...*mopt.FindOptions) error {
	return nil
}

func (f *fakeModel) UpdateOneNoCache(ctx context.Context, filter, update any, opts ...*mopt.UpdateOptions) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (f *fakeModel) EstimatedDocumentCount(ctx context.Context, opts ...*mopt.EstimatedDocumentCountOptions) (int64, error) {
	return 0, nil
}

func TestInsertDuplicateEmail(t *testing.T) {
	f := &fakeModel{existing: &User{Email: "alice@example.com"}}
	m := &MongoMapper{conn: f}

	err := m.Insert(context.Background(), &User{Email: "alice@example.com"})
	assert.ErrorIs(t, err, consts.ErrUserAlreadyExists)
	assert.Zero(t, f.inserted, "duplicate email must not write a second record")
}

func TestInsertFreshEmail(t *testing.T) {
	f := &fakeModel{}
	m := &MongoMapper{conn: f}

	u := &User{Email: "alice@example.com"}
	require.NoError(t, m.Insert(context.Background(), u))
	assert.Equal(t, 1, f.inserted)
	assert.False(t, u.ID.IsZero())
	assert.False(t, u.CreateTime.IsZero())
}
