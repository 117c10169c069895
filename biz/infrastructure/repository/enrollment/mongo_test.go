package enrollment

import (
	"context"
	"edu-manage/biz/infrastructure/consts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeModel struct {
	existing *Enrollment
	inserted int
}

func (f *fakeModel) FindOneNoCache(ctx context.Context, v, filter any, opts ...*options.FindOneOptions) error {
	if f.existing == nil {
		return monc.ErrNotFound
	}
	*v.(*Enrollment) = *f.existing
	return nil
}

func (f *fakeModel) InsertOneNoCache(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.inserted++
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeModel) Find(ctx context.Context, v, filter any, opts ...*options.FindOptions) error {
	return nil
}

func (f *fakeModel) CountDocuments(ctx context.Context, filter any, opts ...*options.CountOptions) (int64, error) {
	return 0, nil
}

func (f *fakeModel) EstimatedDocumentCount(ctx context.Context, opts ...*options.EstimatedDocumentCountOptions) (int64, error) {
	return 0, nil
}

func TestInsertDuplicateEnrollment(t *testing.T) {
	f := &fakeModel{existing: &Enrollment{StudentEmail: "alice@example.com", ClassID: "abc"}}
	m := &MongoMapper{conn: f}

	err := m.Insert(context.Background(), &Enrollment{StudentEmail: "alice@example.com", ClassID: "abc"})
	assert.ErrorIs(t, err, consts.ErrAlreadyEnrolled)
	assert.Zero(t, f.inserted, "duplicate enrollment must not write a second record")
}

func TestInsertFreshEnrollment(t *testing.T) {
	f := &fakeModel{}
	m := &MongoMapper{conn: f}

	e := &Enrollment{StudentEmail: "alice@example.com", ClassID: "abc"}
	require.NoError(t, m.Insert(context.Background(), e))
	assert.Equal(t, 1, f.inserted)
	assert.False(t, e.ID.IsZero())
	assert.Equal(t, consts.PaymentUnpaid, e.PaymentStatus)
	assert.False(t, e.EnrollTime.IsZero())
}
