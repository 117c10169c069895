package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/class"
	"edu-manage/biz/infrastructure/repository/enrollment"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authedContext(t *testing.T, email string) context.Context {
	t.Helper()
	config.SetConfig(&config.Config{
		Auth: config.Auth{SecretKey: testSecret, AccessExpire: 3600},
	})
	token, _, err := adaptor.SignToken(testSecret, email, 3600)
	require.NoError(t, err)

	c := &app.RequestContext{}
	c.Request.Header.Set("Authorization", "Bearer "+token)
	return adaptor.InjectContext(context.Background(), c)
}

type fakeEnrollmentMapper struct {
	enrollment.IMongoMapper
	insertErr error
	inserted  int
}

func (f *fakeEnrollmentMapper) Insert(ctx context.Context, e *enrollment.Enrollment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted++
	return nil
}

type fakeClassMapper struct {
	class.IMongoMapper
	incs int
}

func (f *fakeClassMapper) IncTotalEnrolled(ctx context.Context, id string, increment int64) error {
	f.incs++
	return nil
}

func TestEnrollDuplicateLeavesCounterAlone(t *testing.T) {
	fe := &fakeEnrollmentMapper{insertErr: consts.ErrAlreadyEnrolled}
	fc := &fakeClassMapper{}
	s := &EnrollmentService{EnrollmentMapper: fe, ClassMapper: fc}

	ctx := authedContext(t, "alice@example.com")
	_, err := s.Enroll(ctx, &manage.EnrollReq{
		StudentEmail: "alice@example.com",
		ClassId:      "abc",
	})
	assert.ErrorIs(t, err, consts.ErrAlreadyEnrolled)
	assert.Zero(t, fc.incs, "failed enrollment must not touch the class counter")
}

func TestEnrollIncrementsCounter(t *testing.T) {
	fe := &fakeEnrollmentMapper{}
	fc := &fakeClassMapper{}
	s := &EnrollmentService{EnrollmentMapper: fe, ClassMapper: fc}

	ctx := authedContext(t, "alice@example.com")
	resp, err := s.Enroll(ctx, &manage.EnrollReq{
		StudentEmail: "alice@example.com",
		ClassId:      "abc",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, 1, fe.inserted)
	assert.Equal(t, 1, fc.incs)
}

func TestEnrollOtherStudentForbidden(t *testing.T) {
	fe := &fakeEnrollmentMapper{}
	fc := &fakeClassMapper{}
	s := &EnrollmentService{EnrollmentMapper: fe, ClassMapper: fc}

	ctx := authedContext(t, "mallory@example.com")
	_, err := s.Enroll(ctx, &manage.EnrollReq{
		StudentEmail: "alice@example.com",
		ClassId:      "abc",
	})
	assert.ErrorIs(t, err, consts.ErrEmailMismatch)
	assert.Zero(t, fe.inserted)
	assert.Zero(t, fc.incs)
}
