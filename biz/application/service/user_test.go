package service

import (
	"context"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeUserMapper struct {
	user.IMongoMapper
	insertErr error
	inserted  *user.User
}

func (f *fakeUserMapper) Insert(ctx context.Context, u *user.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = u
	return nil
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := &fakeUserMapper{insertErr: consts.ErrUserAlreadyExists}
	s := &UserService{UserMapper: f}

	_, err := s.CreateUser(context.Background(), &manage.CreateUserReq{Email: "alice@example.com"})
	assert.ErrorIs(t, err, consts.ErrUserAlreadyExists)
	assert.Nil(t, f.inserted)
}

func TestCreateUserAppliesDefaults(t *testing.T) {
	f := &fakeUserMapper{}
	s := &UserService{UserMapper: f}

	resp, err := s.CreateUser(context.Background(), &manage.CreateUserReq{Email: "alice@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, consts.DefaultName, f.inserted.Name)
	assert.Equal(t, consts.DefaultAvatar, f.inserted.Image)
	assert.Equal(t, consts.RoleStudent, f.inserted.Role)
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{"student", "teacher", "admin", "user"} {
		assert.True(t, validRole(role), role)
	}
	assert.False(t, validRole("superuser"))
	assert.False(t, validRole(""))
}
