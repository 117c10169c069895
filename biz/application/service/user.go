package service

import (
	"context"
	"edu-manage/biz/adaptor"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/repository/user"
	"edu-manage/biz/infrastructure/util/log"
	"errors"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IUserService interface {
	IssueToken(ctx context.Context, req *manage.IssueTokenReq) (*manage.IssueTokenResp, error)
	CreateUser(ctx context.Context, req *manage.CreateUserReq) (*manage.CreateUserResp, error)
	GetUser(ctx context.Context, req *manage.GetUserReq) (*manage.UserInfo, error)
	SearchUsers(ctx context.Context, req *manage.SearchUsersReq) ([]*manage.UserInfo, error)
	CheckTeacher(ctx context.Context, req *manage.CheckRoleReq) (*manage.CheckTeacherResp, error)
	CheckAdmin(ctx context.Context, req *manage.CheckRoleReq) (*manage.CheckAdminResp, error)
	UpdateRole(ctx context.Context, req *manage.UpdateRoleReq) (*manage.UpdateRoleResp, error)
	PromoteAdmin(ctx context.Context, email string) (*manage.UpdateRoleResp, error)
	RemoveAdmin(ctx context.Context, email string) (*manage.UpdateRoleResp, error)
	GetTeacherDetails(ctx context.Context, req *manage.TeacherDetailsReq) (*manage.TeacherDetailsResp, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// IssueToken 为邮箱签发会话token
func (s *UserService) IssueToken(ctx context.Context, req *manage.IssueTokenReq) (*manage.IssueTokenResp, error) {
	if req.Email == "" {
		return nil, consts.ErrMissingFields("email")
	}

	token, _, err := adaptor.GenerateJwtToken(req.Email)
	if err != nil {
		log.Error("签发token失败: %v", err)
		return nil, consts.ErrCall
	}
	return &manage.IssueTokenResp{Token: token}, nil
}

// CreateUser 首次登录时落库, 邮箱重复返回Conflict
func (s *UserService) CreateUser(ctx context.Context, req *manage.CreateUserReq) (*manage.CreateUserResp, error) {
	if req.Email == "" {
		return nil, consts.ErrMissingFields("email")
	}

	u := new(user.User)
	if err := copier.Copy(u, req); err != nil {
		return nil, consts.ErrInvalidParams
	}
	if u.Name == "" {
		u.Name = consts.DefaultName
	}
	if u.Image == "" {
		u.Image = consts.DefaultAvatar
	}
	if u.Role == "" {
		u.Role = consts.RoleStudent
	}

	err := s.UserMapper.Insert(ctx, u)
	if err != nil {
		return nil, err
	}

	return &manage.CreateUserResp{
		Message:    "User created successfully",
		InsertedId: u.ID.Hex(),
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, req *manage.GetUserReq) (*manage.UserInfo, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return userInfo(u), nil
}

func (s *UserService) SearchUsers(ctx context.Context, req *manage.SearchUsersReq) ([]*manage.UserInfo, error) {
	users, err := s.UserMapper.Search(ctx, req.Search)
	if err != nil {
		log.Error("搜索用户失败: %v", err)
		return nil, err
	}
	return lo.Map(users, func(u *user.User, _ int) *manage.UserInfo {
		return userInfo(u)
	}), nil
}

// CheckTeacher 邮箱不存在时返回false而不是报错
func (s *UserService) CheckTeacher(ctx context.Context, req *manage.CheckRoleReq) (*manage.CheckTeacherResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if errors.Is(err, consts.ErrNotFound) {
		return &manage.CheckTeacherResp{Teacher: false}, nil
	} else if err != nil {
		return nil, err
	}
	return &manage.CheckTeacherResp{Teacher: u.Role == consts.RoleTeacher}, nil
}

// CheckAdmin 同CheckTeacher, 查不到不算错误
func (s *UserService) CheckAdmin(ctx context.Context, req *manage.CheckRoleReq) (*manage.CheckAdminResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if errors.Is(err, consts.ErrNotFound) {
		return &manage.CheckAdminResp{Admin: false}, nil
	} else if err != nil {
		return nil, err
	}
	return &manage.CheckAdminResp{Admin: u.Role == consts.RoleAdmin}, nil
}

func (s *UserService) UpdateRole(ctx context.Context, req *manage.UpdateRoleReq) (*manage.UpdateRoleResp, error) {
	if req.Role == "" {
		return nil, consts.ErrMissingFields("role")
	}
	if !validRole(req.Role) {
		return nil, consts.ErrInvalidParams
	}

	modified, err := s.UserMapper.UpdateRoleByEmail(ctx, req.Email, req.Role)
	if err != nil {
		log.Error("更新用户角色失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &manage.UpdateRoleResp{
		Message:       "User role updated",
		ModifiedCount: modified,
	}, nil
}

func (s *UserService) PromoteAdmin(ctx context.Context, email string) (*manage.UpdateRoleResp, error) {
	modified, err := s.UserMapper.UpdateRoleByEmail(ctx, email, consts.RoleAdmin)
	if err != nil {
		log.Error("提升管理员失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &manage.UpdateRoleResp{
		Message:       "User promoted to admin",
		ModifiedCount: modified,
	}, nil
}

// RemoveAdmin 没改到任何记录视为404
func (s *UserService) RemoveAdmin(ctx context.Context, email string) (*manage.UpdateRoleResp, error) {
	modified, err := s.UserMapper.UpdateRoleByEmail(ctx, email, consts.RoleUser)
	if err != nil {
		log.Error("移除管理员失败: %v", err)
		return nil, consts.ErrUpdate
	}
	if modified == 0 {
		return nil, consts.ErrUserNotFound
	}
	return &manage.UpdateRoleResp{
		Message:       "Admin role removed successfully!",
		ModifiedCount: modified,
	}, nil
}

func (s *UserService) GetTeacherDetails(ctx context.Context, req *manage.TeacherDetailsReq) (*manage.TeacherDetailsResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if errors.Is(err, consts.ErrNotFound) || (err == nil && u.Role != consts.RoleTeacher) {
		return nil, consts.ErrTeacherNotFound
	} else if err != nil {
		return nil, err
	}
	return &manage.TeacherDetailsResp{
		Name:       u.Name,
		Image:      u.Image,
		Email:      u.Email,
		Experience: u.Experience,
	}, nil
}

func userInfo(u *user.User) *manage.UserInfo {
	return &manage.UserInfo{
		Id:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreateTime.Unix(),
	}
}

func validRole(role string) bool {
	switch role {
	case consts.RoleStudent, consts.RoleTeacher, consts.RoleAdmin, consts.RoleUser:
		return true
	}
	return false
}
