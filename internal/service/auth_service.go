package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// AuthService 认证业务逻辑：登录签发令牌、根据令牌取用户信息
type AuthService struct {
	userDao dao.UserDao
	roleDao dao.RoleDao
	rdb     *redis.Client
	jwtUtil *utils.JwtUtil
	log     *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(userDao dao.UserDao, roleDao dao.RoleDao, rdb *redis.Client, jwtUtil *utils.JwtUtil, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{userDao: userDao, roleDao: roleDao, rdb: rdb, jwtUtil: jwtUtil, log: log}
}

// Login 用户登录
// 1）账号必须存在 2）密码必须正确 3）账号状态必须可用
// 通过后签发 JWT 令牌，并把登录态写入 Redis 供中间件快速校验。
func (s *AuthService) Login(ctx context.Context, form dto.LoginForm) (string, error) {
	user, err := s.userDao.FindByUsername(ctx, form.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", cmserr.UserUsernameNotExist
	}
	if !utils.BcryptMatches(form.Password, user.Password) {
		return "", cmserr.UserPasswordInvalid
	}
	if user.Status != model.UserStatusEnabled {
		return "", cmserr.UserAccountForbidden
	}

	token, err := s.jwtUtil.Generate(user.ID, user.Username)
	if err != nil {
		return "", err
	}

	// 登录态缓存，TTL 随访问刷新；写失败不影响登录（中间件会回退解析 JWT）
	if s.rdb != nil {
		loginUser := dto.LoginUser{ID: user.ID, Username: user.Username, RoleID: user.RoleID}
		if payload, err := json.Marshal(loginUser); err == nil {
			key := utils.LOGIN_USER_KEY + token
			if err := s.rdb.Set(ctx, key, payload, time.Duration(utils.LOGIN_USER_TTL)*time.Second).Err(); err != nil {
				s.log.Warn("cache login session failed", zap.Error(err))
			}
		}
	}
	return token, nil
}

// Logout 退出登录，清除 Redis 中的登录态；令牌本身到期自然失效
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.rdb == nil || token == "" {
		return nil
	}
	return s.rdb.Del(ctx, utils.LOGIN_USER_KEY+token).Err()
}

// GetUserinfo 根据令牌获取当前用户信息
func (s *AuthService) GetUserinfo(ctx context.Context, token string) (*dto.UserVO, error) {
	userID, _, err := s.jwtUtil.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userDao.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted != 0 {
		return nil, cmserr.UserUsernameNotExist
	}
	vo := mapper.ToUserVO(user)
	role, err := s.roleDao.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	if role != nil {
		roleVO := mapper.ToRoleVO(role)
		vo.Role = &roleVO
	}
	return &vo, nil
}

// ResolveLoginUser 供登录中间件使用：优先查 Redis 登录态，未命中时回退解析 JWT
func (s *AuthService) ResolveLoginUser(ctx context.Context, token string) (*dto.LoginUser, error) {
	if s.rdb != nil {
		key := utils.LOGIN_USER_KEY + token
		payload, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var loginUser dto.LoginUser
			if err := json.Unmarshal(payload, &loginUser); err == nil {
				// 刷新登录态有效期
				s.rdb.Expire(ctx, key, time.Duration(utils.LOGIN_USER_TTL)*time.Second)
				return &loginUser, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("read login session failed", zap.Error(err))
		}
	}

	userID, _, err := s.jwtUtil.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userDao.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted != 0 || user.Status != model.UserStatusEnabled {
		return nil, cmserr.UserAccountForbidden
	}
	return &dto.LoginUser{ID: user.ID, Username: user.Username, RoleID: user.RoleID}, nil
}
