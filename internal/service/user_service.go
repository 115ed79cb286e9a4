package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// UserService 用户业务逻辑
type UserService struct {
	userDao dao.UserDao
	roleDao dao.RoleDao
	log     *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(userDao dao.UserDao, roleDao dao.RoleDao, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{userDao: userDao, roleDao: roleDao, log: log}
}

// Save 新增用户：账号不允许重复，密码入库前加密
func (s *UserService) Save(ctx context.Context, form dto.UserSaveForm) error {
	record, err := s.userDao.FindByUsername(ctx, form.Username)
	if err != nil {
		return err
	}
	if record != nil {
		return cmserr.UserHasExisted
	}
	if form.Password == "" {
		return cmserr.ParamInvalid
	}
	encoded, err := utils.BcryptEncode(form.Password)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     form.Username,
		Password:     encoded,
		Phone:        form.Phone,
		Email:        form.Email,
		Gender:       form.Gender,
		Birthday:     form.Birthday,
		Avatar:       form.Avatar,
		RegisterTime: time.Now(),
		Status:       model.UserStatusEnabled,
		RoleID:       model.RoleUser,
		VIP:          0,
		Deleted:      0,
	}
	return s.userDao.Insert(ctx, user)
}

// Update 修改用户基本信息，密码和角色不在此处修改
func (s *UserService) Update(ctx context.Context, form dto.UserSaveForm) error {
	if form.ID == nil {
		return cmserr.ParamInvalid
	}
	record, err := s.userDao.FindByUsername(ctx, form.Username)
	if err != nil {
		return err
	}
	if record != nil && record.ID != *form.ID {
		return cmserr.UserHasExisted
	}
	user := &model.User{
		ID:       *form.ID,
		Username: form.Username,
		Phone:    form.Phone,
		Email:    form.Email,
		Gender:   form.Gender,
		Birthday: form.Birthday,
		Avatar:   form.Avatar,
	}
	return s.userDao.Update(ctx, user)
}

// Delete 批量注销用户（逻辑删除）
func (s *UserService) Delete(ctx context.Context, ids []int64) error {
	_, err := s.userDao.DeleteByIDs(ctx, ids)
	return err
}

// GetByID 根据 ID 查询用户，并附带角色信息
func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserVO, error) {
	user, err := s.userDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted != 0 {
		return nil, cmserr.DataNone
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

// PageQuery 分页+多条件检索用户
func (s *UserService) PageQuery(ctx context.Context, q dto.UserPageQuery) (*utils.Page[dto.UserVO], error) {
	q.Normalize()
	filter := dao.UserFilter{
		Username: q.Username,
		RoleID:   q.RoleID,
		VIP:      q.VIP,
		Status:   q.Status,
	}
	page, err := s.userDao.Page(ctx, filter, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}
	return utils.ConvertPage(page, mapper.ToUserVO), nil
}

// List 查询所有用户（资讯检索的发布者下拉列表用）
func (s *UserService) List(ctx context.Context) ([]dto.UserVO, error) {
	users, err := s.userDao.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.UserVO, 0, len(users))
	for i := range users {
		vos = append(vos, mapper.ToUserVO(&users[i]))
	}
	return vos, nil
}
