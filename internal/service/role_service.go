package service

import (
	"context"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
)

// RoleService 角色业务逻辑
type RoleService struct {
	roleDao dao.RoleDao
}

// NewRoleService 创建 RoleService 实例
func NewRoleService(roleDao dao.RoleDao) *RoleService {
	return &RoleService{roleDao: roleDao}
}

// GetByID 根据 ID 查询角色
func (s *RoleService) GetByID(ctx context.Context, id int64) (*dto.RoleVO, error) {
	role, err := s.roleDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, cmserr.DataNone
	}
	vo := mapper.ToRoleVO(role)
	return &vo, nil
}

// List 查询所有角色
func (s *RoleService) List(ctx context.Context) ([]dto.RoleVO, error) {
	roles, err := s.roleDao.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.RoleVO, 0, len(roles))
	for i := range roles {
		vos = append(vos, mapper.ToRoleVO(&roles[i]))
	}
	return vos, nil
}
