package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// UserFilter 用户检索条件
type UserFilter struct {
	Username string
	RoleID   *int64
	VIP      *int
	Status   string
}

// UserDao 用户存储适配器
type UserDao interface {
	Insert(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	// FindByID 包含已注销账号（栏目删除要检查作者的注销标志），未找到返回 (nil, nil)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Page(ctx context.Context, filter UserFilter, pageNum, pageSize int) (*utils.Page[model.User], error)
}

type userDao struct {
	db *gorm.DB
}

// NewUserDao 创建用户 dao
func NewUserDao(db *gorm.DB) UserDao {
	return &userDao{db: db}
}

func (d *userDao) Insert(ctx context.Context, user *model.User) error {
	return conn(ctx, d.db).Create(user).Error
}

func (d *userDao) Update(ctx context.Context, user *model.User) error {
	return conn(ctx, d.db).Model(&model.User{}).
		Where("id = ? AND deleted = 0", user.ID).
		Updates(map[string]interface{}{
			"username": user.Username,
			"phone":    user.Phone,
			"email":    user.Email,
			"gender":   user.Gender,
			"birthday": user.Birthday,
			"avatar":   user.Avatar,
		}).Error
}

func (d *userDao) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := conn(ctx, d.db).Model(&model.User{}).
		Where("id IN ? AND deleted = 0", ids).
		Update("deleted", 1)
	return res.RowsAffected, res.Error
}

func (d *userDao) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := conn(ctx, d.db).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *userDao) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := conn(ctx, d.db).Where("username = ? AND deleted = 0", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *userDao) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := conn(ctx, d.db).Where("deleted = 0").Find(&users).Error
	return users, err
}

func (d *userDao) Page(ctx context.Context, filter UserFilter, pageNum, pageSize int) (*utils.Page[model.User], error) {
	query := conn(ctx, d.db).Model(&model.User{}).Where("deleted = 0")
	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.RoleID != nil {
		query = query.Where("role_id = ?", *filter.RoleID)
	}
	if filter.VIP != nil {
		query = query.Where("vip = ?", *filter.VIP)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return paginate[model.User](query, pageNum, pageSize, "register_time DESC")
}
