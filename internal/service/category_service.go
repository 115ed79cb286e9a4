package service

import (
	"context"

	"go.uber.org/zap"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// CategoryService 栏目业务逻辑：维护固定两级的栏目结构
type CategoryService struct {
	categoryDao dao.CategoryDao
	articleDao  dao.ArticleDao
	userDao     dao.UserDao
	log         *zap.Logger
}

// NewCategoryService 创建 CategoryService 实例
func NewCategoryService(categoryDao dao.CategoryDao, articleDao dao.ArticleDao, userDao dao.UserDao, log *zap.Logger) *CategoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CategoryService{
		categoryDao: categoryDao,
		articleDao:  articleDao,
		userDao:     userDao,
		log:         log,
	}
}

// Save 新增栏目，栏目名称不允许重复
func (s *CategoryService) Save(ctx context.Context, form dto.CategorySaveForm) error {
	record, err := s.categoryDao.FindByName(ctx, form.Name)
	if err != nil {
		return err
	}
	if record != nil {
		return cmserr.CategoryHasExisted
	}
	category := &model.Category{
		Name:        form.Name,
		Description: form.Description,
		OrderNum:    form.OrderNum,
		ParentID:    form.ParentID,
		Deleted:     0,
	}
	return s.categoryDao.Insert(ctx, category)
}

// Update 修改栏目
// 1）名称不能与其他栏目冲突
// 2）一级栏目不允许改为二级栏目
func (s *CategoryService) Update(ctx context.Context, form dto.CategorySaveForm) error {
	if form.ID == nil {
		return cmserr.ParamInvalid
	}
	id := *form.ID

	record, err := s.categoryDao.FindByName(ctx, form.Name)
	if err != nil {
		return err
	}
	if record != nil && record.ID != id {
		return cmserr.CategoryHasExisted
	}

	record, err = s.categoryDao.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return cmserr.CategoryNotExist
	}
	// 本身是一级栏目且前端又提交了 parentId，表示要降级为二级栏目，禁止
	if record.IsParent() && form.ParentID != nil {
		return cmserr.CategoryLevelSettingError
	}

	category := &model.Category{
		ID:          id,
		Name:        form.Name,
		Description: form.Description,
		OrderNum:    form.OrderNum,
		ParentID:    form.ParentID,
	}
	return s.categoryDao.Update(ctx, category)
}

// Delete 批量删除栏目，尽力而为：
// 1）一级栏目下存在二级栏目时禁止删除
// 2）二级栏目下存在作者账号正常的资讯时禁止删除
// 不允许删除的数据直接跳过，不逐条报错；
// 整批处理完后只要删掉了任何一条即视为成功，全部失败才报错。
func (s *CategoryService) Delete(ctx context.Context, ids []int64) error {
	var deletedCount int64

	for _, id := range ids {
		category, err := s.categoryDao.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			continue
		}

		if category.IsParent() {
			// 一级栏目：下面没有二级栏目才能删
			childCount, err := s.categoryDao.CountByParentID(ctx, id)
			if err != nil {
				return err
			}
			if childCount == 0 {
				n, err := s.categoryDao.DeleteByID(ctx, id)
				if err != nil {
					return err
				}
				deletedCount += n
			}
			continue
		}

		// 二级栏目：检查栏目下的资讯，只要有一个作者账号未注销就禁止删除
		articles, err := s.articleDao.ListByCategoryID(ctx, id)
		if err != nil {
			return err
		}
		deletable := true
		for i := range articles {
			author, err := s.userDao.FindByID(ctx, articles[i].UserID)
			if err != nil {
				return err
			}
			if author != nil && author.Deleted == 0 {
				deletable = false
				break
			}
		}
		if deletable {
			n, err := s.categoryDao.DeleteByID(ctx, id)
			if err != nil {
				return err
			}
			deletedCount += n
		}
	}

	if deletedCount == 0 {
		return cmserr.CategoryDeleteFailed
	}
	s.log.Info("categories deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deletedCount),
	)
	return nil
}

// GetByID 根据 ID 查询栏目；cascadeChildren 为 true 且为一级栏目时附带二级栏目
func (s *CategoryService) GetByID(ctx context.Context, id int64, cascadeChildren bool) (*dto.CategoryVO, error) {
	category, err := s.categoryDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, cmserr.CategoryNotExist
	}
	vo := mapper.ToCategoryVO(category)
	if cascadeChildren && category.IsParent() {
		children, err := s.categoryDao.ListByParentID(ctx, id)
		if err != nil {
			return nil, err
		}
		for i := range children {
			vo.Children = append(vo.Children, mapper.ToCategoryVO(&children[i]))
		}
	}
	return &vo, nil
}

// List 按级别查询栏目
// level："parent" 查一级栏目、"child" 查二级栏目、空串查全部
// cascadeChildren 为 true 时为每个一级栏目附带其二级栏目
func (s *CategoryService) List(ctx context.Context, level string, cascadeChildren bool) ([]dto.CategoryVO, error) {
	categories, err := s.categoryDao.List(ctx, level)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.CategoryVO, 0, len(categories))
	for i := range categories {
		vo := mapper.ToCategoryVO(&categories[i])
		if cascadeChildren && categories[i].IsParent() {
			children, err := s.categoryDao.ListByParentID(ctx, categories[i].ID)
			if err != nil {
				return nil, err
			}
			for j := range children {
				vo.Children = append(vo.Children, mapper.ToCategoryVO(&children[j]))
			}
		}
		vos = append(vos, vo)
	}
	return vos, nil
}

// PageQuery 分页查询栏目，未设置的条件不参与过滤
func (s *CategoryService) PageQuery(ctx context.Context, q dto.CategoryPageQuery) (*utils.Page[dto.CategoryVO], error) {
	q.Normalize()
	page, err := s.categoryDao.Page(ctx, q.ParentID, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}
	return utils.ConvertPage(page, mapper.ToCategoryVO), nil
}
