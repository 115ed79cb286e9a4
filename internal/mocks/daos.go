// Package mocks 提供 dao 接口的内存实现，业务层单元测试用，不依赖 MySQL。
package mocks

import (
	"context"
	"sort"
	"strings"

	"cms-backend/internal/dao"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// MockCategoryDao is an in-memory CategoryDao.
type MockCategoryDao struct {
	Categories map[int64]*model.Category
	NextID     int64
}

func NewMockCategoryDao() *MockCategoryDao {
	return &MockCategoryDao{Categories: make(map[int64]*model.Category), NextID: 1}
}

func (m *MockCategoryDao) Insert(_ context.Context, category *model.Category) error {
	if category.ID == 0 {
		category.ID = m.NextID
		m.NextID++
	}
	clone := *category
	m.Categories[category.ID] = &clone
	return nil
}

func (m *MockCategoryDao) Update(_ context.Context, category *model.Category) error {
	record, ok := m.Categories[category.ID]
	if !ok || record.Deleted != 0 {
		return nil
	}
	record.Name = category.Name
	record.Description = category.Description
	record.OrderNum = category.OrderNum
	if category.ParentID != nil {
		record.ParentID = category.ParentID
	}
	return nil
}

func (m *MockCategoryDao) DeleteByID(_ context.Context, id int64) (int64, error) {
	record, ok := m.Categories[id]
	if !ok || record.Deleted != 0 {
		return 0, nil
	}
	record.Deleted = 1
	return 1, nil
}

func (m *MockCategoryDao) FindByID(_ context.Context, id int64) (*model.Category, error) {
	record, ok := m.Categories[id]
	if !ok || record.Deleted != 0 {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *MockCategoryDao) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, record := range m.Categories {
		if record.Deleted == 0 && record.Name == name {
			clone := *record
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryDao) CountByParentID(_ context.Context, parentID int64) (int64, error) {
	var count int64
	for _, record := range m.Categories {
		if record.Deleted == 0 && record.ParentID != nil && *record.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func (m *MockCategoryDao) ListByParentID(_ context.Context, parentID int64) ([]model.Category, error) {
	var result []model.Category
	for _, record := range m.Categories {
		if record.Deleted == 0 && record.ParentID != nil && *record.ParentID == parentID {
			result = append(result, *record)
		}
	}
	sortCategories(result)
	return result, nil
}

func (m *MockCategoryDao) List(_ context.Context, level string) ([]model.Category, error) {
	var result []model.Category
	for _, record := range m.Categories {
		if record.Deleted != 0 {
			continue
		}
		switch level {
		case dao.CategoryLevelParent:
			if record.ParentID != nil {
				continue
			}
		case dao.CategoryLevelChild:
			if record.ParentID == nil {
				continue
			}
		}
		result = append(result, *record)
	}
	sortCategories(result)
	return result, nil
}

func (m *MockCategoryDao) Page(_ context.Context, parentID *int64, pageNum, pageSize int) (*utils.Page[model.Category], error) {
	var matched []model.Category
	for _, record := range m.Categories {
		if record.Deleted != 0 {
			continue
		}
		if parentID != nil && (record.ParentID == nil || *record.ParentID != *parentID) {
			continue
		}
		matched = append(matched, *record)
	}
	sortCategories(matched)
	return slicePage(matched, pageNum, pageSize), nil
}

func sortCategories(categories []model.Category) {
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
}

// MockArticleDao is an in-memory ArticleDao.
type MockArticleDao struct {
	Articles map[int64]*model.Article
	NextID   int64
}

func NewMockArticleDao() *MockArticleDao {
	return &MockArticleDao{Articles: make(map[int64]*model.Article), NextID: 1}
}

func (m *MockArticleDao) Insert(_ context.Context, article *model.Article) error {
	if article.ID == 0 {
		article.ID = m.NextID
		m.NextID++
	}
	clone := *article
	m.Articles[article.ID] = &clone
	return nil
}

func (m *MockArticleDao) UpdateEdit(_ context.Context, article *model.Article) error {
	record, ok := m.Articles[article.ID]
	if !ok || record.Deleted != 0 {
		return nil
	}
	record.Title = article.Title
	record.Content = article.Content
	record.CategoryID = article.CategoryID
	record.Charged = article.Charged
	record.Status = article.Status
	return nil
}

func (m *MockArticleDao) UpdateStatus(_ context.Context, id int64, status string) error {
	if record, ok := m.Articles[id]; ok && record.Deleted == 0 {
		record.Status = status
	}
	return nil
}

func (m *MockArticleDao) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		if record, ok := m.Articles[id]; ok && record.Deleted == 0 {
			record.Deleted = 1
			count++
		}
	}
	return count, nil
}

func (m *MockArticleDao) FindByID(_ context.Context, id int64) (*model.Article, error) {
	record, ok := m.Articles[id]
	if !ok || record.Deleted != 0 {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *MockArticleDao) ListByCategoryID(_ context.Context, categoryID int64) ([]model.Article, error) {
	var result []model.Article
	for _, record := range m.Articles {
		if record.Deleted == 0 && record.CategoryID == categoryID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (m *MockArticleDao) List(_ context.Context) ([]model.Article, error) {
	var result []model.Article
	for _, record := range m.Articles {
		if record.Deleted == 0 {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockArticleDao) Page(_ context.Context, filter dao.ArticleFilter, pageNum, pageSize int) (*utils.Page[model.Article], error) {
	var matched []model.Article
	for _, record := range m.Articles {
		if record.Deleted != 0 {
			continue
		}
		if filter.Title != "" && !strings.Contains(record.Title, filter.Title) {
			continue
		}
		if filter.CategoryID != nil && record.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if filter.UserID != nil && record.UserID != *filter.UserID {
			continue
		}
		if filter.Charged != nil && record.Charged != *filter.Charged {
			continue
		}
		if filter.StartTime != nil && record.PublishTime.Before(*filter.StartTime) {
			continue
		}
		if filter.EndTime != nil && record.PublishTime.After(*filter.EndTime) {
			continue
		}
		matched = append(matched, *record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return slicePage(matched, pageNum, pageSize), nil
}

// MockUserDao is an in-memory UserDao.
type MockUserDao struct {
	Users  map[int64]*model.User
	NextID int64
}

func NewMockUserDao() *MockUserDao {
	return &MockUserDao{Users: make(map[int64]*model.User), NextID: 1}
}

func (m *MockUserDao) Insert(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.NextID
		m.NextID++
	}
	clone := *user
	m.Users[user.ID] = &clone
	return nil
}

func (m *MockUserDao) Update(_ context.Context, user *model.User) error {
	record, ok := m.Users[user.ID]
	if !ok || record.Deleted != 0 {
		return nil
	}
	record.Username = user.Username
	record.Phone = user.Phone
	record.Email = user.Email
	record.Gender = user.Gender
	record.Birthday = user.Birthday
	record.Avatar = user.Avatar
	return nil
}

func (m *MockUserDao) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		if record, ok := m.Users[id]; ok && record.Deleted == 0 {
			record.Deleted = 1
			count++
		}
	}
	return count, nil
}

func (m *MockUserDao) FindByID(_ context.Context, id int64) (*model.User, error) {
	record, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *MockUserDao) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, record := range m.Users {
		if record.Deleted == 0 && record.Username == username {
			clone := *record
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *MockUserDao) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, record := range m.Users {
		if record.Deleted == 0 {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockUserDao) Page(_ context.Context, filter dao.UserFilter, pageNum, pageSize int) (*utils.Page[model.User], error) {
	var matched []model.User
	for _, record := range m.Users {
		if record.Deleted != 0 {
			continue
		}
		if filter.Username != "" && !strings.Contains(record.Username, filter.Username) {
			continue
		}
		if filter.RoleID != nil && record.RoleID != *filter.RoleID {
			continue
		}
		if filter.VIP != nil && record.VIP != *filter.VIP {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		matched = append(matched, *record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return slicePage(matched, pageNum, pageSize), nil
}

// MockCommentDao is an in-memory CommentDao.
type MockCommentDao struct {
	Comments map[int64]*model.Comment
	NextID   int64
}

func NewMockCommentDao() *MockCommentDao {
	return &MockCommentDao{Comments: make(map[int64]*model.Comment), NextID: 1}
}

func (m *MockCommentDao) Insert(_ context.Context, comment *model.Comment) error {
	if comment.ID == 0 {
		comment.ID = m.NextID
		m.NextID++
	}
	clone := *comment
	m.Comments[comment.ID] = &clone
	return nil
}

func (m *MockCommentDao) FindByID(_ context.Context, id int64) (*model.Comment, error) {
	record, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *MockCommentDao) DeleteByID(_ context.Context, id int64) (int64, error) {
	if _, ok := m.Comments[id]; !ok {
		return 0, nil
	}
	delete(m.Comments, id)
	return 1, nil
}

func (m *MockCommentDao) Page(_ context.Context, filter dao.CommentFilter, pageNum, pageSize int) (*utils.Page[model.Comment], error) {
	var matched []model.Comment
	for _, record := range m.Comments {
		if filter.UserID != nil && record.UserID != *filter.UserID {
			continue
		}
		if filter.ArticleID != nil && record.ArticleID != *filter.ArticleID {
			continue
		}
		if filter.Content != "" && !strings.Contains(record.Content, filter.Content) {
			continue
		}
		if filter.StartTime != nil && record.PublishTime.Before(*filter.StartTime) {
			continue
		}
		if filter.EndTime != nil && record.PublishTime.After(*filter.EndTime) {
			continue
		}
		matched = append(matched, *record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return slicePage(matched, pageNum, pageSize), nil
}

// MockSubCommentDao is an in-memory SubCommentDao.
type MockSubCommentDao struct {
	SubComments map[int64]*model.SubComment
	NextID      int64
}

func NewMockSubCommentDao() *MockSubCommentDao {
	return &MockSubCommentDao{SubComments: make(map[int64]*model.SubComment), NextID: 1}
}

func (m *MockSubCommentDao) Insert(_ context.Context, subComment *model.SubComment) error {
	if subComment.ID == 0 {
		subComment.ID = m.NextID
		m.NextID++
	}
	clone := *subComment
	m.SubComments[subComment.ID] = &clone
	return nil
}

func (m *MockSubCommentDao) FindByID(_ context.Context, id int64) (*model.SubComment, error) {
	record, ok := m.SubComments[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *MockSubCommentDao) ListByParentID(_ context.Context, parentID int64) ([]model.SubComment, error) {
	var result []model.SubComment
	for _, record := range m.SubComments {
		if record.ParentID == parentID {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockSubCommentDao) DeleteByID(_ context.Context, id int64) (int64, error) {
	if _, ok := m.SubComments[id]; !ok {
		return 0, nil
	}
	delete(m.SubComments, id)
	return 1, nil
}

func (m *MockSubCommentDao) DeleteByParentID(_ context.Context, parentID int64) (int64, error) {
	var count int64
	for id, record := range m.SubComments {
		if record.ParentID == parentID {
			delete(m.SubComments, id)
			count++
		}
	}
	return count, nil
}

// MockTxManager 直接执行函数，不做真正的事务
type MockTxManager struct {
	Calls int
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// slicePage 对内存中的切片做分页包装
func slicePage[T any](records []T, pageNum, pageSize int) *utils.Page[T] {
	total := int64(len(records))
	start := (pageNum - 1) * pageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	page := utils.NewPage[T](records[start:end], total, pageNum, pageSize)
	if page.Records == nil {
		page.Records = []T{}
	}
	return page
}
