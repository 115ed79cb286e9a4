package service

import (
	"context"
	"errors"
	"testing"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/mocks"
	"cms-backend/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func newCategoryServiceForTest() (*CategoryService, *mocks.MockCategoryDao, *mocks.MockArticleDao, *mocks.MockUserDao) {
	categoryDao := mocks.NewMockCategoryDao()
	articleDao := mocks.NewMockArticleDao()
	userDao := mocks.NewMockUserDao()
	svc := NewCategoryService(categoryDao, articleDao, userDao, nil)
	return svc, categoryDao, articleDao, userDao
}

// TestCategorySave_DuplicateName 栏目名称重复时新增失败
func TestCategorySave_DuplicateName(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})

	err := svc.Save(ctx, dto.CategorySaveForm{Name: "科技"})
	if !errors.Is(err, cmserr.CategoryHasExisted) {
		t.Fatalf("expected CategoryHasExisted, got %v", err)
	}

	if err := svc.Save(ctx, dto.CategorySaveForm{Name: "体育"}); err != nil {
		t.Fatalf("save with fresh name: %v", err)
	}
}

// TestCategoryUpdate_KeepOwnName 名称没变时修改自身不算冲突
func TestCategoryUpdate_KeepOwnName(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技", OrderNum: 1})

	err := svc.Update(ctx, dto.CategorySaveForm{ID: int64Ptr(1), Name: "科技", OrderNum: 5})
	if err != nil {
		t.Fatalf("update own name: %v", err)
	}
	record, _ := categoryDao.FindByID(ctx, 1)
	if record.OrderNum != 5 {
		t.Errorf("expected orderNum 5, got %d", record.OrderNum)
	}
}

// TestCategoryUpdate_NameTakenByOther 名称被其他栏目占用时修改失败
func TestCategoryUpdate_NameTakenByOther(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "体育"})

	err := svc.Update(ctx, dto.CategorySaveForm{ID: int64Ptr(2), Name: "科技"})
	if !errors.Is(err, cmserr.CategoryHasExisted) {
		t.Fatalf("expected CategoryHasExisted, got %v", err)
	}
}

// TestCategoryUpdate_ParentDemotionForbidden 一级栏目不允许降级为二级栏目
func TestCategoryUpdate_ParentDemotionForbidden(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "体育"})

	err := svc.Update(ctx, dto.CategorySaveForm{ID: int64Ptr(1), Name: "科技", ParentID: int64Ptr(2)})
	if !errors.Is(err, cmserr.CategoryLevelSettingError) {
		t.Fatalf("expected CategoryLevelSettingError, got %v", err)
	}
}

// TestCategoryUpdate_KeepLevelWithoutParentID 不提交 parentId 时二级栏目保持原级别
func TestCategoryUpdate_KeepLevelWithoutParentID(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "AI", ParentID: int64Ptr(1)})

	if err := svc.Update(ctx, dto.CategorySaveForm{ID: int64Ptr(2), Name: "人工智能"}); err != nil {
		t.Fatalf("update leaf without parentId: %v", err)
	}

	record, _ := categoryDao.FindByID(ctx, 2)
	if record.Name != "人工智能" {
		t.Errorf("expected name updated, got %s", record.Name)
	}
	if record.ParentID == nil || *record.ParentID != 1 {
		t.Fatalf("expected parentId kept as 1, got %v", record.ParentID)
	}
}

// TestCategoryUpdate_NotExist 修改不存在的栏目
func TestCategoryUpdate_NotExist(t *testing.T) {
	svc, _, _, _ := newCategoryServiceForTest()

	err := svc.Update(context.Background(), dto.CategorySaveForm{ID: int64Ptr(99), Name: "科技"})
	if !errors.Is(err, cmserr.CategoryNotExist) {
		t.Fatalf("expected CategoryNotExist, got %v", err)
	}
	err = svc.Update(context.Background(), dto.CategorySaveForm{Name: "科技"})
	if !errors.Is(err, cmserr.ParamInvalid) {
		t.Fatalf("expected ParamInvalid when id missing, got %v", err)
	}
}

// TestCategoryDelete_ParentWithChildren 有二级栏目的一级栏目不能删
func TestCategoryDelete_ParentWithChildren(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "AI", ParentID: int64Ptr(1)})

	err := svc.Delete(ctx, []int64{1})
	if !errors.Is(err, cmserr.CategoryDeleteFailed) {
		t.Fatalf("expected CategoryDeleteFailed, got %v", err)
	}
	if record, _ := categoryDao.FindByID(ctx, 1); record == nil {
		t.Error("parent category should survive the delete attempt")
	}
}

// TestCategoryDelete_ChildWithActiveAuthor 有在用账号作者资讯的二级栏目不能删
func TestCategoryDelete_ChildWithActiveAuthor(t *testing.T) {
	svc, categoryDao, articleDao, userDao := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "AI", ParentID: int64Ptr(1)})
	userDao.Insert(ctx, &model.User{Username: "tom", Status: model.UserStatusEnabled})
	articleDao.Insert(ctx, &model.Article{Title: "a", CategoryID: 2, UserID: 1})

	err := svc.Delete(ctx, []int64{2})
	if !errors.Is(err, cmserr.CategoryDeleteFailed) {
		t.Fatalf("expected CategoryDeleteFailed, got %v", err)
	}

	// 作者注销后同一个栏目可以删除
	userDao.DeleteByIDs(ctx, []int64{1})
	if err := svc.Delete(ctx, []int64{2}); err != nil {
		t.Fatalf("delete after author removed: %v", err)
	}
	if record, _ := categoryDao.FindByID(ctx, 2); record != nil {
		t.Error("child category should be deleted")
	}
}

// TestCategoryDelete_BestEffortBatch 一批里删掉任意一条即算成功
func TestCategoryDelete_BestEffortBatch(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})                          // 1 可删（无子栏目）
	categoryDao.Insert(ctx, &model.Category{Name: "生活"})                          // 2 不可删
	categoryDao.Insert(ctx, &model.Category{Name: "美食", ParentID: int64Ptr(2)}) // 3

	if err := svc.Delete(ctx, []int64{1, 2}); err != nil {
		t.Fatalf("batch with one deletable id should succeed: %v", err)
	}
	if record, _ := categoryDao.FindByID(ctx, 1); record != nil {
		t.Error("category 1 should be deleted")
	}
	if record, _ := categoryDao.FindByID(ctx, 2); record == nil {
		t.Error("category 2 should be skipped, not deleted")
	}
}

// TestCategoryDelete_MissingIDSkipped 不存在的 ID 直接跳过
func TestCategoryDelete_MissingIDSkipped(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})

	if err := svc.Delete(ctx, []int64{99, 1}); err != nil {
		t.Fatalf("missing id should not block the batch: %v", err)
	}

	err := svc.Delete(ctx, []int64{99})
	if !errors.Is(err, cmserr.CategoryDeleteFailed) {
		t.Fatalf("expected CategoryDeleteFailed when nothing deleted, got %v", err)
	}
}

// TestCategoryGetByID_Cascade 查询一级栏目时级联带出二级栏目
func TestCategoryGetByID_Cascade(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "AI", ParentID: int64Ptr(1)})
	categoryDao.Insert(ctx, &model.Category{Name: "芯片", ParentID: int64Ptr(1)})

	vo, err := svc.GetByID(ctx, 1, true)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if len(vo.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(vo.Children))
	}

	vo, err = svc.GetByID(ctx, 1, false)
	if err != nil {
		t.Fatalf("get by id without cascade: %v", err)
	}
	if len(vo.Children) != 0 {
		t.Errorf("expected no children without cascade, got %d", len(vo.Children))
	}

	if _, err = svc.GetByID(ctx, 99, false); !errors.Is(err, cmserr.CategoryNotExist) {
		t.Fatalf("expected CategoryNotExist, got %v", err)
	}
}

// TestCategoryList_LevelFilter 按级别筛选栏目清单
func TestCategoryList_LevelFilter(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	categoryDao.Insert(ctx, &model.Category{Name: "AI", ParentID: int64Ptr(1)})
	categoryDao.Insert(ctx, &model.Category{Name: "生活"})

	parents, err := svc.List(ctx, "parent", true)
	if err != nil {
		t.Fatalf("list parents: %v", err)
	}
	if len(parents) != 2 {
		t.Fatalf("expected 2 parent categories, got %d", len(parents))
	}
	if len(parents[0].Children) != 1 {
		t.Errorf("expected cascade children on first parent, got %d", len(parents[0].Children))
	}

	children, err := svc.List(ctx, "child", false)
	if err != nil {
		t.Fatalf("list children: %v", err)
	}
	if len(children) != 1 {
		t.Errorf("expected 1 child category, got %d", len(children))
	}

	all, err := svc.List(ctx, "", false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 categories, got %d", len(all))
	}
}

// TestCategoryPageQuery 分页查询及父栏目过滤
func TestCategoryPageQuery(t *testing.T) {
	svc, categoryDao, _, _ := newCategoryServiceForTest()
	ctx := context.Background()

	categoryDao.Insert(ctx, &model.Category{Name: "科技"})
	for i := 0; i < 5; i++ {
		categoryDao.Insert(ctx, &model.Category{Name: "子栏目" + string(rune('A'+i)), ParentID: int64Ptr(1)})
	}

	page, err := svc.PageQuery(ctx, dto.CategoryPageQuery{
		PageQuery: dto.PageQuery{PageNum: 1, PageSize: 3},
		ParentID:  int64Ptr(1),
	})
	if err != nil {
		t.Fatalf("page query: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("expected total 5, got %d", page.Total)
	}
	if len(page.Records) != 3 {
		t.Errorf("expected 3 records on page 1, got %d", len(page.Records))
	}

	page, err = svc.PageQuery(ctx, dto.CategoryPageQuery{
		PageQuery: dto.PageQuery{PageNum: 2, PageSize: 3},
		ParentID:  int64Ptr(1),
	})
	if err != nil {
		t.Fatalf("page query page 2: %v", err)
	}
	if len(page.Records) != 2 {
		t.Errorf("expected 2 records on page 2, got %d", len(page.Records))
	}
}
