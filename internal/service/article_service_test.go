package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/mocks"
	"cms-backend/internal/model"
)

func newArticleServiceForTest() (*ArticleService, *mocks.MockArticleDao, *mocks.MockCommentDao) {
	articleDao := mocks.NewMockArticleDao()
	commentDao := mocks.NewMockCommentDao()
	svc := NewArticleService(articleDao, commentDao, nil)
	return svc, articleDao, commentDao
}

// TestArticleSave_CreateDefaults 新增资讯：状态、发布时间和计数字段由系统生成
func TestArticleSave_CreateDefaults(t *testing.T) {
	svc, articleDao, _ := newArticleServiceForTest()
	ctx := context.Background()

	before := time.Now()
	err := svc.SaveOrUpdate(ctx, 7, dto.ArticleSaveForm{
		Title:      "标题",
		Content:    "正文",
		CategoryID: 3,
		Charged:    1,
	})
	if err != nil {
		t.Fatalf("save article: %v", err)
	}

	record, _ := articleDao.FindByID(ctx, 1)
	if record == nil {
		t.Fatal("article should be persisted")
	}
	if record.Status != model.ArticleStatusUnreviewed {
		t.Errorf("new article status = %q, want %q", record.Status, model.ArticleStatusUnreviewed)
	}
	if record.UserID != 7 {
		t.Errorf("author = %d, want 7", record.UserID)
	}
	if record.PublishTime.Before(before) {
		t.Error("publish time should be set at creation")
	}
	if record.ReadNum != 0 || record.LikeNum != 0 || record.DislikeNum != 0 {
		t.Error("counters should start at zero")
	}
}

// TestArticleEdit_ResetsStatus 编辑后无论当前状态如何都回到未审核
func TestArticleEdit_ResetsStatus(t *testing.T) {
	svc, articleDao, _ := newArticleServiceForTest()
	ctx := context.Background()

	publishTime := time.Now().Add(-time.Hour)
	articleDao.Insert(ctx, &model.Article{
		Title:       "旧标题",
		Content:     "旧正文",
		CategoryID:  3,
		UserID:      7,
		Status:      model.ArticleStatusApproved,
		PublishTime: publishTime,
		ReadNum:     42,
	})

	err := svc.SaveOrUpdate(ctx, 7, dto.ArticleSaveForm{
		ID:         int64Ptr(1),
		Title:      "新标题",
		Content:    "新正文",
		CategoryID: 4,
	})
	if err != nil {
		t.Fatalf("edit article: %v", err)
	}

	record, _ := articleDao.FindByID(ctx, 1)
	if record.Status != model.ArticleStatusUnreviewed {
		t.Errorf("status after edit = %q, want %q", record.Status, model.ArticleStatusUnreviewed)
	}
	if record.Title != "新标题" || record.CategoryID != 4 {
		t.Error("edited fields should be updated")
	}
	// 发布时间和计数字段不受编辑影响
	if !record.PublishTime.Equal(publishTime) {
		t.Error("publish time should not change on edit")
	}
	if record.ReadNum != 42 {
		t.Errorf("read counter should not change on edit, got %d", record.ReadNum)
	}
}

// TestArticleReview_ThenEdit 审核不通过后再编辑又回到未审核
func TestArticleReview_ThenEdit(t *testing.T) {
	svc, articleDao, _ := newArticleServiceForTest()
	ctx := context.Background()

	articleDao.Insert(ctx, &model.Article{Title: "t", Status: model.ArticleStatusUnreviewed})

	if err := svc.Review(ctx, 1, model.ArticleStatusRejected); err != nil {
		t.Fatalf("review: %v", err)
	}
	record, _ := articleDao.FindByID(ctx, 1)
	if record.Status != model.ArticleStatusRejected {
		t.Fatalf("status after review = %q, want %q", record.Status, model.ArticleStatusRejected)
	}

	if err := svc.SaveOrUpdate(ctx, 1, dto.ArticleSaveForm{ID: int64Ptr(1), Title: "t2", Content: "c", CategoryID: 1}); err != nil {
		t.Fatalf("edit after review: %v", err)
	}
	record, _ = articleDao.FindByID(ctx, 1)
	if record.Status != model.ArticleStatusUnreviewed {
		t.Errorf("status after re-edit = %q, want %q", record.Status, model.ArticleStatusUnreviewed)
	}
}

// TestArticleDelete_Batch 批量删除资讯
func TestArticleDelete_Batch(t *testing.T) {
	svc, articleDao, _ := newArticleServiceForTest()
	ctx := context.Background()

	articleDao.Insert(ctx, &model.Article{Title: "a"})
	articleDao.Insert(ctx, &model.Article{Title: "b"})

	if err := svc.Delete(ctx, []int64{1, 2, 99}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if record, _ := articleDao.FindByID(ctx, 1); record != nil {
		t.Error("article 1 should be deleted")
	}
	if record, _ := articleDao.FindByID(ctx, 2); record != nil {
		t.Error("article 2 should be deleted")
	}
}

// TestArticleGetByID_WithComments 详情附带最新评论
func TestArticleGetByID_WithComments(t *testing.T) {
	svc, articleDao, commentDao := newArticleServiceForTest()
	ctx := context.Background()

	articleDao.Insert(ctx, &model.Article{Title: "a"})
	for i := 0; i < 4; i++ {
		commentDao.Insert(ctx, &model.Comment{ArticleID: 1, Content: "c", PublishTime: time.Now()})
	}
	commentDao.Insert(ctx, &model.Comment{ArticleID: 2, Content: "other article"})

	vo, err := svc.GetByID(ctx, 1, 3)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if len(vo.Comments) != 3 {
		t.Errorf("expected 3 comments, got %d", len(vo.Comments))
	}

	vo, err = svc.GetByID(ctx, 1, 0)
	if err != nil {
		t.Fatalf("get by id without comments: %v", err)
	}
	if len(vo.Comments) != 0 {
		t.Errorf("expected no comments, got %d", len(vo.Comments))
	}

	if _, err = svc.GetByID(ctx, 99, 0); !errors.Is(err, cmserr.ArticleNotExist) {
		t.Fatalf("expected ArticleNotExist, got %v", err)
	}
}

// TestArticlePageQuery_Filters 组合条件检索：未填写的条件不参与过滤
func TestArticlePageQuery_Filters(t *testing.T) {
	svc, articleDao, _ := newArticleServiceForTest()
	ctx := context.Background()

	now := time.Now()
	articleDao.Insert(ctx, &model.Article{Title: "Go 语言入门", CategoryID: 1, UserID: 1, Status: model.ArticleStatusApproved, PublishTime: now.Add(-48 * time.Hour)})
	articleDao.Insert(ctx, &model.Article{Title: "Go 并发实战", CategoryID: 1, UserID: 2, Status: model.ArticleStatusUnreviewed, PublishTime: now.Add(-24 * time.Hour)})
	articleDao.Insert(ctx, &model.Article{Title: "美食地图", CategoryID: 2, UserID: 1, Status: model.ArticleStatusApproved, PublishTime: now})

	// 标题模糊匹配
	page, err := svc.PageQuery(ctx, dto.ArticlePageQuery{Title: "Go"})
	if err != nil {
		t.Fatalf("page query by title: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("title filter total = %d, want 2", page.Total)
	}

	// 状态 + 栏目组合
	page, err = svc.PageQuery(ctx, dto.ArticlePageQuery{CategoryID: int64Ptr(1), Status: model.ArticleStatusApproved})
	if err != nil {
		t.Fatalf("page query by category/status: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("category+status filter total = %d, want 1", page.Total)
	}

	// 发布时间闭区间
	start := now.Add(-36 * time.Hour)
	end := now.Add(-12 * time.Hour)
	page, err = svc.PageQuery(ctx, dto.ArticlePageQuery{StartTime: &start, EndTime: &end})
	if err != nil {
		t.Fatalf("page query by time range: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("time range filter total = %d, want 1", page.Total)
	}

	// 无条件：全量
	page, err = svc.PageQuery(ctx, dto.ArticlePageQuery{})
	if err != nil {
		t.Fatalf("page query without filters: %v", err)
	}
	if page.Total != 3 {
		t.Errorf("unfiltered total = %d, want 3", page.Total)
	}
}
