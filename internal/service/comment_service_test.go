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

func newCommentServiceForTest() (*CommentService, *mocks.MockCommentDao, *mocks.MockSubCommentDao, *mocks.MockUserDao, *mocks.MockTxManager) {
	commentDao := mocks.NewMockCommentDao()
	subCommentDao := mocks.NewMockSubCommentDao()
	userDao := mocks.NewMockUserDao()
	txManager := &mocks.MockTxManager{}
	svc := NewCommentService(commentDao, subCommentDao, userDao, txManager, nil)
	return svc, commentDao, subCommentDao, userDao, txManager
}

// TestCommentDelete_ParentCascades 删除一级评论级联删除其下全部二级评论
func TestCommentDelete_ParentCascades(t *testing.T) {
	svc, commentDao, subCommentDao, _, txManager := newCommentServiceForTest()
	ctx := context.Background()

	commentDao.Insert(ctx, &model.Comment{ArticleID: 1, Content: "一级"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 1, Content: "回复1"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 1, Content: "回复2"})
	commentDao.Insert(ctx, &model.Comment{ArticleID: 1, Content: "另一条一级"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 2, Content: "别人的回复"})

	if err := svc.Delete(ctx, 1, CommentKindParent); err != nil {
		t.Fatalf("delete parent comment: %v", err)
	}
	if txManager.Calls != 1 {
		t.Errorf("cascade delete should run in a transaction, calls = %d", txManager.Calls)
	}
	if record, _ := commentDao.FindByID(ctx, 1); record != nil {
		t.Error("parent comment should be deleted")
	}
	if len(subCommentDao.SubComments) != 1 {
		t.Errorf("only the other comment's reply should remain, got %d", len(subCommentDao.SubComments))
	}
	if record, _ := commentDao.FindByID(ctx, 2); record == nil {
		t.Error("unrelated parent comment should survive")
	}
}

// TestCommentDelete_ParentNotExist 删除不存在的一级评论
func TestCommentDelete_ParentNotExist(t *testing.T) {
	svc, _, _, _, txManager := newCommentServiceForTest()

	err := svc.Delete(context.Background(), 99, CommentKindParent)
	if !errors.Is(err, cmserr.CommentNotExist) {
		t.Fatalf("expected CommentNotExist, got %v", err)
	}
	if txManager.Calls != 0 {
		t.Error("missing comment should not open a transaction")
	}
}

// TestCommentDelete_ChildOnly 删除二级评论不影响一级评论和其他回复
func TestCommentDelete_ChildOnly(t *testing.T) {
	svc, commentDao, subCommentDao, _, _ := newCommentServiceForTest()
	ctx := context.Background()

	commentDao.Insert(ctx, &model.Comment{ArticleID: 1, Content: "一级"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 1, Content: "回复1"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 1, Content: "回复2"})

	if err := svc.Delete(ctx, 1, CommentKindChild); err != nil {
		t.Fatalf("delete child comment: %v", err)
	}
	if record, _ := commentDao.FindByID(ctx, 1); record == nil {
		t.Error("parent comment should survive")
	}
	if len(subCommentDao.SubComments) != 1 {
		t.Errorf("sibling reply should remain, got %d", len(subCommentDao.SubComments))
	}

	err := svc.Delete(ctx, 99, CommentKindChild)
	if !errors.Is(err, cmserr.SubCommentNotExist) {
		t.Fatalf("expected SubCommentNotExist, got %v", err)
	}
}

// TestCommentDelete_UnknownKind 非法的评论类型
func TestCommentDelete_UnknownKind(t *testing.T) {
	svc, _, _, _, _ := newCommentServiceForTest()

	err := svc.Delete(context.Background(), 1, "grandparent")
	if !errors.Is(err, cmserr.ParamInvalid) {
		t.Fatalf("expected ParamInvalid, got %v", err)
	}
}

// TestCommentPageQuery_Enrichment 分页结果补全作者信息和二级评论，回复带各自的作者
func TestCommentPageQuery_Enrichment(t *testing.T) {
	svc, commentDao, subCommentDao, userDao, _ := newCommentServiceForTest()
	ctx := context.Background()

	userDao.Insert(ctx, &model.User{Username: "tom"})
	userDao.Insert(ctx, &model.User{Username: "jerry"})

	commentDao.Insert(ctx, &model.Comment{ArticleID: 1, UserID: 1, Content: "楼主"})
	subCommentDao.Insert(ctx, &model.SubComment{ParentID: 1, UserID: 2, Content: "回复"})

	page, err := svc.PageQuery(ctx, dto.CommentPageQuery{ArticleID: int64Ptr(1)})
	if err != nil {
		t.Fatalf("page query: %v", err)
	}
	if len(page.Records) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(page.Records))
	}

	record := page.Records[0]
	if record.User == nil || record.User.Username != "tom" {
		t.Error("parent comment should carry its own author")
	}
	if len(record.SubComments) != 1 {
		t.Fatalf("expected 1 sub comment, got %d", len(record.SubComments))
	}
	if record.SubComments[0].User == nil || record.SubComments[0].User.Username != "jerry" {
		t.Error("reply should carry the reply author, not the parent author")
	}
}

// TestCommentPageQuery_RemovedAuthor 作者已注销时 user 字段为空，查询不报错
func TestCommentPageQuery_RemovedAuthor(t *testing.T) {
	svc, commentDao, _, _, _ := newCommentServiceForTest()
	ctx := context.Background()

	commentDao.Insert(ctx, &model.Comment{ArticleID: 1, UserID: 42, Content: "孤儿评论"})

	page, err := svc.PageQuery(ctx, dto.CommentPageQuery{})
	if err != nil {
		t.Fatalf("page query: %v", err)
	}
	if len(page.Records) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(page.Records))
	}
	if page.Records[0].User != nil {
		t.Error("missing author should map to nil user")
	}
}

// TestCommentReserved 预留接口统一返回未实现
func TestCommentReserved(t *testing.T) {
	svc, _, _, _, _ := newCommentServiceForTest()
	ctx := context.Background()

	if err := svc.Save(ctx, dto.CommentVO{}); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Save should be reserved, got %v", err)
	}
	if err := svc.DeleteBatch(ctx, []int64{1}); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("DeleteBatch should be reserved, got %v", err)
	}
	if _, err := svc.List(ctx, 1); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("List should be reserved, got %v", err)
	}
}
