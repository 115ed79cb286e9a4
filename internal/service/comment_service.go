package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/utils"
)

// 评论类型："parent" 一级评论、"child" 二级评论
const (
	CommentKindParent = "parent"
	CommentKindChild  = "child"
)

// ErrNotImplemented 预留接口的统一返回值
var ErrNotImplemented = errors.New("not implemented")

// CommentService 评论业务逻辑
// 一级评论和二级评论是两种实体，但关联性非常强，几乎不会单独操作，
// 所以业务层用同一个组件处理，存储层仍按实体各自独立。
type CommentService struct {
	commentDao    dao.CommentDao
	subCommentDao dao.SubCommentDao
	userDao       dao.UserDao
	txManager     dao.TxManager
	log           *zap.Logger
}

// NewCommentService 创建 CommentService 实例
func NewCommentService(
	commentDao dao.CommentDao,
	subCommentDao dao.SubCommentDao,
	userDao dao.UserDao,
	txManager dao.TxManager,
	log *zap.Logger,
) *CommentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommentService{
		commentDao:    commentDao,
		subCommentDao: subCommentDao,
		userDao:       userDao,
		txManager:     txManager,
		log:           log,
	}
}

// PageQuery 分页+多条件检索一级评论，并为每条评论补全：
// 1）评论作者信息
// 2）全部二级评论及各自的作者信息
// 关联查询按页执行，代价与页大小成正比。
func (s *CommentService) PageQuery(ctx context.Context, q dto.CommentPageQuery) (*utils.Page[dto.CommentVO], error) {
	q.Normalize()
	filter := dao.CommentFilter{
		UserID:    q.UserID,
		ArticleID: q.ArticleID,
		Content:   q.Content,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	}
	page, err := s.commentDao.Page(ctx, filter, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}

	newPage := utils.ConvertPage(page, mapper.ToCommentVO)
	for i := range newPage.Records {
		record := &newPage.Records[i]

		author, err := s.lookupAuthor(ctx, record.UserID)
		if err != nil {
			return nil, err
		}
		record.User = author

		subComments, err := s.subCommentDao.ListByParentID(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		subVOs := make([]dto.SubCommentVO, 0, len(subComments))
		for j := range subComments {
			subVO := mapper.ToSubCommentVO(&subComments[j])
			subAuthor, err := s.lookupAuthor(ctx, subComments[j].UserID)
			if err != nil {
				return nil, err
			}
			subVO.User = subAuthor
			subVOs = append(subVOs, subVO)
		}
		record.SubComments = subVOs
	}

	return newPage, nil
}

// Delete 删除评论
// 1）删除二级评论只影响它自己
// 2）删除一级评论时关联删除其下全部二级评论；
// 先删二级再删一级，两步放在同一个事务里，避免留下孤儿数据。
func (s *CommentService) Delete(ctx context.Context, id int64, kind string) error {
	switch kind {
	case CommentKindParent:
		comment, err := s.commentDao.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return cmserr.CommentNotExist
		}
		return s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
			if _, err := s.subCommentDao.DeleteByParentID(txCtx, id); err != nil {
				return err
			}
			_, err := s.commentDao.DeleteByID(txCtx, id)
			return err
		})
	case CommentKindChild:
		n, err := s.subCommentDao.DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return cmserr.SubCommentNotExist
		}
		return nil
	default:
		return cmserr.ParamInvalid
	}
}

// Save 新增一级评论（预留，后台管理端暂不开放）
func (s *CommentService) Save(ctx context.Context, _ dto.CommentVO) error {
	return ErrNotImplemented
}

// DeleteBatch 批量删除评论（预留）
func (s *CommentService) DeleteBatch(ctx context.Context, _ []int64) error {
	return ErrNotImplemented
}

// List 查询二级评论清单（预留）
func (s *CommentService) List(ctx context.Context, _ int64) ([]dto.SubCommentVO, error) {
	return nil, ErrNotImplemented
}

// lookupAuthor 查询评论作者信息，作者已注销时返回 nil
func (s *CommentService) lookupAuthor(ctx context.Context, userID int64) (*dto.UserVO, error) {
	user, err := s.userDao.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	vo := mapper.ToUserVO(user)
	return &vo, nil
}
