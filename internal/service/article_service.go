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

// ArticleService 资讯业务逻辑：创建/编辑/审核状态机
// 状态只有三个：未审核、审核通过、审核不通过。
// 新增资讯一律为未审核；作者编辑后无论当前状态如何都退回未审核，等待重新审核。
type ArticleService struct {
	articleDao dao.ArticleDao
	commentDao dao.CommentDao
	log        *zap.Logger
}

// NewArticleService 创建 ArticleService 实例
func NewArticleService(articleDao dao.ArticleDao, commentDao dao.CommentDao, log *zap.Logger) *ArticleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ArticleService{articleDao: articleDao, commentDao: commentDao, log: log}
}

// SaveOrUpdate 新增或修改资讯
// 参数带 id 为修改，不带 id 为新增；userID 为当前请求用户（即作者）
func (s *ArticleService) SaveOrUpdate(ctx context.Context, userID int64, form dto.ArticleSaveForm) error {
	if form.ID != nil {
		// 编辑：只改标题、收费、栏目、正文；修改完强制回到未审核状态
		article := &model.Article{
			ID:         *form.ID,
			Title:      form.Title,
			Content:    form.Content,
			CategoryID: form.CategoryID,
			Charged:    form.Charged,
			Status:     model.ArticleStatusUnreviewed,
		}
		return s.articleDao.UpdateEdit(ctx, article)
	}

	// 新增：系统生成状态、发布时间和各计数字段
	article := &model.Article{
		Title:       form.Title,
		Content:     form.Content,
		CategoryID:  form.CategoryID,
		Charged:     form.Charged,
		UserID:      userID,
		Status:      model.ArticleStatusUnreviewed,
		PublishTime: time.Now(),
		ReadNum:     0,
		LikeNum:     0,
		DislikeNum:  0,
		Deleted:     0,
	}
	return s.articleDao.Insert(ctx, article)
}

// Review 资讯审核：只改状态，不校验此前是否已审核过
func (s *ArticleService) Review(ctx context.Context, id int64, status string) error {
	return s.articleDao.UpdateStatus(ctx, id, status)
}

// Delete 批量删除资讯
func (s *ArticleService) Delete(ctx context.Context, ids []int64) error {
	_, err := s.articleDao.DeleteByIDs(ctx, ids)
	return err
}

// GetByID 根据 ID 查询资讯，附带该资讯下最新的 commentsNum 条评论
func (s *ArticleService) GetByID(ctx context.Context, id int64, commentsNum int) (*dto.ArticleVO, error) {
	article, err := s.articleDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, cmserr.ArticleNotExist
	}
	vo := mapper.ToArticleVO(article)
	if commentsNum > 0 {
		page, err := s.commentDao.Page(ctx, dao.CommentFilter{ArticleID: &id}, 1, commentsNum)
		if err != nil {
			return nil, err
		}
		for i := range page.Records {
			vo.Comments = append(vo.Comments, mapper.ToCommentVO(&page.Records[i]))
		}
	}
	return &vo, nil
}

// PageQuery 分页+多条件检索资讯
// 标题模糊匹配，栏目/状态/发布者/收费状态精准匹配，发布时间为闭区间；
// 未填写的条件完全不参与过滤。
func (s *ArticleService) PageQuery(ctx context.Context, q dto.ArticlePageQuery) (*utils.Page[dto.ArticleVO], error) {
	q.Normalize()
	filter := dao.ArticleFilter{
		Title:      q.Title,
		CategoryID: q.CategoryID,
		Status:     q.Status,
		UserID:     q.UserID,
		Charged:    q.Charged,
		StartTime:  q.StartTime,
		EndTime:    q.EndTime,
	}
	page, err := s.articleDao.Page(ctx, filter, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}
	return utils.ConvertPage(page, mapper.ToArticleVO), nil
}

// List 查询所有资讯（评论管理的下拉列表用）
func (s *ArticleService) List(ctx context.Context) ([]dto.ArticleVO, error) {
	articles, err := s.articleDao.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.ArticleVO, 0, len(articles))
	for i := range articles {
		vos = append(vos, mapper.ToArticleVO(&articles[i]))
	}
	return vos, nil
}
