package service

import (
	"context"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// SlideshowService 轮播图业务逻辑
type SlideshowService struct {
	slideshowDao dao.SlideshowDao
}

// NewSlideshowService 创建 SlideshowService 实例
func NewSlideshowService(slideshowDao dao.SlideshowDao) *SlideshowService {
	return &SlideshowService{slideshowDao: slideshowDao}
}

// Save 新增轮播图，url 不允许重复
func (s *SlideshowService) Save(ctx context.Context, form dto.SlideshowSaveForm) error {
	record, err := s.slideshowDao.FindByURL(ctx, form.URL)
	if err != nil {
		return err
	}
	if record != nil {
		return cmserr.SlideshowURLExisted
	}
	slideshow := &model.Slideshow{
		Description: form.Description,
		URL:         form.URL,
		Status:      form.Status,
	}
	return s.slideshowDao.Insert(ctx, slideshow)
}

// Update 修改轮播图
func (s *SlideshowService) Update(ctx context.Context, form dto.SlideshowSaveForm) error {
	if form.ID == nil {
		return cmserr.ParamInvalid
	}
	record, err := s.slideshowDao.FindByID(ctx, *form.ID)
	if err != nil {
		return err
	}
	if record == nil {
		return cmserr.SlideshowNotExisted
	}
	other, err := s.slideshowDao.FindByURL(ctx, form.URL)
	if err != nil {
		return err
	}
	if other != nil && other.ID != *form.ID {
		return cmserr.SlideshowURLExisted
	}
	slideshow := &model.Slideshow{
		ID:          *form.ID,
		Description: form.Description,
		URL:         form.URL,
		Status:      form.Status,
	}
	return s.slideshowDao.Update(ctx, slideshow)
}

// Delete 批量删除轮播图
func (s *SlideshowService) Delete(ctx context.Context, ids []int64) error {
	_, err := s.slideshowDao.DeleteByIDs(ctx, ids)
	return err
}

// GetByID 根据 ID 查询轮播图
func (s *SlideshowService) GetByID(ctx context.Context, id int64) (*dto.SlideshowVO, error) {
	slideshow, err := s.slideshowDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slideshow == nil {
		return nil, cmserr.SlideshowNotExisted
	}
	vo := mapper.ToSlideshowVO(slideshow)
	return &vo, nil
}

// PageQuery 分页+多条件检索轮播图
func (s *SlideshowService) PageQuery(ctx context.Context, q dto.SlideshowPageQuery) (*utils.Page[dto.SlideshowVO], error) {
	q.Normalize()
	filter := dao.SlideshowFilter{
		Description: q.Description,
		Status:      q.Status,
	}
	page, err := s.slideshowDao.Page(ctx, filter, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}
	return utils.ConvertPage(page, mapper.ToSlideshowVO), nil
}
