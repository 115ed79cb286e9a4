// Package mapper 负责 Entity 到视图对象的转换
package mapper

import (
	"cms-backend/internal/dto"
	"cms-backend/internal/model"
)

// ToCategoryVO 将栏目实体转为视图对象
func ToCategoryVO(c *model.Category) dto.CategoryVO {
	return dto.CategoryVO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OrderNum:    c.OrderNum,
		ParentID:    c.ParentID,
	}
}

// ToArticleVO 将资讯实体转为视图对象
func ToArticleVO(a *model.Article) dto.ArticleVO {
	return dto.ArticleVO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		CategoryID:  a.CategoryID,
		UserID:      a.UserID,
		Charged:     a.Charged,
		Status:      a.Status,
		PublishTime: a.PublishTime,
		ReadNum:     a.ReadNum,
		LikeNum:     a.LikeNum,
		DislikeNum:  a.DislikeNum,
	}
}

// ToCommentVO 将一级评论实体转为视图对象（作者与二级评论由业务层补充）
func ToCommentVO(c *model.Comment) dto.CommentVO {
	return dto.CommentVO{
		ID:          c.ID,
		UserID:      c.UserID,
		ArticleID:   c.ArticleID,
		Content:     c.Content,
		PublishTime: c.PublishTime,
	}
}

// ToSubCommentVO 将二级评论实体转为视图对象
func ToSubCommentVO(sc *model.SubComment) dto.SubCommentVO {
	return dto.SubCommentVO{
		ID:          sc.ID,
		ParentID:    sc.ParentID,
		UserID:      sc.UserID,
		Content:     sc.Content,
		PublishTime: sc.PublishTime,
	}
}

// ToUserVO 将用户实体转为视图对象，密码不外传
func ToUserVO(u *model.User) dto.UserVO {
	return dto.UserVO{
		ID:           u.ID,
		Username:     u.Username,
		Phone:        u.Phone,
		Email:        u.Email,
		Gender:       u.Gender,
		Birthday:     u.Birthday,
		Avatar:       u.Avatar,
		RegisterTime: u.RegisterTime,
		Status:       u.Status,
		RoleID:       u.RoleID,
		VIP:          u.VIP,
	}
}

// ToRoleVO 将角色实体转为视图对象
func ToRoleVO(r *model.Role) dto.RoleVO {
	return dto.RoleVO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// ToSlideshowVO 将轮播图实体转为视图对象
func ToSlideshowVO(s *model.Slideshow) dto.SlideshowVO {
	return dto.SlideshowVO{
		ID:          s.ID,
		Description: s.Description,
		URL:         s.URL,
		Status:      s.Status,
	}
}

// ToLogVO 将请求日志实体转为视图对象
func ToLogVO(l *model.Log) dto.LogVO {
	return dto.LogVO{
		Username:      l.Username,
		BusinessName:  l.BusinessName,
		RequestURL:    l.RequestURL,
		RequestMethod: l.RequestMethod,
		RequestIP:     l.RequestIP,
		SpendTime:     l.SpendTime,
		CreateTime:    l.CreateTime,
	}
}
