package dto

import "time"

// CommentPageQuery 评论分页检索条件
type CommentPageQuery struct {
	PageQuery
	UserID    *int64     `form:"userId"`
	ArticleID *int64     `form:"articleId"`
	Content   string     `form:"content"`
	StartTime *time.Time `form:"startTime" time_format:"2006-01-02 15:04:05"`
	EndTime   *time.Time `form:"endTime" time_format:"2006-01-02 15:04:05"`
}

// CommentVO 一级评论视图对象，携带作者信息和全部二级评论
type CommentVO struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	ArticleID   int64          `json:"articleId"`
	Content     string         `json:"content"`
	PublishTime time.Time      `json:"publishTime"`
	User        *UserVO        `json:"user,omitempty"`
	SubComments []SubCommentVO `json:"subComments,omitempty"`
}

// SubCommentVO 二级评论视图对象
type SubCommentVO struct {
	ID          int64     `json:"id"`
	ParentID    int64     `json:"parentId"`
	UserID      int64     `json:"userId"`
	Content     string    `json:"content"`
	PublishTime time.Time `json:"publishTime"`
	User        *UserVO   `json:"user,omitempty"`
}
