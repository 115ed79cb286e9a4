package dto

import "time"

// ArticleSaveForm 新增/修改资讯的请求体；带 id 为修改，不带为新增
type ArticleSaveForm struct {
	ID         *int64 `json:"id"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID int64  `json:"categoryId" binding:"required"`
	Charged    int    `json:"charged"`
}

// ArticleReviewForm 资讯审核请求体
type ArticleReviewForm struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// ArticlePageQuery 资讯分页检索条件，未填写的条件不参与过滤
type ArticlePageQuery struct {
	PageQuery
	Title      string     `form:"title"`
	CategoryID *int64     `form:"categoryId"`
	Status     string     `form:"status"`
	UserID     *int64     `form:"userId"`
	Charged    *int       `form:"charged"`
	StartTime  *time.Time `form:"startTime" time_format:"2006-01-02 15:04:05"`
	EndTime    *time.Time `form:"endTime" time_format:"2006-01-02 15:04:05"`
}

// ArticleVO 资讯视图对象
type ArticleVO struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	CategoryID  int64       `json:"categoryId"`
	UserID      int64       `json:"userId"`
	Charged     int         `json:"charged"`
	Status      string      `json:"status"`
	PublishTime time.Time   `json:"publishTime"`
	ReadNum     int         `json:"readNum"`
	LikeNum     int         `json:"likeNum"`
	DislikeNum  int         `json:"dislikeNum"`
	Comments    []CommentVO `json:"comments,omitempty"`
}
