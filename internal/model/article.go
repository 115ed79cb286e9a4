package model

import "time"

// 资讯审核状态，取值与数据库及前端保持一致
const (
	ArticleStatusUnreviewed = "未审核"
	ArticleStatusApproved   = "审核通过"
	ArticleStatusRejected   = "审核不通过"
)

// Article mirrors cms_article.
type Article struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Content     string    `gorm:"column:content" json:"content"`
	CategoryID  int64     `gorm:"column:category_id" json:"categoryId"`
	UserID      int64     `gorm:"column:user_id" json:"userId"`
	Charged     int       `gorm:"column:charged" json:"charged"`
	Status      string    `gorm:"column:status" json:"status"`
	PublishTime time.Time `gorm:"column:publish_time" json:"publishTime"`
	ReadNum     int       `gorm:"column:read_num" json:"readNum"`
	LikeNum     int       `gorm:"column:like_num" json:"likeNum"`
	DislikeNum  int       `gorm:"column:dislike_num" json:"dislikeNum"`
	Deleted     int       `gorm:"column:deleted" json:"-"`
}

func (Article) TableName() string { return "cms_article" }
