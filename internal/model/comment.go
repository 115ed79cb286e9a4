package model

import "time"

// Comment mirrors cms_comment（一级评论）.
type Comment struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"column:user_id" json:"userId"`
	ArticleID   int64     `gorm:"column:article_id" json:"articleId"`
	Content     string    `gorm:"column:content" json:"content"`
	PublishTime time.Time `gorm:"column:publish_time" json:"publishTime"`
}

func (Comment) TableName() string { return "cms_comment" }

// SubComment mirrors cms_sub_comment（二级评论）.
// ParentID 必须指向一条一级评论，二级评论之间不再嵌套。
type SubComment struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentID    int64     `gorm:"column:parent_id" json:"parentId"`
	UserID      int64     `gorm:"column:user_id" json:"userId"`
	Content     string    `gorm:"column:content" json:"content"`
	PublishTime time.Time `gorm:"column:publish_time" json:"publishTime"`
}

func (SubComment) TableName() string { return "cms_sub_comment" }
