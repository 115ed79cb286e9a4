package model

// Slideshow mirrors cms_slideshow（轮播图）.
type Slideshow struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description" json:"description"`
	URL         string `gorm:"column:url" json:"url"`
	Status      string `gorm:"column:status" json:"status"`
}

func (Slideshow) TableName() string { return "cms_slideshow" }
