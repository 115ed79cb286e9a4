package model

import "time"

// Log mirrors cms_log（请求日志）.
type Log struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username      string    `gorm:"column:username" json:"username"`
	BusinessName  string    `gorm:"column:business_name" json:"businessName"`
	RequestURL    string    `gorm:"column:request_url" json:"requestUrl"`
	RequestMethod string    `gorm:"column:request_method" json:"requestMethod"`
	RequestIP     string    `gorm:"column:request_ip" json:"ip"`
	SpendTime     int64     `gorm:"column:spend_time" json:"spendTime"`
	CreateTime    time.Time `gorm:"column:create_time" json:"createTime"`
}

func (Log) TableName() string { return "cms_log" }
