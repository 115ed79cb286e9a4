package dto

import "time"

// LogPageQuery 请求日志分页检索条件
type LogPageQuery struct {
	PageQuery
	Username   string     `form:"username"`
	RequestURL string     `form:"requestUrl"`
	StartTime  *time.Time `form:"startTime" time_format:"2006-01-02 15:04:05"`
	EndTime    *time.Time `form:"endTime" time_format:"2006-01-02 15:04:05"`
}

// LogVO 请求日志视图对象
type LogVO struct {
	Username      string    `json:"username"`
	BusinessName  string    `json:"businessName"`
	RequestURL    string    `json:"requestUrl"`
	RequestMethod string    `json:"requestMethod"`
	RequestIP     string    `json:"ip"`
	SpendTime     int64     `json:"spendTime"`
	CreateTime    time.Time `json:"createTime"`
}
