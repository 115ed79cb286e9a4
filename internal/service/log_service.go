package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"cms-backend/internal/dao"
	"cms-backend/internal/dto"
	"cms-backend/internal/mapper"
	"cms-backend/internal/model"
	"cms-backend/internal/observability"
	"cms-backend/internal/utils"
)

// accessLogMessage 是请求日志在 Kafka 上的载荷
type accessLogMessage struct {
	Username      string    `json:"username"`
	BusinessName  string    `json:"businessName"`
	RequestURL    string    `json:"requestUrl"`
	RequestMethod string    `json:"requestMethod"`
	RequestIP     string    `json:"requestIp"`
	SpendTime     int64     `json:"spendTime"`
	CreateTime    time.Time `json:"createTime"`
}

// LogService 请求日志业务逻辑
// 写路径异步化：中间件把日志事件投递到 Kafka，后台消费者落库，
// 避免每个请求都同步写一次 MySQL。日志丢一条无伤大雅，所以投递失败只告警不重试。
type LogService struct {
	logDao dao.LogDao
	writer *kafka.Writer
	reader *kafka.Reader
	log    *zap.Logger
}

// NewLogService 创建 LogService 实例
func NewLogService(logDao dao.LogDao, writer *kafka.Writer, reader *kafka.Reader, log *zap.Logger) *LogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogService{logDao: logDao, writer: writer, reader: reader, log: log}
}

// Record 投递一条请求日志事件。生产者是异步批量发送，这里只入队不等刷盘，
// 批次发送失败由生产者的 Completion 回调告警。
func (s *LogService) Record(ctx context.Context, username, businessName, url, method, ip string, spendTime time.Duration) {
	if s.writer == nil {
		return
	}
	payload := accessLogMessage{
		Username:      username,
		BusinessName:  businessName,
		RequestURL:    url,
		RequestMethod: method,
		RequestIP:     ip,
		SpendTime:     spendTime.Milliseconds(),
		CreateTime:    time.Now(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn("marshal access log failed", zap.Error(err))
		return
	}
	var headers []kafka.Header
	observability.InjectKafkaHeaders(ctx, &headers)
	message := kafka.Message{Value: value, Headers: headers}
	if err := s.writer.WriteMessages(ctx, message); err != nil {
		s.log.Warn("publish access log failed", zap.Error(err))
	}
}

// Consume 后台消费日志事件并写入 MySQL，ctx 取消后退出
func (s *LogService) Consume(ctx context.Context) {
	if s.reader == nil {
		return
	}
	for {
		message, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			s.log.Warn("read access log failed", zap.Error(err))
			continue
		}
		var payload accessLogMessage
		if err := json.Unmarshal(message.Value, &payload); err != nil {
			s.log.Warn("decode access log failed", zap.Error(err))
			continue
		}
		msgCtx := observability.ExtractKafkaContext(ctx, message.Headers)
		entry := &model.Log{
			Username:      payload.Username,
			BusinessName:  payload.BusinessName,
			RequestURL:    payload.RequestURL,
			RequestMethod: payload.RequestMethod,
			RequestIP:     payload.RequestIP,
			SpendTime:     payload.SpendTime,
			CreateTime:    payload.CreateTime,
		}
		if err := s.logDao.Insert(msgCtx, entry); err != nil {
			s.log.Warn("persist access log failed", zap.Error(err))
		}
	}
}

// PageQuery 分页+多条件检索请求日志
func (s *LogService) PageQuery(ctx context.Context, q dto.LogPageQuery) (*utils.Page[dto.LogVO], error) {
	q.Normalize()
	filter := dao.LogFilter{
		Username:   q.Username,
		RequestURL: q.RequestURL,
		StartTime:  q.StartTime,
		EndTime:    q.EndTime,
	}
	page, err := s.logDao.Page(ctx, filter, q.PageNum, q.PageSize)
	if err != nil {
		return nil, err
	}
	return utils.ConvertPage(page, mapper.ToLogVO), nil
}
