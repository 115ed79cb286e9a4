package data

import (
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"cms-backend/internal/config"
)

// NewKafkaWriter 创建指定 topic 的异步生产者。
// WriteMessages 只把消息排进批次立即返回，发送结果通过 Completion 回调上报，
// 请求线程不会等批次刷盘。
func NewKafkaWriter(cfg config.KafkaConfig, topic string, log *zap.Logger) *kafka.Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Warn("publish kafka messages failed",
					zap.String("topic", topic),
					zap.Int("count", len(messages)),
					zap.Error(err))
			}
		},
	}
}

// NewKafkaReader 创建指定 topic 的消费者
func NewKafkaReader(cfg config.KafkaConfig, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
}
