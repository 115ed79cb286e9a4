package data

import (
	"testing"

	"cms-backend/internal/config"
)

// TestNewKafkaWriter_Async 生产者必须是异步模式，请求线程不能被批次刷盘阻塞
func TestNewKafkaWriter_Async(t *testing.T) {
	cfg := config.KafkaConfig{Brokers: []string{"localhost:9092"}}
	writer := NewKafkaWriter(cfg, "cms-access-log", nil)
	defer writer.Close()

	if !writer.Async {
		t.Error("writer should send asynchronously")
	}
	if writer.Completion == nil {
		t.Error("async writer needs a completion callback to surface send errors")
	}
}
