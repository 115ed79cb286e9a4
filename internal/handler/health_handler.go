package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cms-backend/internal/data"
)

// HealthHandler 存活与就绪探针
type HealthHandler struct {
	db           PingableDB
	redis        *redis.Client
	kafkaBrokers []string
	log          *zap.Logger
	checkTimeout time.Duration
}

// PingableDB 只依赖 Ping 能力，拿 *sql.DB 即可
type PingableDB interface {
	PingContext(ctx context.Context) error
}

func NewHealthHandler(db PingableDB, redisClient *redis.Client, kafkaBrokers []string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		redis:        redisClient,
		kafkaBrokers: kafkaBrokers,
		log:          log,
		checkTimeout: 2 * time.Second,
	}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
}

// Healthz 返回服务健康状态
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz 返回服务就绪状态（服务是否可以对外接收流量）
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	checks := map[string]string{}
	if err := h.db.PingContext(ctx); err != nil {
		checks["mysql"] = err.Error()
	}
	if err := data.Ping(ctx, h.redis); err != nil {
		checks["redis"] = err.Error()
	}
	if err := checkKafka(ctx, h.kafkaBrokers); err != nil {
		checks["kafka"] = err.Error()
	}

	if len(checks) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "fail",
			"checks": checks,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// checkKafka 逐个 broker 试探 TCP 连通性，任意一个可达即视为正常
func checkKafka(ctx context.Context, brokers []string) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	dialer := net.Dialer{Timeout: time.Second}
	var lastErr error
	for _, broker := range brokers {
		conn, err := dialer.DialContext(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		lastErr = err
	}
	return lastErr
}
