package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/plugin/opentelemetry/tracing"

	"cms-backend/internal/config"
	"cms-backend/internal/data"
	"cms-backend/internal/middleware"
	"cms-backend/internal/observability"
	"cms-backend/internal/router"
	"cms-backend/internal/service"
	"cms-backend/internal/utils"
	"cms-backend/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CMS_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/app.yaml"
	}
	// 加载配置
	cfg := config.MustLoad(cfgPath)
	serviceName := cfg.Observability.ServiceName
	if serviceName == "" {
		serviceName = "cms-backend"
	}
	environment := cfg.Observability.Environment
	if environment == "" {
		environment = "local"
	}
	log, err := logger.New(cfg.Logging.Level, environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log = log.With(
		zap.String("service", serviceName),
		zap.String("env", environment),
	)
	log.Info("loaded config", zap.String("path", cfgPath))

	tracingCfg := observability.TracingConfig{
		Enabled:          cfg.Observability.Tracing.Enabled,
		OTLPGrpcEndpoint: cfg.Observability.Tracing.OTLPGrpcEndpoint,
		Insecure:         cfg.Observability.Tracing.Insecure,
		SampleRate:       cfg.Observability.Tracing.SampleRate,
	}
	resourceCfg := observability.ResourceConfig{
		ServiceName: serviceName,
		Environment: environment,
	}
	tracingShutdown, err := observability.SetupTracing(context.Background(), tracingCfg, resourceCfg)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracingShutdown(shutdownCtx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	// 初始化 MySQL
	db, err := data.NewMySQL(cfg.MySQL, log)
	if err != nil {
		log.Fatal("mysql init failed", zap.Error(err))
	}
	if cfg.Observability.Tracing.Enabled {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			log.Warn("gorm tracing plugin init failed", zap.Error(err))
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("mysql db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	log.Info("connected to mysql")

	// 初始化 Redis，登录态缓存用
	redisClient := data.NewRedis(cfg.Redis)
	if err := data.Ping(context.Background(), redisClient); err != nil {
		log.Fatal("redis ping failed", zap.Error(err))
	}
	defer redisClient.Close()
	if cfg.Observability.Tracing.Enabled {
		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			log.Warn("redis tracing init failed", zap.Error(err))
		}
	}
	log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	// 初始化 Kafka，访问日志走异步管道：中间件投递，消费协程落库
	logWriter := data.NewKafkaWriter(cfg.Kafka, cfg.Kafka.AccessLogTopic, log)
	logReader := data.NewKafkaReader(cfg.Kafka, cfg.Kafka.AccessLogTopic, cfg.Kafka.GroupID)
	defer logWriter.Close()
	defer logReader.Close()
	log.Info("configured kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("accessLogTopic", cfg.Kafka.AccessLogTopic),
		zap.String("groupID", cfg.Kafka.GroupID),
	)

	jwtUtil := utils.NewJwtUtil(cfg.JWT.Secret, cfg.JWT.TTLMinutes)
	services := service.NewRegistry(db, redisClient, logWriter, logReader, jwtUtil, log)

	// 访问日志消费协程，进程退出时随 context 停止
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	go services.Log.Consume(consumeCtx)

	// 初始化 Gin 引擎
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.ErrorHandler(log))
	engine.Use(middleware.RequestIDMiddleware(cfg.Logging.RequestIDHeader))
	// 集成 OpenTelemetry 中间件
	if cfg.Observability.Tracing.Enabled {
		engine.Use(otelgin.Middleware(serviceName))
	}
	if cfg.Observability.Metrics.Enabled {
		metricsRegistry := observability.NewMetricsRegistry()
		metrics := observability.NewHTTPMetrics(metricsRegistry, serviceName)
		engine.Use(metrics.Middleware())
		metricsPath := cfg.Observability.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		engine.GET(metricsPath, gin.WrapH(metrics.Handler()))
	}
	engine.Use(middleware.RequestLogger(log))

	uploadDir := cfg.App.ImageUploadDir
	if uploadDir == "" {
		uploadDir = utils.IMAGE_UPLOAD_DIR
	}
	log.Info("configured upload directory", zap.String("path", uploadDir))

	router.RegisterRoutes(engine, router.Deps{
		Services:     services,
		SQLDB:        sqlDB,
		Redis:        redisClient,
		KafkaBrokers: cfg.Kafka.Brokers,
		UploadDir:    uploadDir,
		Log:          log,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	// 启动 HTTP 服务（异步）
	go func() {
		log.Info("starting http server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server run failed", zap.Error(err))
		}
	}()

	// 监听系统信号，执行优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
