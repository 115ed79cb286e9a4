package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 汇总应用全部配置项
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	MySQL         MySQLConfig         `mapstructure:"mysql"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	App           AppConfig           `mapstructure:"app"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN             string `mapstructure:"dsn"`
	MaxOpenConns    int    `mapstructure:"maxOpenConns"`
	MaxIdleConns    int    `mapstructure:"maxIdleConns"`
	ConnMaxLifetime int    `mapstructure:"connMaxLifetimeSeconds"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers        []string `mapstructure:"brokers"`
	AccessLogTopic string   `mapstructure:"accessLogTopic"`
	GroupID        string   `mapstructure:"groupId"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"ttlMinutes"`
}

type LoggingConfig struct {
	Level           string `mapstructure:"level"`
	RequestIDHeader string `mapstructure:"requestIdHeader"`
}

type ObservabilityConfig struct {
	ServiceName string        `mapstructure:"serviceName"`
	Environment string        `mapstructure:"environment"`
	Tracing     TracingConfig `mapstructure:"tracing"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	OTLPGrpcEndpoint string  `mapstructure:"otlpGrpcEndpoint"`
	Insecure         bool    `mapstructure:"insecure"`
	SampleRate       float64 `mapstructure:"sampleRate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type AppConfig struct {
	ImageUploadDir string `mapstructure:"imageUploadDir"`
}

// Load 从给定路径加载 YAML 配置，环境变量 CMS_ 前缀可覆盖
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("CMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	return &cfg, nil
}

// MustLoad 加载配置，失败直接 panic（仅用于进程启动阶段）
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
