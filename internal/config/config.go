package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Transport 消息传输方式
type Transport string

const (
	TransportTCP   Transport = "TCP"
	TransportKafka Transport = "KAFKA"
)

// Config 服务配置
type Config struct {
	AppEnv    string
	Transport Transport
	Host      string
	Port      int
	TZ        string
	HTTPPort  int // 健康检查 / 指标 / 调试网关

	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Catalog  CatalogConfig

	DropdownCacheTTL    time.Duration
	DropdownRefreshCron string
	ImportCooldown      time.Duration
	FallbackLang        string
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string // silent | error | warn | info
	Seed            bool
}

// KafkaConfig Kafka 传输配置
type KafkaConfig struct {
	Brokers  []string
	GroupID  string
	ClientID string
}

// RedisConfig 缓存配置，URL 为空时使用进程内缓存
type RedisConfig struct {
	URL       string
	Namespace string
}

// JWTConfig 网关鉴权
type JWTConfig struct {
	Secret string
	Issuer string
}

// StorageConfig 对象存储 (品牌图片、导入文件)
type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	CDNDomain string
	BasePath  string
}

// CatalogConfig 商品目录服务，BaseURL 为空时直接查库
type CatalogConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Load 读取 .env 与环境变量
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// .env 不存在时忽略
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		AppEnv:    v.GetString("APP_ENV"),
		Transport: Transport(strings.ToUpper(v.GetString("TRANSPORT"))),
		Host:      v.GetString("HOST"),
		Port:      v.GetInt("PORT"),
		TZ:        v.GetString("TZ"),
		HTTPPort:  v.GetInt("HTTP_PORT"),
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			LogLevel:        v.GetString("DB_LOG_LEVEL"),
			Seed:            v.GetBool("DB_SEED"),
		},
		Kafka: KafkaConfig{
			Brokers:  splitList(v.GetString("KAFKA_BROKERS")),
			GroupID:  v.GetString("KAFKA_GROUP_ID"),
			ClientID: v.GetString("KAFKA_CLIENT_ID"),
		},
		Redis: RedisConfig{
			URL:       v.GetString("REDIS_URL"),
			Namespace: v.GetString("REDIS_NAMESPACE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
		},
		Storage: StorageConfig{
			Provider:  v.GetString("STORAGE_PROVIDER"),
			Bucket:    v.GetString("AWS_BUCKET"),
			Region:    v.GetString("AWS_REGION"),
			AccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:  v.GetString("AWS_ENDPOINT"),
			CDNDomain: v.GetString("AWS_CDN_DOMAIN"),
			BasePath:  v.GetString("STORAGE_BASE_PATH"),
		},
		Catalog: CatalogConfig{
			BaseURL: v.GetString("PRODUCT_SERVICE_URL"),
			Token:   v.GetString("PRODUCT_SERVICE_TOKEN"),
			Timeout: v.GetDuration("PRODUCT_SERVICE_TIMEOUT"),
		},
		DropdownCacheTTL:    v.GetDuration("DROPDOWN_CACHE_TTL"),
		DropdownRefreshCron: v.GetString("DROPDOWN_REFRESH_CRON"),
		ImportCooldown:      v.GetDuration("IMPORT_COOLDOWN"),
		FallbackLang:        v.GetString("FALLBACK_LANG"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("TRANSPORT", string(TransportTCP))
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 3001)
	v.SetDefault("TZ", "UTC")
	v.SetDefault("HTTP_PORT", 8080)

	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=master port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_SEED", false)

	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_ID", "master-consumer")
	v.SetDefault("KAFKA_CLIENT_ID", "master")

	v.SetDefault("REDIS_NAMESPACE", "master")
	v.SetDefault("JWT_SECRET", "master-ms-secret-change-in-production")
	v.SetDefault("JWT_ISSUER", "master-ms")

	v.SetDefault("STORAGE_PROVIDER", "local")
	v.SetDefault("STORAGE_BASE_PATH", "master")
	v.SetDefault("PRODUCT_SERVICE_TIMEOUT", 5*time.Second)

	v.SetDefault("DROPDOWN_CACHE_TTL", 10*time.Minute)
	v.SetDefault("DROPDOWN_REFRESH_CRON", "@every 5m")
	v.SetDefault("IMPORT_COOLDOWN", 30*time.Second)
	v.SetDefault("FALLBACK_LANG", "en")
}

// Validate 启动前的配置校验
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportTCP:
		if c.Port <= 0 {
			return fmt.Errorf("invalid PORT %d for TCP transport", c.Port)
		}
	case TransportKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required for KAFKA transport")
		}
	default:
		return fmt.Errorf("unsupported TRANSPORT %q, want TCP or KAFKA", c.Transport)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Addr TCP 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
