package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	PaymentSandbox = "sandbox"
	PaymentHTTP    = "http"
)

type Config struct {
	Env     string `validate:"required,oneof=development stage production"`
	Storage string `validate:"required,oneof=memory postgres"`
	Http    Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Payment Payment `validate:"required"`

	Reservation Reservation `validate:"required"`

	Pricing Pricing

	Stats Stats `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	// ShipmentTopic carries carrier events that move orders to Shipping/Delivered.
	ShipmentTopic string `validate:"required"`
	DLQTopic      string `validate:"required"`
	// NotificationTopic receives order status notifications.
	NotificationTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
	// IdempotencyTTL is how long a processed Idempotency-Key is remembered.
	IdempotencyTTL time.Duration `validate:"gt=0"`
}

type Payment struct {
	Mode    string        `validate:"required,oneof=sandbox http"`
	BaseURL string        `validate:"required_if=Mode http,omitempty,url"`
	Timeout time.Duration `validate:"gt=0"`

	StatusPollAttempts int           `validate:"gte=1"`
	StatusPollDelay    time.Duration `validate:"gt=0"`
}

type Reservation struct {
	PaymentHold   time.Duration `validate:"gt=0"`
	ApprovalHold  time.Duration `validate:"gt=0"`
	SweepInterval time.Duration `validate:"gt=0"`
	// HistoryLimit caps the in-memory audit trail per order.
	HistoryLimit int `validate:"gte=1"`
}

type Pricing struct {
	VATRate           float64 `validate:"gte=0,lt=1"`
	LowStockThreshold int     `validate:"gte=0"`
}

type Stats struct {
	CacheCapacity int           `validate:"gte=1"`
	CacheTTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env:     env("ENV", "development"),
		Storage: env("STORAGE", StoragePostgres),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:           env("KAFKA_GROUP_ID", "media-store-orders"),
			Brokers:           strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			ShipmentTopic:     env("KAFKA_SHIPMENT_TOPIC", "shipments"),
			DLQTopic:          env("KAFKA_DLQ_TOPIC", "shipments-dlq"),
			NotificationTopic: env("KAFKA_NOTIFICATION_TOPIC", "order-notifications"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "media_store"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:           env("REDIS_ADDR", "localhost:6379"),
			Password:       env("REDIS_PASSWORD", ""),
			DB:             envInt("REDIS_DB", 0),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},

		Payment: Payment{
			Mode:    env("PAYMENT_MODE", PaymentSandbox),
			BaseURL: env("PAYMENT_BASE_URL", ""),
			Timeout: envDuration("PAYMENT_TIMEOUT", 10*time.Second),

			StatusPollAttempts: envInt("PAYMENT_STATUS_POLL_ATTEMPTS", 5),
			StatusPollDelay:    envDuration("PAYMENT_STATUS_POLL_DELAY", 500*time.Millisecond),
		},

		Reservation: Reservation{
			PaymentHold:   envDuration("RESERVATION_PAYMENT_HOLD", 15*time.Minute),
			ApprovalHold:  envDuration("RESERVATION_APPROVAL_HOLD", 72*time.Hour),
			SweepInterval: envDuration("RESERVATION_SWEEP_INTERVAL", time.Minute),
			HistoryLimit:  envInt("HISTORY_LIMIT", 200),
		},

		Pricing: Pricing{
			VATRate:           envFloat("VAT_RATE", 0.10),
			LowStockThreshold: envInt("LOW_STOCK_THRESHOLD", 3),
		},

		Stats: Stats{
			CacheCapacity: envInt("STATS_CACHE_CAPACITY", 100),
			CacheTTL:      envDuration("STATS_CACHE_TTL", time.Minute),
		},
	}
}

// Validate checks the config. Connection settings of external systems are
// skipped in memory mode.
func (c Config) Validate() error {
	validate := validator.New()
	if c.Storage == StorageMemory {
		return validate.StructExcept(c, "Postgres", "Kafka", "Redis")
	}
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
