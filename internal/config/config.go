package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Store Store `validate:"required"`

	Postgres Postgres `validate:"-"`

	Kafka Kafka

	Cache Cache

	Auth Auth `validate:"required"`

	Pricing Pricing

	Payment Payment
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Store struct {
	Driver string `validate:"required,oneof=postgres memory"`
}

type Kafka struct {
	Enabled bool

	GroupID       string   `validate:"required_if=Enabled true"`
	Brokers       []string `validate:"required_if=Enabled true,dive,hostname_port"`
	CommandsTopic string   `validate:"required_if=Enabled true"`
	EventsTopic   string   `validate:"required_if=Enabled true"`

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

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
	RedisURL string        `validate:"omitempty,url"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
	AdminRole string `validate:"required"`
}

type Pricing struct {
	ShippingFee      int64         `validate:"gte=0"`
	DeliveryLeadTime time.Duration `validate:"gt=0"`
}

type Payment struct {
	Latency                 time.Duration `validate:"gte=0"`
	BankTransferSuccessRate float64       `validate:"gte=0,lte=1"`
	EWalletSuccessRate      float64       `validate:"gte=0,lte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Store: Store{
			Driver: env("STORE_DRIVER", "postgres"),
		},

		Kafka: Kafka{
			Enabled:       envBool("KAFKA_ENABLED", true),
			GroupID:       env("KAFKA_GROUP_ID", "order-core"),
			CommandsTopic: env("KAFKA_COMMANDS_TOPIC", "order-status-commands"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "shop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
			RedisURL: env("REDIS_URL", ""),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
			AdminRole: env("ADMIN_ROLE", "admin"),
		},

		Pricing: Pricing{
			ShippingFee:      envInt64("SHIPPING_FEE", 30000),
			DeliveryLeadTime: envDuration("DELIVERY_LEAD_TIME", 72*time.Hour),
		},

		Payment: Payment{
			Latency:                 envDuration("PAYMENT_LATENCY", 2*time.Second),
			BankTransferSuccessRate: envFloat("PAYMENT_BANK_TRANSFER_SUCCESS_RATE", 0.90),
			EWalletSuccessRate:      envFloat("PAYMENT_EWALLET_SUCCESS_RATE", 0.95),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Driver == "postgres" {
		return validate.Struct(c.Postgres)
	}
	return nil
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

func envInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.ParseInt(value, 10, 64)
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

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
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
