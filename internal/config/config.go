package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Minio     MinioConfig
	JWT       JWTConfig
	Feed      FeedConfig
	RateLimit RateLimitConfig
}

var (
	ConfigInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type MinioConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	MaxPhotoSize int64
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

type FeedConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("DEVCONNECT_HOST", "")
		viper.SetDefault("DEVCONNECT_PORT", "8080")
		viper.SetDefault("DEVCONNECT_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("DEVCONNECT_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("DEVCONNECT_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("DEVCONNECT_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:5174"})
		viper.SetDefault("DEVCONNECT_JWT_SECRET", "secret")
		viper.SetDefault("DEVCONNECT_JWT_EXPIRE", "168h")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "devconnect")
		viper.SetDefault("REDIS_ADDR", "localhost:6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("REDIS_MAX_RETRIES", 3)
		viper.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
		viper.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
		viper.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)
		viper.SetDefault("REDIS_POOL_SIZE", 100)
		viper.SetDefault("REDIS_MIN_IDLE_CONNS", 10)
		viper.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
		viper.SetDefault("KAFKA_TOPIC", "devconnect.connection-events")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
		viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
		viper.SetDefault("MINIO_BUCKET", "devconnect-photos")
		viper.SetDefault("MINIO_MAX_PHOTO_SIZE", int64(5*1024*1024))
		viper.SetDefault("FEED_DEFAULT_LIMIT", 10)
		viper.SetDefault("FEED_MAX_LIMIT", 50)
		viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
		viper.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
		viper.AutomaticEnv()

		ConfigInstance = &Config{
			Server: ServerConfig{
				Host:           viper.GetString("DEVCONNECT_HOST"),
				Port:           viper.GetString("DEVCONNECT_PORT"),
				ReadTimeout:    viper.GetDuration("DEVCONNECT_READ_TIMEOUT"),
				WriteTimeout:   viper.GetDuration("DEVCONNECT_WRITE_TIMEOUT"),
				IdleTimeout:    viper.GetDuration("DEVCONNECT_IDLE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("DEVCONNECT_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("MYSQL_HOST"),
				Port:     viper.GetString("MYSQL_PORT"),
				User:     viper.GetString("MYSQL_USER"),
				Password: viper.GetString("MYSQL_PASSWORD"),
				DBName:   viper.GetString("MYSQL_DB"),
			},
			Redis: RedisConfig{
				Addr:         viper.GetString("REDIS_ADDR"),
				Password:     viper.GetString("REDIS_PASSWORD"),
				DB:           viper.GetInt("REDIS_DB"),
				MaxRetries:   viper.GetInt("REDIS_MAX_RETRIES"),
				DialTimeout:  viper.GetDuration("REDIS_DIAL_TIMEOUT"),
				ReadTimeout:  viper.GetDuration("REDIS_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("REDIS_WRITE_TIMEOUT"),
				PoolSize:     viper.GetInt("REDIS_POOL_SIZE"),
				MinIdleConns: viper.GetInt("REDIS_MIN_IDLE_CONNS"),
			},
			Kafka: KafkaConfig{
				Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
				Topic:   viper.GetString("KAFKA_TOPIC"),
			},
			Minio: MinioConfig{
				Endpoint:     viper.GetString("MINIO_ENDPOINT"),
				AccessKey:    viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey:    viper.GetString("MINIO_SECRET_KEY"),
				Bucket:       viper.GetString("MINIO_BUCKET"),
				MaxPhotoSize: viper.GetInt64("MINIO_MAX_PHOTO_SIZE"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("DEVCONNECT_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("DEVCONNECT_JWT_EXPIRE"),
			},
			Feed: FeedConfig{
				DefaultLimit: viper.GetInt("FEED_DEFAULT_LIMIT"),
				MaxLimit:     viper.GetInt("FEED_MAX_LIMIT"),
			},
			RateLimit: RateLimitConfig{
				Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
				Window:   viper.GetDuration("RATE_LIMIT_WINDOW"),
			},
		}
	})

	return ConfigInstance, nil
}
