package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// MongoDB / GridFS media store Configuration
	MongoDB MongoDBConfig

	// NATS broker Configuration
	Nats NatsConfig

	// Command queue names
	Queues QueueConfig

	// Okta event hook Configuration
	Okta OktaConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	Environment  string // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoDBConfig contains the media store connection configuration
type MongoDBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// NatsConfig contains the broker connection configuration
type NatsConfig struct {
	URL string
}

// QueueConfig names the command stream and its five queues. One queue per
// command type; the stream plays the role of the routing exchange.
type QueueConfig struct {
	Stream        string
	PostCreate    string
	PostDelete    string
	Like          string
	CommentCreate string
	CommentDelete string
}

// OktaConfig contains the event-hook shared secret
type OktaConfig struct {
	EventSecret string
}

// LoadConfig reads .env (when present) and builds the configuration from
// environment variables with development defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using system env variables")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", ""),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "connected"),
			Password:     getEnv("MYSQL_PASSWORD", "connected123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "connected"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "connected"),
		},
		Nats: NatsConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Queues: QueueConfig{
			Stream:        getEnv("QUEUE_STREAM", "connected-commands"),
			PostCreate:    getEnv("QUEUE_POST", "connected-post"),
			PostDelete:    getEnv("QUEUE_POST_DELETE", "connected-post-delete"),
			Like:          getEnv("QUEUE_LIKE", "connected-like"),
			CommentCreate: getEnv("QUEUE_COMMENT", "connected-comment"),
			CommentDelete: getEnv("QUEUE_COMMENT_DELETE", "connected-comment-delete"),
		},
		Okta: OktaConfig{
			EventSecret: getEnv("OKTA_EVENT_SECRET", ""),
		},
	}
}

// DSN builds the MySQL connection string
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username, cfg.MongoDB.Password,
			cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
