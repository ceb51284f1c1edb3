package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Limits   LimitConfig
	Share    ShareConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Path string
}

type RedisConfig struct {
	Addr    string
	Enabled bool
}

type KafkaConfig struct {
	Brokers  []string
	Topics   TopicConfig
	MockMode bool
	Enabled  bool
}

type TopicConfig struct {
	EventCreated        string
	ContributionCreated string
	ContributionUpdated string
	ContributionDeleted string
}

type LimitConfig struct {
	// GoalLimit caps the total number of goals across all events.
	// Zero disables the cap.
	GoalLimit int
	// AdminVerifyMax caps verify-admin attempts per event inside
	// AdminVerifyWindow. Only enforced when Redis is enabled.
	AdminVerifyMax    int
	AdminVerifyWindow time.Duration
}

type ShareConfig struct {
	// BaseURL is the frontend URL encoded into event share QR codes.
	BaseURL string
}

func Load() *Config {
	redisAddr := getEnv("REDIS_ADDR", "")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Path: getEnv("SQLITE_PATH", "eventbite.db"),
		},
		Redis: RedisConfig{
			Addr:    redisAddr,
			Enabled: redisAddr != "",
		},
		Kafka: KafkaConfig{
			Brokers:  []string{getEnv("KAFKA_ADDR", "localhost:9092")},
			Enabled:  getEnvBool("KAFKA_ENABLED", false),
			MockMode: getEnvBool("KAFKA_MOCK_MODE", false),
			Topics: TopicConfig{
				EventCreated:        getEnv("KAFKA_TOPIC_EVENT_CREATED", "eventbite.event.created"),
				ContributionCreated: getEnv("KAFKA_TOPIC_CONTRIBUTION_CREATED", "eventbite.contribution.created"),
				ContributionUpdated: getEnv("KAFKA_TOPIC_CONTRIBUTION_UPDATED", "eventbite.contribution.updated"),
				ContributionDeleted: getEnv("KAFKA_TOPIC_CONTRIBUTION_DELETED", "eventbite.contribution.deleted"),
			},
		},
		Limits: LimitConfig{
			GoalLimit:         getEnvInt("GOAL_LIMIT", 0),
			AdminVerifyMax:    getEnvInt("ADMIN_VERIFY_MAX", 10),
			AdminVerifyWindow: time.Duration(getEnvInt("ADMIN_VERIFY_WINDOW_MINUTES", 15)) * time.Minute,
		},
		Share: ShareConfig{
			BaseURL: getEnv("SHARE_BASE_URL", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
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
