package config

import (
	"os"
	"strings"
)

// Config is the service wiring read from the environment. Kafka, Redis
// and S3 are all optional: with none configured the service runs
// HTTP-only and skips status fan-out and artifact persistence, the same
// degraded mode the compose pipeline uses in tests.
type Config struct {
	ListenAddr string

	KafkaBrokers    []string
	RecordsTopic    string
	StatusTopic     string
	ConsumerGroupID string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket string
	S3Region string

	FormatProfilePath string
	FormatName        string
}

// Load reads configuration from the environment with sensible local
// defaults. Call godotenv.Load first if a .env file should apply.
func Load() Config {
	return Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8085"),
		KafkaBrokers:      splitEnv("KAFKA_BOOTSTRAP_SERVERS"),
		RecordsTopic:      getEnv("KAFKA_TOPIC_RECORDS", "video-records"),
		StatusTopic:       getEnv("KAFKA_TOPIC_STATUS", "video-status"),
		ConsumerGroupID:   getEnv("KAFKA_CONSUMER_GROUP_ID", "rankreel-composer"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           0,
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("AWS_REGION", "us-east-1"),
		FormatProfilePath: os.Getenv("FORMAT_PROFILES"),
		FormatName:        getEnv("FORMAT_NAME", "portrait-55s"),
	}
}

// KafkaEnabled reports whether broker addresses were configured.
func (c Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }

// RedisEnabled reports whether a Redis address was configured.
func (c Config) RedisEnabled() bool { return c.RedisAddr != "" }

// S3Enabled reports whether an artifact bucket was configured.
func (c Config) S3Enabled() bool { return c.S3Bucket != "" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
