package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Image mirror backends.
const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"
)

// Config holds application level configuration loaded from a dotenv file and the environment.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	MongoURL          string
	DatabaseName      string
	ProfileCollection string
	PictureCollection string
	MeetingCollection string
	PlaceCollection   string

	ImageStore     string
	ImageDir       string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3Prefix       string
	EncodeFile     string
	EncoderURL     string
	EncoderTimeout time.Duration
	UploadMaxBytes int64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
	RateLimitPerMinute int
}

// Load reads the dotenv file at path (missing files are ignored) and builds
// Config from the environment with defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		MongoURL:          getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName:      getEnv("DATABASE_NAME", "meeting"),
		ProfileCollection: getEnv("COLLECTION_PROFILE", "user"),
		PictureCollection: getEnv("COLLECTION_PICTURE", "user_picture"),
		MeetingCollection: getEnv("COLLECTION_MEETING", "meeting"),
		PlaceCollection:   getEnv("COLLECTION_PLACE", "place"),

		ImageStore:  strings.ToLower(getEnv("IMAGE_STORE", ImageStoreLocal)),
		ImageDir:    getEnv("IMAGE_DIR", "lall_img/img_file"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Prefix:    getEnv("S3_PREFIX", "img_file"),
		EncodeFile:  getEnv("ENCODE_FILE", "EncodeFile.json"),
		EncoderURL:  getEnv("ENCODER_URL", "http://localhost:5001"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "user-events"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.EncoderTimeout, err = getEnvSeconds("ENCODER_TIMEOUT_SECOND", 30); err != nil {
		return nil, err
	}
	if cfg.UploadMaxBytes, err = strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", "10485760"), 10, 64); err != nil {
		return nil, fmt.Errorf("parse UPLOAD_MAX_BYTES: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	if cfg.CacheTTL, err = getEnvSeconds("DASHBOARD_CACHE_TTL_SECOND", 30); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "300")); err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_PER_MINUTE: %w", err)
	}

	if cfg.ImageStore != ImageStoreLocal && cfg.ImageStore != ImageStoreS3 {
		return nil, fmt.Errorf("unknown IMAGE_STORE %q", cfg.ImageStore)
	}
	if cfg.ImageStore == ImageStoreS3 && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when IMAGE_STORE=s3")
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) (time.Duration, error) {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
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
