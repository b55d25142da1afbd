package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"MONGODB_URL", "DATABASE_NAME", "COLLECTION_PROFILE", "COLLECTION_PICTURE",
	"COLLECTION_MEETING", "COLLECTION_PLACE",
	"IMAGE_STORE", "IMAGE_DIR", "S3_BUCKET", "S3_REGION", "S3_ENDPOINT",
	"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PREFIX",
	"ENCODE_FILE", "ENCODER_URL", "ENCODER_TIMEOUT_SECOND", "UPLOAD_MAX_BYTES",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DASHBOARD_CACHE_TTL_SECOND",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE",
}

// resetEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func resetEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "meeting", cfg.DatabaseName)
	assert.Equal(t, "user", cfg.ProfileCollection)
	assert.Equal(t, "user_picture", cfg.PictureCollection)
	assert.Equal(t, "meeting", cfg.MeetingCollection)
	assert.Equal(t, "place", cfg.PlaceCollection)
	assert.Equal(t, ImageStoreLocal, cfg.ImageStore)
	assert.Equal(t, "lall_img/img_file", cfg.ImageDir)
	assert.Equal(t, "EncodeFile.json", cfg.EncodeFile)
	assert.Equal(t, 30*time.Second, cfg.EncoderTimeout)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "user-events", cfg.KafkaTopic)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 300, cfg.RateLimitPerMinute)
}

func TestLoad_FromEnvFile(t *testing.T) {
	resetEnv(t)
	// godotenv never overrides variables that already exist, blank or not.
	for _, k := range []string{"MONGODB_URL", "DATABASE_NAME", "COLLECTION_PROFILE", "KAFKA_BROKERS"} {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), "config.env")
	content := "MONGODB_URL=mongodb://db:27017\nDATABASE_NAME=capstone\nCOLLECTION_PROFILE=profiles\nKAFKA_BROKERS=k1:9092, k2:9092\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"MONGODB_URL", "DATABASE_NAME", "COLLECTION_PROFILE", "KAFKA_BROKERS"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	assert.Equal(t, "capstone", cfg.DatabaseName)
	assert.Equal(t, "profiles", cfg.ProfileCollection)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("IMAGE_STORE", "S3")
	t.Setenv("S3_BUCKET", "faces")
	t.Setenv("ENCODER_TIMEOUT_SECOND", "5")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DASHBOARD_CACHE_TTL_SECOND", "120")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, ImageStoreS3, cfg.ImageStore)
	assert.Equal(t, "faces", cfg.S3Bucket)
	assert.Equal(t, 5*time.Second, cfg.EncoderTimeout)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "x"}},
		{name: "bad upload limit", env: map[string]string{"UPLOAD_MAX_BYTES": "big"}},
		{name: "bad encoder timeout", env: map[string]string{"ENCODER_TIMEOUT_SECOND": "soon"}},
		{name: "unknown image store", env: map[string]string{"IMAGE_STORE": "ftp"}},
		{name: "s3 without bucket", env: map[string]string{"IMAGE_STORE": "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("nonexistent.env")
			assert.Error(t, err)
		})
	}
}
