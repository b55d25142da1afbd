// Package bootstrap builds the infrastructure clients shared by the HTTP server and the reencode command.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Chatrawit/Meeting2/internal/config"
	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/repositories"
	"github.com/Chatrawit/Meeting2/internal/services"
)

// MongoPingTimeout bounds the startup reachability check.
const MongoPingTimeout = 5 * time.Second

// ConnectMongo connects to MongoDB and pings it. The caller must disconnect the client.
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, MongoPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	logger.Log.Infow("mongodb connected", "database", cfg.DatabaseName)
	return client, nil
}

// NewImageStore returns the image mirror selected by IMAGE_STORE.
func NewImageStore(ctx context.Context, cfg *config.Config) (services.ImageStore, error) {
	switch cfg.ImageStore {
	case config.ImageStoreS3:
		client, err := repositories.NewS3Client(ctx, repositories.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Log.Infow("image store", "backend", config.ImageStoreS3, "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		return repositories.NewS3ImageStore(client, cfg.S3Bucket, cfg.S3Prefix), nil
	case config.ImageStoreLocal:
		logger.Log.Infow("image store", "backend", config.ImageStoreLocal, "dir", cfg.ImageDir)
		return repositories.NewLocalImageStore(cfg.ImageDir), nil
	default:
		return nil, fmt.Errorf("unknown image store %q", cfg.ImageStore)
	}
}

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// EventWriter adapts an optional *kafka.Writer to services.KafkaWriter so a
// disabled writer stays a nil interface.
func EventWriter(w *kafka.Writer) services.KafkaWriter {
	if w == nil {
		return nil
	}
	return w
}

// NewDashboardCache connects to Redis when REDIS_ADDR is set. Both return
// values are nil when caching is disabled.
func NewDashboardCache(ctx context.Context, cfg *config.Config) (*redis.Client, services.DashboardCache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}

	logger.Log.Infow("redis connected", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return rdb, repositories.NewDashboardCacheRepository(rdb, cfg.CacheTTL), nil
}
