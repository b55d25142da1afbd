//go:build integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Chatrawit/Meeting2/internal/config"
)

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	mongoReq := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: mongoReq, Started: true})
	require.NoError(t, err)
	defer mongoContainer.Terminate(ctx)

	mongoHost, _ := mongoContainer.Host(ctx)
	mongoPort, _ := mongoContainer.MappedPort(ctx, "27017")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	dir := t.TempDir()
	cfg := &config.Config{
		AppHost:            "127.0.0.1",
		AppPort:            "8086",
		LogLevel:           "debug",
		MongoURL:           fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort.Port()),
		DatabaseName:       "testdb",
		ProfileCollection:  "user",
		PictureCollection:  "user_picture",
		MeetingCollection:  "meeting",
		PlaceCollection:    "place",
		ImageStore:         config.ImageStoreLocal,
		ImageDir:           filepath.Join(dir, "img_file"),
		EncodeFile:         filepath.Join(dir, "EncodeFile.json"),
		EncoderURL:         "http://127.0.0.1:1",
		EncoderTimeout:     time.Second,
		UploadMaxBytes:     1 << 20,
		RedisAddr:          fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
		CacheTTL:           30 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:8086/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 100*time.Millisecond)

	resp, err := http.Get("http://127.0.0.1:8086/dashboard/meeting-counts")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_MongoUnreachable(t *testing.T) {
	cfg := &config.Config{
		AppHost:    "127.0.0.1",
		AppPort:    "8087",
		LogLevel:   "info",
		MongoURL:   "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500",
		ImageStore: config.ImageStoreLocal,
	}

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongodb ping failed")
}
