package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Chatrawit/Meeting2/docs"
	"github.com/Chatrawit/Meeting2/internal/bootstrap"
	"github.com/Chatrawit/Meeting2/internal/config"
	"github.com/Chatrawit/Meeting2/internal/facades"
	"github.com/Chatrawit/Meeting2/internal/handlers"
	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/middlewares"
	"github.com/Chatrawit/Meeting2/internal/repositories"
	"github.com/Chatrawit/Meeting2/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Meeting2 API
// @version 1.0.0
// @description User profiles with face pictures and meeting dashboard analytics
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type userAPI interface {
	handlers.UserCreator
	handlers.UserGetter
	handlers.UserUpdater
	handlers.UserDeleter
}

type pictureAPI interface {
	handlers.PictureUploader
	handlers.PictureDownloader
}

type dashboardAPI interface {
	handlers.MeetingCountsGetter
	handlers.TimeDistributionGetter
	handlers.VenueUsageGetter
	handlers.OverviewGetter
}

// routeDeps carries everything the router dispatches to.
type routeDeps struct {
	users     userAPI
	pictures  pictureAPI
	dashboard dashboardAPI
	health    handlers.HealthChecker
}

// run initializes the logger, MongoDB, the optional Redis cache, Kafka writer
// and S3 mirror, and the HTTP server. It sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB
	client, err := bootstrap.ConnectMongo(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	db := client.Database(cfg.DatabaseName)

	// Connect to Redis when the dashboard cache is enabled
	rdb, cache, err := bootstrap.NewDashboardCache(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Info("REDIS_ADDR not set, dashboard cache disabled")
	}

	// Kafka writer for lifecycle events
	kafkaWriter := bootstrap.NewKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	} else {
		log.Info("KAFKA_BROKERS not set, event publishing disabled")
	}
	events := bootstrap.EventWriter(kafkaWriter)

	imageStore, err := bootstrap.NewImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, cfg.ProfileCollection)
	userWriteRepo := repositories.NewUserWriteRepository(db, cfg.ProfileCollection)
	if err := userWriteRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure user indexes: %w", err)
	}
	pictureReadRepo := repositories.NewPictureReadRepository(db, cfg.PictureCollection)
	pictureWriteRepo := repositories.NewPictureWriteRepository(db, cfg.PictureCollection)
	meetingRepo := repositories.NewMeetingRepository(db, cfg.MeetingCollection, cfg.PlaceCollection)
	archiveRepo := repositories.NewArchiveFileRepository(cfg.EncodeFile)

	// Initialize facades
	encoder := facades.NewFaceEncoderHTTPFacade(cfg.EncoderURL, cfg.EncoderTimeout)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, events)
	encodingService := services.NewEncodingService(pictureReadRepo, imageStore, encoder, archiveRepo, events)
	pictureService := services.NewPictureService(pictureReadRepo, pictureWriteRepo, imageStore, encodingService, events)
	dashboardService := services.NewDashboardService(meetingRepo, cache)

	r := newRouter(cfg, routeDeps{
		users:     userService,
		pictures:  pictureService,
		dashboard: dashboardService,
		health: handlers.HealthCheckFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		}),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires middleware and routes.
func newRouter(cfg *config.Config, deps routeDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Route("/user", func(r chi.Router) {
		r.Get("/", handlers.NewUserRootHandler())
		r.Post("/", handlers.NewCreateUserHandler(deps.users))
		r.Get("/{id}", handlers.NewGetUserHandler(deps.users))
		r.Put("/{id}", handlers.NewUpdateUserHandler(deps.users))
		r.Delete("/{id}", handlers.NewDeleteUserHandler(deps.users))
		r.Post("/{id}/upload", handlers.NewUploadPictureHandler(deps.pictures, cfg.UploadMaxBytes))
		r.Get("/{id}/getImage", handlers.NewDownloadPictureHandler(deps.pictures))
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/meeting-counts", handlers.NewMeetingCountsHandler(deps.dashboard))
		r.Get("/time-distribution", handlers.NewTimeDistributionHandler(deps.dashboard))
		r.Get("/venue-usage", handlers.NewVenueUsageHandler(deps.dashboard))
		r.Get("/overview", handlers.NewOverviewHandler(deps.dashboard))
	})

	r.Get("/healthz", handlers.NewHealthHandler(deps.health))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	return r
}
