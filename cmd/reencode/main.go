package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Chatrawit/Meeting2/internal/bootstrap"
	"github.com/Chatrawit/Meeting2/internal/config"
	"github.com/Chatrawit/Meeting2/internal/facades"
	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/repositories"
	"github.com/Chatrawit/Meeting2/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(buildVersion, buildDate)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(version, date string) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "reencode",
		Short:         "Face encoding archive maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	root.AddCommand(newVersionCmd(version, date))
	root.AddCommand(newRunCmd(&configPath))
	root.AddCommand(newInspectCmd(&configPath))
	return root
}

func newVersionCmd(version, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reencode %s (%s)\n", version, date)
		},
	}
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Rebuild the encoding archive from every stored picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			if err := logger.Initialize(cfg.LogLevel); err != nil {
				return err
			}
			defer logger.Log.Sync()

			summary, err := rebuildArchive(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "images: %d, encoded: %d, skipped: %d\n", summary.Images, summary.Encoded, len(summary.Skipped))
			for _, s := range summary.Skipped {
				fmt.Fprintf(out, "  skipped %s: %s\n", s.Filename, s.Reason)
			}
			fmt.Fprintf(out, "archive written to %s\n", cfg.EncodeFile)
			return nil
		},
	}
}

func rebuildArchive(ctx context.Context, cfg *config.Config) (*models.EncodingSummary, error) {
	client, err := bootstrap.ConnectMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(context.Background())

	store, err := bootstrap.NewImageStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	kafkaWriter := bootstrap.NewKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	db := client.Database(cfg.DatabaseName)
	encodingService := services.NewEncodingService(
		repositories.NewPictureReadRepository(db, cfg.PictureCollection),
		store,
		facades.NewFaceEncoderHTTPFacade(cfg.EncoderURL, cfg.EncoderTimeout),
		repositories.NewArchiveFileRepository(cfg.EncodeFile),
		bootstrap.EventWriter(kafkaWriter),
	)
	return encodingService.Rebuild(ctx)
}

func newInspectCmd(configPath *string) *cobra.Command {
	var showIDs bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the contents of the encoding archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}

			archive, err := repositories.NewArchiveFileRepository(cfg.EncodeFile).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dims := 0
			if archive.Len() > 0 {
				dims = len(archive.Encodings[0])
			}
			fmt.Fprintf(out, "archive %s: %d encodings, %d dimensions\n", cfg.EncodeFile, archive.Len(), dims)
			if showIDs {
				for _, id := range archive.UserIDs {
					fmt.Fprintln(out, id)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "List the user ids in archive order")
	return cmd
}
