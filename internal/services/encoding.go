package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Chatrawit/Meeting2/internal/facades"
	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/metrics"
	"github.com/Chatrawit/Meeting2/internal/models"
)

//go:generate mockgen -source=encoding.go -destination=encoding_mock.go -package=services

// Reasons an image is left out of the archive.
const (
	SkipUndecodable = "undecodable image"
	SkipRejected    = "rejected by encoder"
	SkipNoFace      = "no face detected"
)

// PictureLister lists every stored picture.
type PictureLister interface {
	List(ctx context.Context) ([]models.UserPicture, error)
}

// FaceEncoder returns one feature vector per face found in an image.
type FaceEncoder interface {
	Encode(ctx context.Context, image []byte) ([][]float64, error)
}

// ArchiveWriter persists the encoding archive, replacing the previous one.
type ArchiveWriter interface {
	Save(archive *models.EncodingArchive) error
}

// EncodingService rebuilds the encoding archive from all stored pictures.
type EncodingService struct {
	mu          sync.Mutex
	pictures    PictureLister
	store       ImageStore
	encoder     FaceEncoder
	archive     ArchiveWriter
	kafkaWriter KafkaWriter
}

// NewEncodingService creates a new EncodingService.
func NewEncodingService(
	pictures PictureLister,
	store ImageStore,
	encoder FaceEncoder,
	archive ArchiveWriter,
	kafkaWriter KafkaWriter,
) *EncodingService {
	return &EncodingService{
		pictures:    pictures,
		store:       store,
		encoder:     encoder,
		archive:     archive,
		kafkaWriter: kafkaWriter,
	}
}

// Rebuild mirrors every stored picture, encodes the first face of each and
// replaces the archive. Only one rebuild runs at a time.
func (s *EncodingService) Rebuild(ctx context.Context) (*models.EncodingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	archive, summary, err := s.rebuild(ctx)
	metrics.RecordEncodingRun(time.Since(start), archive.Len(), err)
	if err != nil {
		logger.Log.Errorw("encoding archive rebuild failed", "duration", time.Since(start), "error", err)
		return nil, err
	}

	logger.Log.Infow("encoding archive rebuilt",
		"images", summary.Images,
		"encoded", summary.Encoded,
		"skipped", len(summary.Skipped),
		"duration", time.Since(start),
	)

	publishEvent(ctx, s.kafkaWriter, models.EventEncodingsRebuilt, "", map[string]string{
		"images":  strconv.Itoa(summary.Images),
		"encoded": strconv.Itoa(summary.Encoded),
		"skipped": strconv.Itoa(len(summary.Skipped)),
	})

	return summary, nil
}

func (s *EncodingService) rebuild(ctx context.Context) (*models.EncodingArchive, *models.EncodingSummary, error) {
	pics, err := s.pictures.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list pictures: %w", err)
	}

	archive := &models.EncodingArchive{
		Encodings: [][]float64{},
		UserIDs:   []string{},
	}
	summary := &models.EncodingSummary{Images: len(pics)}

	skip := func(pic models.UserPicture, reason string) {
		logger.Log.Warnw("image skipped", "filename", pic.Filename, "reason", reason)
		metrics.RecordSkippedImage(reason)
		summary.Skipped = append(summary.Skipped, models.SkippedImage{Filename: pic.Filename, Reason: reason})
	}

	for _, pic := range pics {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		if err := s.store.Put(ctx, pic.Filename, pic.ImageData); err != nil {
			return nil, nil, fmt.Errorf("mirror %s: %w", pic.Filename, err)
		}

		if _, _, err := image.DecodeConfig(bytes.NewReader(pic.ImageData)); err != nil {
			skip(pic, SkipUndecodable)
			continue
		}

		encodings, err := s.encoder.Encode(ctx, pic.ImageData)
		if errors.Is(err, facades.ErrImageRejected) {
			skip(pic, SkipRejected)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s: %w", pic.Filename, err)
		}
		if len(encodings) == 0 {
			skip(pic, SkipNoFace)
			continue
		}

		archive.Add(fileStem(pic.Filename), encodings[0])
	}

	if err := s.archive.Save(archive); err != nil {
		return nil, nil, fmt.Errorf("save archive: %w", err)
	}

	summary.Encoded = archive.Len()
	return archive, summary, nil
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
