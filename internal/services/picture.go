package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/repositories"
)

//go:generate mockgen -source=picture.go -destination=picture_mock.go -package=services

// ErrPictureNotFound is returned when the user has no stored picture.
var ErrPictureNotFound = errors.New("picture not found")

// PictureReader defines methods for reading stored pictures.
type PictureReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserPicture, error) // Returns nil when the user has no picture
	List(ctx context.Context) ([]models.UserPicture, error)                      // Returns every stored picture
}

// PictureWriter defines methods for storing pictures.
type PictureWriter interface {
	Save(ctx context.Context, pic *models.UserPicture) error // Stores the picture, replacing the user's previous one
}

// ImageStore is the image mirror the encoding job and downloads read from.
type ImageStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

// ArchiveRebuilder rebuilds the encoding archive from every stored picture.
type ArchiveRebuilder interface {
	Rebuild(ctx context.Context) (*models.EncodingSummary, error)
}

// PictureService handles picture upload and download.
type PictureService struct {
	reader      PictureReader
	writer      PictureWriter
	store       ImageStore
	rebuilder   ArchiveRebuilder
	kafkaWriter KafkaWriter
}

// NewPictureService creates a new PictureService.
func NewPictureService(
	reader PictureReader,
	writer PictureWriter,
	store ImageStore,
	rebuilder ArchiveRebuilder,
	kafkaWriter KafkaWriter,
) *PictureService {
	return &PictureService{
		reader:      reader,
		writer:      writer,
		store:       store,
		rebuilder:   rebuilder,
		kafkaWriter: kafkaWriter,
	}
}

// Upload stores the picture for the user and rebuilds the encoding archive.
// The stored filename is the user id followed by the extension of the uploaded file.
func (s *PictureService) Upload(ctx context.Context, userID, uploadedName string, data []byte) (*models.EncodingSummary, error) {
	ext := strings.ToLower(filepath.Ext(uploadedName))
	pic := &models.UserPicture{
		UserID:        userID,
		Filename:      userID + ext,
		FileExtension: ext,
		ImageData:     data,
		UploadedAt:    time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, pic); err != nil {
		logger.Log.Errorw("failed to save picture", "user_id", userID, "filename", pic.Filename, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventPictureUploaded, userID, map[string]string{"filename": pic.Filename})

	summary, err := s.rebuilder.Rebuild(ctx)
	if err != nil {
		logger.Log.Errorw("failed to rebuild encodings after upload", "user_id", userID, "error", err)
		return nil, err
	}
	return summary, nil
}

// Download returns the filename and bytes of the user's picture from the image mirror.
// A picture missing from the mirror is written there from the stored bytes first.
func (s *PictureService) Download(ctx context.Context, userID string) (string, []byte, error) {
	pic, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get picture", "user_id", userID, "error", err)
		return "", nil, err
	}
	if pic == nil {
		return "", nil, ErrPictureNotFound
	}

	data, err := s.store.Get(ctx, pic.Filename)
	if err == nil {
		return pic.Filename, data, nil
	}
	if !errors.Is(err, repositories.ErrImageNotFound) {
		logger.Log.Errorw("failed to read picture from image store", "filename", pic.Filename, "error", err)
		return "", nil, err
	}

	if err := s.store.Put(ctx, pic.Filename, pic.ImageData); err != nil {
		logger.Log.Errorw("failed to materialize picture into image store", "filename", pic.Filename, "error", err)
		return "", nil, err
	}
	return pic.Filename, pic.ImageData, nil
}
