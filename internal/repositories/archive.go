package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
)

// ArchiveFileRepository keeps the encoding archive in a single JSON file.
type ArchiveFileRepository struct {
	path string
}

func NewArchiveFileRepository(path string) *ArchiveFileRepository {
	return &ArchiveFileRepository{path: path}
}

// Path returns the archive file location.
func (r *ArchiveFileRepository) Path() string {
	return r.path
}

// Save replaces the archive. The file is written next to the target and renamed
// over it, so readers see either the old or the new archive.
func (r *ArchiveFileRepository) Save(archive *models.EncodingArchive) error {
	err := r.save(archive)

	logger.Log.Infow("encoding archive",
		"file", r.path,
		"op", "save",
		"result", archive.Len(),
		"error", err,
	)

	return err
}

func (r *ArchiveFileRepository) save(archive *models.EncodingArchive) error {
	if archive.Encodings == nil {
		archive.Encodings = [][]float64{}
	}
	if archive.UserIDs == nil {
		archive.UserIDs = []string{}
	}

	data, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}

// Load reads the archive. A missing file yields an empty archive.
func (r *ArchiveFileRepository) Load() (*models.EncodingArchive, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return &models.EncodingArchive{}, nil
	}
	if err != nil {
		return nil, err
	}

	var archive models.EncodingArchive
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", r.path, err)
	}
	if len(archive.Encodings) != len(archive.UserIDs) {
		return nil, fmt.Errorf("archive %s is corrupt: %d encodings for %d user ids",
			r.path, len(archive.Encodings), len(archive.UserIDs))
	}
	return &archive, nil
}
