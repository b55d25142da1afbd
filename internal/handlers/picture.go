package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/services"
)

//go:generate mockgen -source=picture.go -destination=picture_mock.go -package=handlers

// PictureUploader defines the method the upload handler needs.
type PictureUploader interface {
	Upload(ctx context.Context, userID, uploadedName string, data []byte) (*models.EncodingSummary, error)
}

// PictureDownloader defines the method the download handler needs.
type PictureDownloader interface {
	Download(ctx context.Context, userID string) (string, []byte, error)
}

// UploadPictureResponse reports the upload and the archive rebuild it triggered
// swagger:model UploadPictureResponse
type UploadPictureResponse struct {
	// default: Upload and Encode Complete
	Msg string `json:"msg"`

	models.EncodingSummary
}

// NewUploadPictureHandler returns an HTTP handler storing a user's picture and
// rebuilding the encoding archive.
// @Summary Upload user picture
// @Description Stores the picture (multipart field "file") and re-encodes every stored picture.
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "User id"
// @Param file formData file true "Picture"
// @Success 200 {object} handlers.UploadPictureResponse
// @Failure 400 {object} handlers.ErrorResponse "No file uploaded"
// @Failure 413 {object} handlers.ErrorResponse "File too large"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/{id}/upload [post]
func NewUploadPictureHandler(svc PictureUploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		id := chi.URLParam(r, "id")

		if r.ContentLength > maxBytes {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large, limit is %d bytes", maxBytes))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large, limit is %d bytes", maxBytes))
				return
			}
			log.Warnw("upload without file", "user_id", id, "error", err)
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Errorw("failed to read uploaded file", "user_id", id, "error", err)
			writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		if len(data) == 0 {
			writeError(w, http.StatusBadRequest, "Uploaded file is empty")
			return
		}

		summary, err := svc.Upload(ctx, id, header.Filename, data)
		if err != nil {
			log.Errorw("failed to upload picture", "user_id", id, "filename", header.Filename, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to upload picture: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, UploadPictureResponse{
			Msg:             "Upload and Encode Complete",
			EncodingSummary: *summary,
		})
	}
}

// NewDownloadPictureHandler returns an HTTP handler serving a user's picture.
// @Summary Download user picture
// @Tags user
// @Produce image/jpeg,image/png
// @Param id path string true "User id"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse "Picture not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/{id}/getImage [get]
func NewDownloadPictureHandler(svc PictureDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		name, data, err := svc.Download(ctx, id)
		if errors.Is(err, services.ErrPictureNotFound) {
			writeError(w, http.StatusNotFound, "Picture not found")
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to download picture", "user_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve picture: %v", err))
			return
		}

		w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}
