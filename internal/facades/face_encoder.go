package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Chatrawit/Meeting2/internal/logger"
)

// ErrImageRejected is returned when the encoder refuses an image (4xx).
var ErrImageRejected = errors.New("image rejected by encoder")

type encodeRequest struct {
	Image string `json:"image"`
}

type encodeResponse struct {
	Encodings [][]float64 `json:"encodings"`
	Error     string      `json:"error,omitempty"`
}

// FaceEncoderHTTPFacade asks an external face-recognition service for face vectors.
type FaceEncoderHTTPFacade struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[[][]float64]
}

// NewFaceEncoderHTTPFacade creates a facade calling POST {baseURL}/encode.
// Five consecutive transport or server failures open the circuit for 30 seconds.
func NewFaceEncoderHTTPFacade(baseURL string, timeout time.Duration) *FaceEncoderHTTPFacade {
	f := &FaceEncoderHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}

	f.cb = gobreaker.NewCircuitBreaker[[][]float64](gobreaker.Settings{
		Name:        "face-encoder",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrImageRejected) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return f
}

// Encode returns one vector per face detected in image. An empty result means no face was found.
func (f *FaceEncoderHTTPFacade) Encode(ctx context.Context, image []byte) ([][]float64, error) {
	encodings, err := f.cb.Execute(func() ([][]float64, error) {
		return f.encode(ctx, image)
	})
	if err != nil {
		logger.Log.Errorw("failed to encode image via face encoder", "url", f.baseURL, "size", len(image), "error", err)
		return nil, err
	}
	return encodings, nil
}

func (f *FaceEncoderHTTPFacade) encode(ctx context.Context, image []byte) ([][]float64, error) {
	body, err := json.Marshal(encodeRequest{Image: base64.StdEncoding.EncodeToString(image)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/encode", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}

	var out encodeResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode == http.StatusOK {
			return nil, fmt.Errorf("decode encoder response: %w", err)
		}
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: %s %s", ErrImageRejected, resp.Status, out.Error)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("face encoder returned %s", resp.Status)
	}

	if out.Encodings == nil {
		out.Encodings = [][]float64{}
	}
	return out.Encodings, nil
}
