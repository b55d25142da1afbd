package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chatrawit/Meeting2/internal/facades"
	"github.com/Chatrawit/Meeting2/internal/models"
)

func pngBytes(t *testing.T, shade uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(1, 1, color.Gray{Y: shade})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodingService_Rebuild(t *testing.T) {
	ctx := context.Background()

	ann := pngBytes(t, 10)
	bob := pngBytes(t, 20)
	carl := pngBytes(t, 30)
	dan := pngBytes(t, 40)

	pics := []models.UserPicture{
		{UserID: "ann", Filename: "ann.png", ImageData: ann},
		{UserID: "bob", Filename: "bob.png", ImageData: bob},
		{UserID: "carl", Filename: "carl.png", ImageData: carl},
		{UserID: "dan", Filename: "dan.png", ImageData: dan},
		{UserID: "eve", Filename: "eve.jpg", ImageData: []byte("not an image")},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockPictureLister(ctrl)
	store := NewMockImageStore(ctrl)
	encoder := NewMockFaceEncoder(ctrl)
	archive := NewMockArchiveWriter(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	lister.EXPECT().List(ctx).Return(pics, nil)
	for _, p := range pics {
		store.EXPECT().Put(ctx, p.Filename, p.ImageData).Return(nil)
	}
	encoder.EXPECT().Encode(ctx, ann).Return([][]float64{{1, 2}}, nil)
	encoder.EXPECT().Encode(ctx, bob).Return([][]float64{{3, 4}, {5, 6}}, nil)
	encoder.EXPECT().Encode(ctx, carl).Return([][]float64{}, nil)
	encoder.EXPECT().Encode(ctx, dan).Return(nil, facades.ErrImageRejected)
	archive.EXPECT().Save(&models.EncodingArchive{
		Encodings: [][]float64{{1, 2}, {3, 4}},
		UserIDs:   []string{"ann", "bob"},
	}).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewEncodingService(lister, store, encoder, archive, kafka)
	summary, err := svc.Rebuild(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.Images)
	assert.Equal(t, 2, summary.Encoded)
	assert.Equal(t, []models.SkippedImage{
		{Filename: "carl.png", Reason: SkipNoFace},
		{Filename: "dan.png", Reason: SkipRejected},
		{Filename: "eve.jpg", Reason: SkipUndecodable},
	}, summary.Skipped)
}

func TestEncodingService_Rebuild_Errors(t *testing.T) {
	ctx := context.Background()
	img := pngBytes(t, 1)
	pics := []models.UserPicture{{UserID: "ann", Filename: "ann.png", ImageData: img}}

	tests := []struct {
		name  string
		setup func(l *MockPictureLister, s *MockImageStore, e *MockFaceEncoder, a *MockArchiveWriter)
	}{
		{
			name: "list fails",
			setup: func(l *MockPictureLister, s *MockImageStore, e *MockFaceEncoder, a *MockArchiveWriter) {
				l.EXPECT().List(ctx).Return(nil, errors.New("db down"))
			},
		},
		{
			name: "mirror fails",
			setup: func(l *MockPictureLister, s *MockImageStore, e *MockFaceEncoder, a *MockArchiveWriter) {
				l.EXPECT().List(ctx).Return(pics, nil)
				s.EXPECT().Put(ctx, "ann.png", img).Return(errors.New("disk full"))
			},
		},
		{
			name: "encoder unavailable",
			setup: func(l *MockPictureLister, s *MockImageStore, e *MockFaceEncoder, a *MockArchiveWriter) {
				l.EXPECT().List(ctx).Return(pics, nil)
				s.EXPECT().Put(ctx, "ann.png", img).Return(nil)
				e.EXPECT().Encode(ctx, img).Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "archive write fails",
			setup: func(l *MockPictureLister, s *MockImageStore, e *MockFaceEncoder, a *MockArchiveWriter) {
				l.EXPECT().List(ctx).Return(pics, nil)
				s.EXPECT().Put(ctx, "ann.png", img).Return(nil)
				e.EXPECT().Encode(ctx, img).Return([][]float64{{1}}, nil)
				a.EXPECT().Save(gomock.Any()).Return(errors.New("read-only"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lister := NewMockPictureLister(ctrl)
			store := NewMockImageStore(ctrl)
			encoder := NewMockFaceEncoder(ctrl)
			archive := NewMockArchiveWriter(ctrl)
			tt.setup(lister, store, encoder, archive)

			svc := NewEncodingService(lister, store, encoder, archive, nil)
			summary, err := svc.Rebuild(ctx)

			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

// slowEncoder records how many Encode calls overlap.
type slowEncoder struct {
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (e *slowEncoder) Encode(ctx context.Context, image []byte) ([][]float64, error) {
	n := e.active.Add(1)
	defer e.active.Add(-1)
	for {
		m := e.maxSeen.Load()
		if n <= m || e.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return [][]float64{{1}}, nil
}

type staticPictures []models.UserPicture

func (p staticPictures) List(ctx context.Context) ([]models.UserPicture, error) { return p, nil }

type discardStore struct{}

func (discardStore) Put(ctx context.Context, name string, data []byte) error { return nil }
func (discardStore) Get(ctx context.Context, name string) ([]byte, error)    { return nil, nil }

type countingArchive struct {
	mu    sync.Mutex
	saves int
}

func (a *countingArchive) Save(archive *models.EncodingArchive) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.saves++
	return nil
}

func TestEncodingService_RebuildsAreSerialized(t *testing.T) {
	pics := staticPictures{{UserID: "ann", Filename: "ann.png", ImageData: pngBytes(t, 5)}}
	encoder := &slowEncoder{}
	archive := &countingArchive{}
	svc := NewEncodingService(pics, discardStore{}, encoder, archive, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Rebuild(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, encoder.maxSeen.Load())
	assert.Equal(t, 5, archive.saves)
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "ann", fileStem("ann.png"))
	assert.Equal(t, "ann", fileStem("ann"))
	assert.Equal(t, "a.b", fileStem("a.b.jpg"))
}
