package repositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestS3ImageStore(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := NewS3ImageStore(fake, "faces", "img_file")

	t.Run("Put stores under the prefix with a content type", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "ann.png", []byte("png")))
		assert.Equal(t, []byte("png"), fake.objects["faces/img_file/ann.png"])
		assert.Equal(t, "image/png", fake.types["faces/img_file/ann.png"])
	})

	t.Run("Get", func(t *testing.T) {
		got, err := store.Get(ctx, "ann.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), got)
	})

	t.Run("Get missing maps to ErrImageNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "nobody.png")
		assert.ErrorIs(t, err, ErrImageNotFound)
	})

	t.Run("Put error is returned", func(t *testing.T) {
		fake.putErr = errors.New("denied")
		defer func() { fake.putErr = nil }()
		assert.EqualError(t, store.Put(ctx, "bob.jpg", []byte("x")), "denied")
	})

	t.Run("Empty prefix", func(t *testing.T) {
		bare := NewS3ImageStore(fake, "faces", "")
		require.NoError(t, bare.Put(ctx, "carl.jpg", []byte("c")))
		assert.Contains(t, fake.objects, "faces/carl.jpg")
	})
}
