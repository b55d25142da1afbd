//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chatrawit/Meeting2/internal/models"
)

func TestPictureRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewPictureWriteRepository(db, "user_picture")
	reader := NewPictureReadRepository(db, "user_picture")

	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, writer.Save(ctx, &models.UserPicture{
		UserID: "bob", Filename: "bob.png", FileExtension: ".png", ImageData: []byte("v1"), UploadedAt: now,
	}))
	require.NoError(t, writer.Save(ctx, &models.UserPicture{
		UserID: "ann", Filename: "ann.jpg", FileExtension: ".jpg", ImageData: []byte("a"), UploadedAt: now,
	}))

	t.Run("re-upload replaces the user's picture", func(t *testing.T) {
		require.NoError(t, writer.Save(ctx, &models.UserPicture{
			UserID: "bob", Filename: "bob.jpg", FileExtension: ".jpg", ImageData: []byte("v2"), UploadedAt: now.Add(time.Minute),
		}))

		got, err := reader.GetByUserID(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "bob.jpg", got.Filename)
		assert.Equal(t, []byte("v2"), got.ImageData)
	})

	t.Run("List is ordered by filename", func(t *testing.T) {
		pics, err := reader.List(ctx)
		require.NoError(t, err)
		require.Len(t, pics, 2)
		assert.Equal(t, "ann.jpg", pics[0].Filename)
		assert.Equal(t, "bob.jpg", pics[1].Filename)
	})

	t.Run("GetByUserID missing", func(t *testing.T) {
		got, err := reader.GetByUserID(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
