package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
)

type PictureReadRepository struct {
	coll *mongo.Collection
}

func NewPictureReadRepository(db *mongo.Database, collection string) *PictureReadRepository {
	return &PictureReadRepository{coll: db.Collection(collection)}
}

// GetByUserID returns the picture stored for the user, or nil when there is none.
func (r *PictureReadRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPicture, error) {
	filter := bson.D{{Key: "user_id", Value: userID}}

	var pic models.UserPicture
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})).Decode(&pic)

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "findOne",
		"filter", filter,
		"result", pic.Filename,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pic, nil
}

// List returns every stored picture ordered by filename.
func (r *PictureReadRepository) List(ctx context.Context) ([]models.UserPicture, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "filename", Value: 1}}))
	if err != nil {
		logger.Log.Infow("mongo query",
			"collection", r.coll.Name(),
			"op", "find",
			"result", 0,
			"error", err,
		)
		return nil, err
	}

	var pics []models.UserPicture
	err = cur.All(ctx, &pics)

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "find",
		"result", len(pics),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return pics, nil
}

type PictureWriteRepository struct {
	coll *mongo.Collection
}

func NewPictureWriteRepository(db *mongo.Database, collection string) *PictureWriteRepository {
	return &PictureWriteRepository{coll: db.Collection(collection)}
}

// Save stores the picture, replacing any earlier picture of the same user.
func (r *PictureWriteRepository) Save(ctx context.Context, pic *models.UserPicture) error {
	filter := bson.D{{Key: "user_id", Value: pic.UserID}}

	res, err := r.coll.ReplaceOne(ctx, filter, pic, options.Replace().SetUpsert(true))

	var matched, upserted int64
	if res != nil {
		matched, upserted = res.MatchedCount, res.UpsertedCount
	}

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "replaceOne",
		"filter", filter,
		"args", pic.Filename,
		"result", map[string]int64{"matched": matched, "upserted": upserted},
		"error", err,
	)

	return err
}
