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

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database, collection string) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(collection)}
}

// GetByID returns the user with the given u_id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	filter := bson.D{{Key: "u_id", Value: id}}

	var user models.User
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}})).Decode(&user)

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "findOne",
		"filter", filter,
		"result", user,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByID reports whether a user with the given u_id is stored.
func (r *UserReadRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	filter := bson.D{{Key: "u_id", Value: id}}

	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "countDocuments",
		"filter", filter,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database, collection string) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(collection)}
}

// EnsureIndexes creates the unique index on u_id that Save relies on to detect collisions.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	name, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "u_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("u_id_unique"),
	})

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "createIndex",
		"result", name,
		"error", err,
	)

	return err
}

// Save inserts a new user. ErrDuplicateKey is returned when the u_id is taken.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)

	var insertedID any
	if res != nil {
		insertedID = res.InsertedID
	}

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "insertOne",
		"args", user,
		"result", insertedID,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// UpdateField sets one field of the user and returns the value it held before.
// found is false when no user has the given u_id.
func (r *UserWriteRepository) UpdateField(ctx context.Context, id, field, value string) (old any, found bool, err error) {
	filter := bson.D{{Key: "u_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: field, Value: 1}})

	var before bson.M
	err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "findOneAndUpdate",
		"filter", filter,
		"update", update,
		"result", before,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return before[field], true, nil
}

// DeleteByID removes the user with the given u_id and returns how many records were deleted.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter := bson.D{{Key: "u_id", Value: id}}

	res, err := r.coll.DeleteOne(ctx, filter)

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "deleteOne",
		"filter", filter,
		"result", deleted,
		"error", err,
	)

	return deleted, err
}
