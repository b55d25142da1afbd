package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a caller supplied id is already taken.
	ErrUserAlreadyExists = errors.New("user with this ID already exists")
	// ErrFieldNotUpdatable is returned for fields outside models.UpdatableUserFields.
	ErrFieldNotUpdatable = errors.New("field cannot be updated")
	// ErrIDGenerationExhausted is returned when every generated id collided.
	ErrIDGenerationExhausted = errors.New("could not generate a unique user id")
)

const (
	// UserIDLength is the length of generated user ids.
	UserIDLength = 28

	maxIDAttempts = 10
	idAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// UserReader defines methods for reading user profiles.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error) // Returns nil when the user does not exist
	ExistsByID(ctx context.Context, id string) (bool, error)      // Reports whether the id is taken
}

// UserWriter defines methods for writing user profiles.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
	UpdateField(ctx context.Context, id, field, value string) (old any, found bool, err error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// FieldUpdate is the outcome of a single field update.
type FieldUpdate struct {
	Field    string
	OldValue any
	NewValue string
}

// UserService handles profile CRUD and publishes lifecycle events.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
	newID       func() (string, error)
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		newID:       func() (string, error) { return GenerateUserID(UserIDLength) },
	}
}

// GenerateUserID returns a random alphanumeric string of the given length.
func GenerateUserID(length int) (string, error) {
	base := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b), nil
}

// Create stores a new user and returns its id. When user.UID is empty a fresh id
// is generated, otherwise the supplied id is used and must not exist yet.
func (s *UserService) Create(ctx context.Context, user *models.User) (string, error) {
	if user.UID != "" {
		if err := s.createWithID(ctx, user); err != nil {
			return "", err
		}
	} else if err := s.createWithGeneratedID(ctx, user); err != nil {
		return "", err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventUserCreated, user.UID, map[string]string{"name": user.Name})
	return user.UID, nil
}

func (s *UserService) createWithID(ctx context.Context, user *models.User) error {
	exists, err := s.reader.ExistsByID(ctx, user.UID)
	if err != nil {
		logger.Log.Errorw("failed to check user id", "user_id", user.UID, "error", err)
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}

	err = s.writer.Save(ctx, user)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "user_id", user.UID, "error", err)
	}
	return err
}

func (s *UserService) createWithGeneratedID(ctx context.Context, user *models.User) error {
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("generate user id: %w", err)
		}

		exists, err := s.reader.ExistsByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to check user id", "user_id", id, "error", err)
			return err
		}
		if exists {
			logger.Log.Warnw("generated user id collided, regenerating", "user_id", id, "attempt", attempt)
			continue
		}

		user.UID = id
		err = s.writer.Save(ctx, user)
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Warnw("generated user id collided on insert, regenerating", "user_id", id, "attempt", attempt)
			user.UID = ""
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to save user", "user_id", id, "error", err)
			user.UID = ""
			return err
		}
		return nil
	}

	return ErrIDGenerationExhausted
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update overwrites one profile field and reports its previous value.
func (s *UserService) Update(ctx context.Context, id, field, value string) (*FieldUpdate, error) {
	if _, ok := models.UpdatableUserFields[field]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotUpdatable, field)
	}

	old, found, err := s.writer.UpdateField(ctx, id, field, value)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "field", field, "error", err)
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}

	publishEvent(ctx, s.kafkaWriter, models.EventUserUpdated, id, map[string]string{"field": field})

	return &FieldUpdate{Field: field, OldValue: old, NewValue: value}, nil
}

// Delete removes the user. Deleting an unknown id is not an error.
func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.writer.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "error", err)
		return err
	}

	if deleted > 0 {
		publishEvent(ctx, s.kafkaWriter, models.EventUserDeleted, id, nil)
	}
	return nil
}
