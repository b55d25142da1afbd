package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/services"
	"github.com/Chatrawit/Meeting2/internal/validation"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserCreator defines the method the create handler needs.
type UserCreator interface {
	Create(ctx context.Context, user *models.User) (string, error)
}

// UserGetter defines the method the read handler needs.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// UserUpdater defines the method the update handler needs.
type UserUpdater interface {
	Update(ctx context.Context, id, field, value string) (*services.FieldUpdate, error)
}

// UserDeleter defines the method the delete handler needs.
type UserDeleter interface {
	Delete(ctx context.Context, id string) error
}

// MessageResponse is a plain acknowledgement.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Success
	Message string `json:"message"`
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Optional caller supplied id; generated when empty
	UID string `json:"u_id" validate:"omitempty,alphanum,max=64"`

	// required: true
	// default: Ann
	Name string `json:"name" validate:"required"`

	Nickname string `json:"nickname"`

	// default: ann@example.com
	Email string `json:"email" validate:"omitempty,email"`

	PhoneNumber string `json:"phone_number"`

	LineID string `json:"lineID"`
}

// CreateUserResponse represents a successful create
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// default: User created successfully
	Message string `json:"message"`

	// Id of the new user
	UserID string `json:"user_id"`
}

// UpdateUserQuery holds the query parameters of the update endpoint.
type UpdateUserQuery struct {
	Field string `query:"field_update" validate:"required"`
	Value string `query:"to_new_value"`
}

// UpdateUserResponse reports the old and new value of the updated field
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// default: Update complete
	Msg      string `json:"msg"`
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue string `json:"new_value"`
}

// DeleteUserResponse acknowledges a delete
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// default: AbC was deleted
	Msg string `json:"msg"`
}

// NewUserRootHandler returns the handler of the user API root.
// @Summary User API root
// @Tags user
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router /user/ [get]
func NewUserRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Success"})
	}
}

// NewCreateUserHandler returns an HTTP handler for creating a user profile.
// @Summary Create user
// @Description Creates a profile. Without u_id a random 28 character id is generated.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User profile"
// @Success 201 {object} handlers.CreateUserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or id already exists"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorw("failed to decode create user request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.ValidateStruct(req); err != nil {
			log.Warnw("invalid create user request", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user := &models.User{
			UID:         req.UID,
			Name:        req.Name,
			Nickname:    req.Nickname,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			LineID:      req.LineID,
		}

		id, err := svc.Create(ctx, user)
		if errors.Is(err, services.ErrUserAlreadyExists) {
			writeError(w, http.StatusBadRequest, "User with this ID already exists")
			return
		}
		if err != nil {
			log.Errorw("failed to create user", "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create user: %v", err))
			return
		}

		writeJSON(w, http.StatusCreated, CreateUserResponse{Message: "User created successfully", UserID: id})
	}
}

// NewGetUserHandler returns an HTTP handler reading one user profile.
// @Summary Get user
// @Tags user
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		user, err := svc.Get(ctx, id)
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to get user", "user_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve user: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler overwriting one profile field.
// @Summary Update one user field
// @Description Sets field_update to to_new_value and reports the previous value.
// @Tags user
// @Produce json
// @Param id path string true "User id"
// @Param field_update query string true "Field name" Enums(name, nickname, email, phone_number, lineID)
// @Param to_new_value query string false "New value"
// @Success 200 {object} handlers.UpdateUserResponse
// @Failure 400 {object} handlers.ErrorResponse "Field cannot be updated"
// @Failure 404 {object} handlers.ErrorResponse "Document not found."
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		id := chi.URLParam(r, "id")

		q := UpdateUserQuery{
			Field: r.URL.Query().Get("field_update"),
			Value: r.URL.Query().Get("to_new_value"),
		}
		if err := validation.ValidateStruct(q); err != nil {
			log.Warnw("invalid update user request", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		upd, err := svc.Update(ctx, id, q.Field, q.Value)
		switch {
		case errors.Is(err, services.ErrFieldNotUpdatable):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Field %q cannot be updated", q.Field))
			return
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Document not found.")
			return
		case err != nil:
			log.Errorw("failed to update user", "user_id", id, "field", q.Field, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to update user: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, UpdateUserResponse{
			Msg:      "Update complete",
			Field:    upd.Field,
			OldValue: upd.OldValue,
			NewValue: upd.NewValue,
		})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user profile.
// Deleting an unknown id succeeds.
// @Summary Delete user
// @Tags user
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.DeleteUserResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /user/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		if err := svc.Delete(ctx, id); err != nil {
			logger.FromContext(ctx).Errorw("failed to delete user", "user_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to delete user: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, DeleteUserResponse{Msg: fmt.Sprintf("%s was deleted", id)})
	}
}
