package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/services"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestUserRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewUserRootHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/user/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Success"}`, rr.Body.String())
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockUserCreator)
		expectedStatusCode int
		expectedBody       map[string]any
	}{
		{
			name:        "created with generated id",
			requestBody: CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), &models.User{Name: "Ann", Email: "ann@example.com"}).Return("AbCdEfGhIjKlMnOpQrStUvWxYz12", nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedBody:       map[string]any{"message": "User created successfully", "user_id": "AbCdEfGhIjKlMnOpQrStUvWxYz12"},
		},
		{
			name:        "created with supplied id",
			requestBody: CreateUserRequest{UID: "ann01", Name: "Ann"},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), &models.User{UID: "ann01", Name: "Ann"}).Return("ann01", nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedBody:       map[string]any{"message": "User created successfully", "user_id": "ann01"},
		},
		{
			name:        "supplied id exists",
			requestBody: CreateUserRequest{UID: "ann01", Name: "Ann"},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", services.ErrUserAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"detail": "User with this ID already exists"},
		},
		{
			name:               "invalid json",
			requestBody:        "not-an-object",
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"detail": "Invalid request body"},
		},
		{
			name:               "missing name",
			requestBody:        CreateUserRequest{Email: "ann@example.com"},
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"detail": "name is required"},
		},
		{
			name:               "bad email",
			requestBody:        CreateUserRequest{Name: "Ann", Email: "nope"},
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"detail": "email must be a valid email address"},
		},
		{
			name:               "non alphanumeric id",
			requestBody:        CreateUserRequest{UID: "../etc", Name: "Ann"},
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"detail": "u_id must contain only letters and digits"},
		},
		{
			name:        "service error",
			requestBody: CreateUserRequest{Name: "Ann"},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", services.ErrIDGenerationExhausted)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       map[string]any{"detail": "Failed to create user: could not generate a unique user id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCreator := NewMockUserCreator(ctrl)
			tt.setupMocks(mockCreator)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/user/", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewCreateUserHandler(mockCreator).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ann := &models.User{UID: "ann", Name: "Ann", Nickname: "annie", Email: "ann@example.com", PhoneNumber: "081", LineID: "ann.line"}

	tests := []struct {
		name               string
		setupMocks         func(m *MockUserGetter)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "found",
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), "ann").Return(ann, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"u_id":"ann","name":"Ann","nickname":"annie","email":"ann@example.com","phone_number":"081","lineID":"ann.line"}`,
		},
		{
			name: "not found",
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), "ann").Return(nil, services.ErrUserNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"detail":"User not found"}`,
		},
		{
			name: "database error",
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), "ann").Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"detail":"Failed to retrieve user: db down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGetter := NewMockUserGetter(ctrl)
			tt.setupMocks(mockGetter)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/ann", nil), "id", "ann")
			rr := httptest.NewRecorder()

			NewGetUserHandler(mockGetter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	tests := []struct {
		name               string
		query              string
		setupMocks         func(m *MockUserUpdater)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:  "updated",
			query: "field_update=nickname&to_new_value=ann2",
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), "ann", "nickname", "ann2").
					Return(&services.FieldUpdate{Field: "nickname", OldValue: "annie", NewValue: "ann2"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"msg":"Update complete","field":"nickname","old_value":"annie","new_value":"ann2"}`,
		},
		{
			name:               "missing field",
			query:              "to_new_value=x",
			setupMocks:         func(m *MockUserUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"detail":"field_update is required"}`,
		},
		{
			name:  "field not updatable",
			query: "field_update=u_id&to_new_value=x",
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), "ann", "u_id", "x").Return(nil, services.ErrFieldNotUpdatable)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"detail":"Field \"u_id\" cannot be updated"}`,
		},
		{
			name:  "no such user",
			query: "field_update=name&to_new_value=x",
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), "ann", "name", "x").Return(nil, services.ErrUserNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"detail":"Document not found."}`,
		},
		{
			name:  "database error",
			query: "field_update=name&to_new_value=x",
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), "ann", "name", "x").Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"detail":"Failed to update user: db down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := NewMockUserUpdater(ctrl)
			tt.setupMocks(mockUpdater)

			req := withURLParam(httptest.NewRequest(http.MethodPut, "/user/ann?"+tt.query, nil), "id", "ann")
			rr := httptest.NewRecorder()

			NewUpdateUserHandler(mockUpdater).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockUserDeleter)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "deleted",
			setupMocks: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), "ann").Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"msg":"ann was deleted"}`,
		},
		{
			name: "database error",
			setupMocks: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), "ann").Return(errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"detail":"Failed to delete user: db down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDeleter := NewMockUserDeleter(ctrl)
			tt.setupMocks(mockDeleter)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/user/ann", nil), "id", "ann")
			rr := httptest.NewRecorder()

			NewDeleteUserHandler(mockDeleter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
