package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/service"
	"github.com/psantos/go-accounts/internal/store"
	"github.com/psantos/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getUserFn    func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn func(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	deleteUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	return m.updateUserFn(ctx, userID, patch)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) (models.User, error) {
	return m.deleteUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserService: users,
	}
	return NewHandler(svcs, 30*time.Second, logger.Nop())
}

// withURLParam attaches a chi route context carrying {id} to the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// welcome
// ─────────────────────────────────────────────

func TestWelcome(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.welcome(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

// ─────────────────────────────────────────────
// getUser
// ─────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: 7, Name: "Bob", Email: "bob@example.com"}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.Equal(t, "bob@example.com", resp.User.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/404", nil), "id", "404")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ErrNoUserWasFound.Error())
}

// TestGetUser_MalformedID verifies that a non-numeric {id} maps to 404
// rather than an internal error.
func TestGetUser_MalformedID(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("GetUser should not be called")
			return models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_StorageFailure(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Name: "Alice", Email: "alice@example.com"},
				{UserID: 2, Name: "Bob", Email: "bob@example.com"},
			}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.Len(t, resp.Users, 2)
}

func TestListUsers_Empty(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Length)
}

// TestListUsers_StorageFailure verifies that listing failures surface as 500
// instead of an empty result.
func TestListUsers_StorageFailure(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, errors.New("connection reset")
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// updateUser
// ─────────────────────────────────────────────

func TestUpdateUser_Success(t *testing.T) {
	newName := "Alice Cooper"
	users := &mockUserService{
		updateUserFn: func(_ context.Context, userID int64, patch models.UserPatch) (models.User, error) {
			assert.Equal(t, int64(1), userID)
			require.NotNil(t, patch.Name)
			assert.Equal(t, newName, *patch.Name)
			assert.Nil(t, patch.Email)
			assert.Nil(t, patch.Password)
			return models.User{UserID: 1, Name: newName, Email: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	body := jsonBody(t, models.UserPatch{Name: &newName})
	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/1", strings.NewReader(body)), "id", "1")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, newName, resp.User.Name)
}

func TestUpdateUser_InvalidJSON(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/1", strings.NewReader("{")), "id", "1")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUser_ErrorMapping(t *testing.T) {
	email := "taken@example.com"

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "empty patch",
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "nothing to update",
			serviceErr: store.ErrNothingToUpdate,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "user not found",
			serviceErr: store.ErrNoUserWasFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "email already taken",
			serviceErr: store.ErrEmailAlreadyExists,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage failure",
			serviceErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				updateUserFn: func(_ context.Context, _ int64, _ models.UserPatch) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newHandlerWithUsers(t, users)
			body := jsonBody(t, models.UserPatch{Email: &email})
			req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/1", strings.NewReader(body)), "id", "1")
			rec := httptest.NewRecorder()

			h.updateUser(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// deleteUser
// ─────────────────────────────────────────────

// TestDeleteUser_Success verifies that the deleted record is echoed back.
func TestDeleteUser_Success(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(3), userID)
			return models.User{UserID: 3, Name: "Carol", Email: "carol@example.com"}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/3", nil), "id", "3")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.User.UserID)
	assert.Equal(t, "carol@example.com", resp.User.Email)
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/404", nil), "id", "404")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_StorageFailure(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/3", nil), "id", "3")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
