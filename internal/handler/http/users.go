package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/service"
	"github.com/psantos/go-accounts/internal/store"
	"github.com/psantos/go-accounts/internal/utils"
	"github.com/psantos/go-accounts/models"
)

// welcome handles GET /. Public, no side effects.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to the accounts API!"}, http.StatusOK)
}

// getUser handles GET /users/{id} (token required).
//
// Responses:
//   - 200 OK: body carries the user (password hash stripped);
//   - 404 Not Found: no user with the given id;
//   - 500 Internal Server Error: storage failure or malformed route param.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during user fetch")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// listUsers handles GET /users. Public.
//
// Storage failures surface as 500 instead of being silently discarded, so
// that monitoring can tell an empty table from a broken one.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users, Length: len(users)}, http.StatusOK)
}

// updateUser handles PATCH /users/{id} (token required).
//
// Responses:
//   - 200 OK: body carries the updated user;
//   - 400 Bad Request: malformed JSON body;
//   - 404 Not Found: no user with the given id;
//   - 422 Unprocessable Entity: empty patch, blank field, or email taken;
//   - 500 Internal Server Error: hashing or storage failure.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrNothingToUpdate):
			log.Err(err).Int64("id", userID).Msg("invalid update data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Int64("id", userID).Msg("email already exists")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusUnprocessableEntity)
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during user update")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: updatedUser}, http.StatusOK)
}

// deleteUser handles DELETE /users/{id} (token required).
//
// Responses:
//   - 200 OK: body carries the record as it existed before deletion;
//   - 404 Not Found: no user with the given id;
//   - 500 Internal Server Error: storage failure.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	deletedUser, err := h.services.UserService.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during user deletion")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: deletedUser}, http.StatusOK)
}

// userIDFromURL parses the {id} route parameter as int64.
func userIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
