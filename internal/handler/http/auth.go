package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/service"
	"github.com/psantos/go-accounts/internal/store"
	"github.com/psantos/go-accounts/internal/utils"
	"github.com/psantos/go-accounts/models"
)

// registerRequest is the body of POST /auth/register.
type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// loginRequest is the body of POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles POST /auth/register.
//
// Responses:
//   - 201 Created: registration succeeded, body carries the new user
//     (password hash stripped);
//   - 400 Bad Request: malformed JSON body;
//   - 422 Unprocessable Entity: missing field, password confirmation
//     mismatch, or email already registered;
//   - 500 Internal Server Error: hashing or storage failure.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrPasswordConfirmationMismatch):
			log.Err(err).Msg("password confirmation mismatch")
			utils.WriteJSONError(w, service.ErrPasswordConfirmationMismatch.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusUnprocessableEntity)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: registeredUser}, http.StatusCreated)
}

// login handles POST /auth/login.
//
// Responses:
//   - 200 OK: authentication succeeded, body carries the signed token;
//   - 400 Bad Request: malformed JSON body;
//   - 422 Unprocessable Entity: missing field, unknown email, or wrong
//     password;
//   - 500 Internal Server Error: storage failure or token signing failure.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSONError(w, store.ErrNoUserWasFound.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSONError(w, service.ErrWrongPassword.Error(), http.StatusUnprocessableEntity)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
