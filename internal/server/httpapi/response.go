package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/esavelyev/accountd/internal/common"
	"github.com/esavelyev/accountd/internal/server/users"
)

// Response DTOs. Each response shape is its own type so that the password
// digest (and, for login, the internal identifier) are excluded by
// construction rather than filtered at runtime.

// userView is the login-response user: no digest, no internal id.
type userView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// accountView is the /me user: internal identifiers included, digest still
// excluded. The asymmetry with userView is deliberate.
type accountView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type signupResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userView `json:"user"`
	Message     string   `json:"message"`
}

type meResponse struct {
	User accountView `json:"user"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newUserView(u *users.User) userView {
	return userView{Username: u.Username, Email: u.Email}
}

func newAccountView(u *users.User) accountView {
	return accountView{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	respondWithJSON(w, status, errorResponse{Error: message})
}

// statusForError maps the service error taxonomy to HTTP statuses. Token
// lifecycle errors keep their identity for logging but all land on 401.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorInvalidEmail),
		errors.Is(err, common.ErrorWeakPassword),
		errors.Is(err, common.ErrorPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrNoSubject):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
