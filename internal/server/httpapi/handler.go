package httpapi

import (
	"fmt"
	"net/http"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form data")
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	confirmPassword := r.PostFormValue("confirm_password")

	user, err := s.users.Signup(r.Context(), username, email, password, confirmPassword)
	if err != nil {
		s.respondServiceError(w, r, "signup failed", err)
		return
	}

	s.logger.Info(r.Context(), "user signed up", "username", user.Username)
	respondWithJSON(w, http.StatusOK, signupResponse{
		Message: fmt.Sprintf("User %s signed up successfully", user.Username),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form data")
		return
	}

	identifier := r.PostFormValue("identifier")
	password := r.PostFormValue("password")

	result, err := s.users.Login(r.Context(), identifier, password)
	if err != nil {
		s.respondServiceError(w, r, "login failed", err)
		return
	}

	s.logger.Info(r.Context(), "user logged in", "username", result.User.Username)
	respondWithJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		User:        newUserView(result.User),
		Message:     "Login successful",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		// authenticate middleware always sets the user; reaching this is a bug
		respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	respondWithJSON(w, http.StatusOK, meResponse{User: newAccountView(user)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {

	if err := s.health.Ping(r.Context()); err != nil {
		s.logger.Error(r.Context(), "store unreachable", "error", err.Error())
		respondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	respondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// respondServiceError maps a service error onto the HTTP taxonomy. 4xx
// reasons are echoed verbatim; anything unexpected is logged and hidden
// behind a generic 500.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), msg, "error", err.Error())
		respondWithError(w, status, "internal error")
		return
	}
	s.logger.Debug(r.Context(), msg, "error", err.Error(), "status", status)
	respondWithError(w, status, err.Error())
}
