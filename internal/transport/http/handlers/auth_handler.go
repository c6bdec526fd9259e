package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dkovacic/devlink/internal/service"
	"github.com/dkovacic/devlink/internal/transport/http/middleware"
	"github.com/dkovacic/devlink/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CurrentUser returns the authenticated user, resolved from the token.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMsg(w, http.StatusBadRequest, "User not found")
			return
		}
		log.Printf("ERROR current user: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		// Wrong email and wrong password look identical to the client.
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMsg(w, http.StatusBadRequest, "Invalid user")
			return
		}
		log.Printf("ERROR login: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
