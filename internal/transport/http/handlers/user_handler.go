package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dkovacic/devlink/internal/service"
	"github.com/dkovacic/devlink/pkg/validator"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateRegister(input.Name, input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMsg(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("ERROR register: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
