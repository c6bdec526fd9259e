package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dkovacic/devlink/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

func writeServerError(w http.ResponseWriter) {
	writeMsg(w, http.StatusInternalServerError, "Server error")
}
