package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/service"
	"github.com/dkovacic/devlink/internal/transport/http/middleware"
	"github.com/dkovacic/devlink/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	accountService *service.AccountService
}

func NewProfileHandler(profileService *service.ProfileService, accountService *service.AccountService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		accountService: accountService,
	}
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetOwn(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			// 400 rather than 404 is the established contract for missing
			// profiles; existing clients depend on it.
			writeMsg(w, http.StatusBadRequest, "No profile for this user")
			return
		}
		log.Printf("ERROR get own profile: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.UpsertProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateProfile(input.Status, input.Skills); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.Upsert(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrSkillsRequired) {
			writeValidationErrors(w, validator.ValidationErrors{"skills": "Skills is required"})
			return
		}
		log.Printf("ERROR upsert profile: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list profiles: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		// A malformed id reveals nothing more than an unknown one.
		log.Printf("profile lookup with malformed user id %q", r.PathValue("user_id"))
		writeMsg(w, http.StatusBadRequest, "Profile not found")
		return
	}

	profile, err := h.profileService.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "Profile not found")
			return
		}
		log.Printf("ERROR get profile by user: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.accountService.DeleteAccount(r.Context(), userID); err != nil {
		// A retry of the whole request resumes the cascade; no automatic
		// compensation happens here.
		log.Printf("ERROR delete account %s: %v", userID, err)
		writeServerError(w)
		return
	}

	writeMsg(w, http.StatusOK, "User deleted")
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var input service.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateExperience(input.Title, input.Company, input.From.Time); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.AddExperience(r.Context(), userID, input)
	if err != nil {
		h.writeMutationError(w, "add experience", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	var input service.EducationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateEducation(input.School, input.Degree, input.From.Time); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.AddEducation(r.Context(), userID, input)
	if err != nil {
		h.writeMutationError(w, "add education", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	// A malformed id matches no entry, exactly like an unknown one, so the
	// idempotent delete falls through to the unchanged-profile response.
	expID, err := uuid.Parse(r.PathValue("exp_id"))
	if err != nil {
		expID = uuid.Nil
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.RemoveExperience(r.Context(), userID, expID)
	if err != nil {
		h.writeMutationError(w, "remove experience", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	eduID, err := uuid.Parse(r.PathValue("edu_id"))
	if err != nil {
		eduID = uuid.Nil
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.RemoveEducation(r.Context(), userID, eduID)
	if err != nil {
		h.writeMutationError(w, "remove education", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) writeMutationError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		writeMsg(w, http.StatusBadRequest, "No profile for this user")
		return
	}
	log.Printf("ERROR %s: %v", op, err)
	writeServerError(w)
}
