package http

import (
	"errors"
	"net/http"

	"github.com/dushan456/portfolio-backend/internal/application"
)

func (h *Handler) getPersonalDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetPersonalDetails(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "get_personal_details", err)
		return
	}
	writeSuccess(w, http.StatusOK, details)
}

func (h *Handler) updatePersonalDetails(w http.ResponseWriter, r *http.Request) {
	var in application.PersonalDetailsInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "update_personal_details", err)
		return
	}
	details, err := h.service.UpdatePersonalDetails(r.Context(), in)
	if err != nil {
		writeMappedError(r.Context(), w, "update_personal_details", err)
		return
	}
	writeSuccess(w, http.StatusOK, details)
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	slot := r.URL.Query().Get("slot")
	if slot == "" {
		slot = "main"
	}
	if slot != "main" && slot != "secondary" {
		writeValidationError(r.Context(), w, "upload_profile_image", errors.New("slot must be main or secondary"))
		return
	}
	upload, err := readSingleUpload(r, "image", h.maxUploadBytes)
	if err != nil {
		writeValidationError(r.Context(), w, "upload_profile_image", err)
		return
	}
	details, err := h.service.UploadProfileImage(r.Context(), slot, upload)
	if err != nil {
		writeMappedError(r.Context(), w, "upload_profile_image", err)
		return
	}
	writeSuccess(w, http.StatusOK, details)
}

func (h *Handler) uploadCV(w http.ResponseWriter, r *http.Request) {
	upload, err := readSingleUpload(r, "cv", h.maxUploadBytes)
	if err != nil {
		writeValidationError(r.Context(), w, "upload_cv", err)
		return
	}
	details, err := h.service.UploadCV(r.Context(), upload)
	if err != nil {
		writeMappedError(r.Context(), w, "upload_cv", err)
		return
	}
	writeSuccess(w, http.StatusOK, details)
}
