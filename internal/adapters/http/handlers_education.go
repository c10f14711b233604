package http

import (
	"errors"
	"net/http"

	"github.com/dushan456/portfolio-backend/internal/application"
)

func (h *Handler) listEducation(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListEducation(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_education", err)
		return
	}
	writeSuccess(w, http.StatusOK, records)
}

func (h *Handler) listAllEducation(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListAllEducation(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_all_education", err)
		return
	}
	writeSuccess(w, http.StatusOK, records)
}

func (h *Handler) createEducation(w http.ResponseWriter, r *http.Request) {
	var in application.EducationInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "create_education", err)
		return
	}
	record, err := h.service.CreateEducation(r.Context(), in)
	if err != nil {
		writeMappedError(r.Context(), w, "create_education", err)
		return
	}
	writeSuccess(w, http.StatusCreated, record)
}

func (h *Handler) updateEducation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "update_education", err)
		return
	}
	var in application.EducationInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "update_education", err)
		return
	}
	record, err := h.service.UpdateEducation(r.Context(), id, in)
	if err != nil {
		writeMappedError(r.Context(), w, "update_education", err)
		return
	}
	writeSuccess(w, http.StatusOK, record)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_education", err)
		return
	}
	if err := h.service.DeleteEducation(r.Context(), id); err != nil {
		writeMappedError(r.Context(), w, "delete_education", err)
		return
	}
	writeMessage(w, http.StatusOK, "Education record deleted successfully")
}

func (h *Handler) reorderEducation(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "reorder_education", err)
		return
	}
	if len(req.OrderedIDs) == 0 {
		writeValidationError(r.Context(), w, "reorder_education", errors.New("ordered_ids must not be empty"))
		return
	}
	if err := h.service.ReorderEducation(r.Context(), req.OrderedIDs); err != nil {
		writeMappedError(r.Context(), w, "reorder_education", err)
		return
	}
	writeMessage(w, http.StatusOK, "Education records reordered successfully")
}

func (h *Handler) uploadEducationLogo(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "upload_education_logo", err)
		return
	}
	upload, err := readSingleUpload(r, "logo", h.maxUploadBytes)
	if err != nil {
		writeValidationError(r.Context(), w, "upload_education_logo", err)
		return
	}
	record, err := h.service.UploadEducationLogo(r.Context(), id, upload)
	if err != nil {
		writeMappedError(r.Context(), w, "upload_education_logo", err)
		return
	}
	writeSuccess(w, http.StatusOK, record)
}

func (h *Handler) uploadEducationCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "upload_education_certificate", err)
		return
	}
	upload, err := readSingleUpload(r, "certificate", h.maxUploadBytes)
	if err != nil {
		writeValidationError(r.Context(), w, "upload_education_certificate", err)
		return
	}
	record, err := h.service.UploadEducationCertificate(r.Context(), id, upload)
	if err != nil {
		writeMappedError(r.Context(), w, "upload_education_certificate", err)
		return
	}
	writeSuccess(w, http.StatusOK, record)
}
