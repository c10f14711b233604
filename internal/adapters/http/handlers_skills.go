package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/application"
)

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.ListSkills(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeMappedError(r.Context(), w, "list_skills", err)
		return
	}
	writeSuccess(w, http.StatusOK, skills)
}

func (h *Handler) listSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListSkillCategories(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_skill_categories", err)
		return
	}
	writeSuccess(w, http.StatusOK, categories)
}

func (h *Handler) listAllSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.ListAllSkills(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_all_skills", err)
		return
	}
	writeSuccess(w, http.StatusOK, skills)
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	var in application.SkillInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "create_skill", err)
		return
	}
	skill, err := h.service.CreateSkill(r.Context(), in)
	if err != nil {
		writeMappedError(r.Context(), w, "create_skill", err)
		return
	}
	writeSuccess(w, http.StatusCreated, skill)
}

func (h *Handler) updateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "update_skill", err)
		return
	}
	var in application.SkillInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "update_skill", err)
		return
	}
	skill, err := h.service.UpdateSkill(r.Context(), id, in)
	if err != nil {
		writeMappedError(r.Context(), w, "update_skill", err)
		return
	}
	writeSuccess(w, http.StatusOK, skill)
}

func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_skill", err)
		return
	}
	if err := h.service.DeleteSkill(r.Context(), id); err != nil {
		writeMappedError(r.Context(), w, "delete_skill", err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill deleted successfully")
}

type reorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids"`
}

func (h *Handler) reorderSkills(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "reorder_skills", err)
		return
	}
	if len(req.OrderedIDs) == 0 {
		writeValidationError(r.Context(), w, "reorder_skills", errors.New("ordered_ids must not be empty"))
		return
	}
	if err := h.service.ReorderSkills(r.Context(), req.OrderedIDs); err != nil {
		writeMappedError(r.Context(), w, "reorder_skills", err)
		return
	}
	writeMessage(w, http.StatusOK, "Skills reordered successfully")
}
