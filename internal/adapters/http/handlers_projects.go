package http

import (
	"net/http"

	"github.com/dushan456/portfolio-backend/internal/application"
)

func projectListQuery(r *http.Request) application.ProjectListQuery {
	q := r.URL.Query()
	return application.ProjectListQuery{
		Category: q.Get("category"),
		Featured: parseBoolFilter(q.Get("featured")),
		Page:     parseIntDefault(q.Get("page"), 1),
		Limit:    parseIntDefault(q.Get("limit"), 10),
	}
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListProjects(r.Context(), projectListQuery(r))
	if err != nil {
		writeMappedError(r.Context(), w, "list_projects", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) listAllProjects(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListAllProjects(r.Context(), projectListQuery(r))
	if err != nil {
		writeMappedError(r.Context(), w, "list_all_projects", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "get_project", err)
		return
	}
	project, err := h.service.GetProject(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), w, "get_project", err)
		return
	}
	writeSuccess(w, http.StatusOK, project)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var in application.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "create_project", err)
		return
	}
	project, err := h.service.CreateProject(r.Context(), in)
	if err != nil {
		writeMappedError(r.Context(), w, "create_project", err)
		return
	}
	writeSuccess(w, http.StatusCreated, project)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "update_project", err)
		return
	}
	var in application.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "update_project", err)
		return
	}
	project, err := h.service.UpdateProject(r.Context(), id, in)
	if err != nil {
		writeMappedError(r.Context(), w, "update_project", err)
		return
	}
	writeSuccess(w, http.StatusOK, project)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_project", err)
		return
	}
	if err := h.service.DeleteProject(r.Context(), id); err != nil {
		writeMappedError(r.Context(), w, "delete_project", err)
		return
	}
	writeMessage(w, http.StatusOK, "Project deleted successfully")
}

func (h *Handler) uploadProjectImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "upload_project_images", err)
		return
	}
	uploads, err := readUploads(r, "images", h.maxUploadBytes, 10)
	if err != nil {
		writeValidationError(r.Context(), w, "upload_project_images", err)
		return
	}
	images, err := h.service.UploadProjectImages(r.Context(), id, uploads)
	if err != nil {
		writeMappedError(r.Context(), w, "upload_project_images", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"images": images})
}
