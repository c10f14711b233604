package http

import (
	"errors"
	"net/http"

	"github.com/dushan456/portfolio-backend/internal/application"
)

func (h *Handler) submitContactMessage(w http.ResponseWriter, r *http.Request) {
	var in application.ContactInput
	if err := decodeBody(r, &in); err != nil {
		writeValidationError(r.Context(), w, "submit_contact_message", err)
		return
	}
	if in.IPAddress == "" {
		in.IPAddress = readIP(r)
	}
	if in.UserAgent == "" {
		in.UserAgent = r.UserAgent()
	}

	msg, err := h.service.SubmitContactMessage(r.Context(), in)
	if err != nil {
		writeMappedError(r.Context(), w, "submit_contact_message", err)
		return
	}
	writeSuccess(w, http.StatusCreated, msg)
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.service.ListContactMessages(r.Context(), application.ContactListQuery{
		Read:    parseBoolFilter(q.Get("read")),
		Replied: parseBoolFilter(q.Get("replied")),
		Page:    parseIntDefault(q.Get("page"), 1),
		Limit:   parseIntDefault(q.Get("limit"), 20),
	})
	if err != nil {
		writeMappedError(r.Context(), w, "list_contact_messages", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "get_contact_message", err)
		return
	}
	msg, err := h.service.GetContactMessage(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), w, "get_contact_message", err)
		return
	}
	writeSuccess(w, http.StatusOK, msg)
}

type replyRequest struct {
	Message string `json:"message"`
}

func (h *Handler) replyToContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "reply_to_contact_message", err)
		return
	}
	var req replyRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "reply_to_contact_message", err)
		return
	}
	if req.Message == "" {
		writeValidationError(r.Context(), w, "reply_to_contact_message", errors.New("message must not be empty"))
		return
	}

	msg, err := h.service.ReplyToContactMessage(r.Context(), id, req.Message)
	if err != nil {
		writeMappedError(r.Context(), w, "reply_to_contact_message", err)
		return
	}
	writeSuccess(w, http.StatusOK, msg)
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

func (h *Handler) markContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "mark_contact_message_read", err)
		return
	}
	var req markReadRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "mark_contact_message_read", err)
		return
	}
	read := true
	if req.Read != nil {
		read = *req.Read
	}

	if err := h.service.MarkContactMessageRead(r.Context(), id, read); err != nil {
		writeMappedError(r.Context(), w, "mark_contact_message_read", err)
		return
	}
	writeMessage(w, http.StatusOK, "Message updated successfully")
}

func (h *Handler) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_contact_message", err)
		return
	}
	if err := h.service.DeleteContactMessage(r.Context(), id); err != nil {
		writeMappedError(r.Context(), w, "delete_contact_message", err)
		return
	}
	writeMessage(w, http.StatusOK, "Message deleted successfully")
}

func (h *Handler) contactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ContactStats(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "contact_stats", err)
		return
	}
	writeSuccess(w, http.StatusOK, stats)
}
