package http

import (
	"errors"
	"net/http"

	"github.com/dushan456/portfolio-backend/internal/application"
	"github.com/dushan456/portfolio-backend/internal/domain"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}
	if req.IPAddress == "" {
		req.IPAddress = readIP(r)
	}
	if req.UserAgent == "" {
		req.UserAgent = r.UserAgent()
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	// The token arrives in the body; the Authorization header works too so
	// clients can reuse their request middleware.
	var req struct {
		Token string `json:"token"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			writeValidationError(r.Context(), w, "verify_token", err)
			return
		}
	}
	if req.Token == "" {
		if token, err := bearerTokenFromHeader(r.Header.Get("Authorization")); err == nil {
			req.Token = token
		}
	}
	if req.Token == "" {
		writeValidationError(r.Context(), w, "verify_token", errors.New("token is required"))
		return
	}

	admin, err := h.service.VerifyToken(r.Context(), req.Token)
	if err != nil {
		writeMappedError(r.Context(), w, "verify_token", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"valid": true,
		"admin": admin,
	})
}

func (h *Handler) currentAdmin(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		writeMissingBearerError(r.Context(), w, "current_admin")
		return
	}
	writeSuccess(w, http.StatusOK, application.AdminSummary{
		ID:        admin.AdminID,
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role,
		LastLogin: admin.LastLoginAt,
	})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		writeMissingBearerError(r.Context(), w, "update_profile")
		return
	}
	var req application.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_profile", err)
		return
	}

	res, err := h.service.UpdateAdminProfile(r.Context(), admin.AdminID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_profile", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		writeMissingBearerError(r.Context(), w, "change_password")
		return
	}
	var req application.ChangePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "change_password", err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), admin.AdminID, req); err != nil {
		// A wrong current password is bad input here, not a failed login.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeValidationError(r.Context(), w, "change_password", errors.New("current password is incorrect"))
			return
		}
		writeMappedError(r.Context(), w, "change_password", err)
		return
	}
	writeMessage(w, http.StatusOK, "Password changed successfully")
}

// logout is stateless on the server: signed tokens stay valid until expiry,
// so the endpoint only confirms the client-side discard.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) loginHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
	attempts, err := h.service.ListLoginAudit(r.Context(), limit)
	if err != nil {
		writeMappedError(r.Context(), w, "login_history", err)
		return
	}
	writeSuccess(w, http.StatusOK, attempts)
}
