package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

func toAdminSummary(admin domain.Admin) AdminSummary {
	return AdminSummary{
		ID:        admin.AdminID,
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role,
		LastLogin: admin.LastLoginAt,
	}
}

// recordAttempt writes the audit row for a login outcome. Audit failures
// never fail the login itself; they are logged and dropped.
func (s *Service) recordAttempt(ctx context.Context, adminID *uuid.UUID, email string, req LoginRequest, status, reason string) {
	err := s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		AdminID:   adminID,
		AttemptAt: s.nowFn(),
		Email:     email,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		Status:    status,
		Reason:    reason,
	})
	if err != nil {
		slog.Default().WarnContext(ctx, "failed to record login attempt",
			"module", "application",
			"operation", "record_attempt",
			"outcome", "failure",
			"error", err,
		)
	}
}

func pageWindow(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
