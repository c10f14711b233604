package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

type loginAttemptRepository struct {
	db *gorm.DB
}

func (r *loginAttemptRepository) Insert(ctx context.Context, attempt domain.LoginAttempt) error {
	rec := loginAttemptModel{
		AdminID:   attempt.AdminID,
		AttemptAt: attempt.AttemptAt,
		Email:     attempt.Email,
		IPAddress: nullableString(attempt.IPAddress),
		UserAgent: attempt.UserAgent,
		Status:    attempt.Status,
		Reason:    attempt.Reason,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *loginAttemptRepository) ListRecent(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []loginAttemptModel
	if err := r.db.WithContext(ctx).
		Order("attempt_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.LoginAttempt, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainLoginAttempt(row))
	}
	return result, nil
}
