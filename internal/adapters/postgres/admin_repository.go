package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

type adminRepository struct {
	db *gorm.DB
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	var rec adminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, err
	}
	return toDomainAdmin(rec), nil
}

func (r *adminRepository) GetByID(ctx context.Context, adminID uuid.UUID) (domain.Admin, error) {
	var rec adminModel
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, err
	}
	return toDomainAdmin(rec), nil
}

func (r *adminRepository) Create(ctx context.Context, params ports.CreateAdminParams) (domain.Admin, error) {
	rec := adminModel{
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Name:         params.Name,
		Role:         params.Role,
		IsActive:     true,
		CreatedAt:    params.CreatedAt,
		UpdatedAt:    params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Admin{}, domain.ErrDuplicateEmail
		}
		return domain.Admin{}, err
	}
	return toDomainAdmin(rec), nil
}

func (r *adminRepository) UpdateLoginState(ctx context.Context, adminID uuid.UUID, state ports.LoginStateUpdate, now time.Time) error {
	updates := map[string]any{
		"failed_login_attempts": state.FailedAttempts,
		"locked_until":          state.LockedUntil,
		"updated_at":            now,
	}
	if state.LastLoginAt != nil {
		updates["last_login_at"] = *state.LastLoginAt
	}
	res := r.db.WithContext(ctx).
		Model(&adminModel{}).
		Where("admin_id = ?", adminID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepository) UpdatePasswordHash(ctx context.Context, adminID uuid.UUID, passwordHash string, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&adminModel{}).
		Where("admin_id = ?", adminID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepository) UpdateProfile(ctx context.Context, adminID uuid.UUID, patch ports.AdminProfilePatch, now time.Time) (domain.Admin, error) {
	updates := map[string]any{"updated_at": now}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	res := r.db.WithContext(ctx).
		Model(&adminModel{}).
		Where("admin_id = ?", adminID).
		Updates(updates)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.Admin{}, domain.ErrDuplicateEmail
		}
		return domain.Admin{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Admin{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, adminID)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
