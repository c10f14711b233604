package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

type educationRepository struct {
	db *gorm.DB
}

func (r *educationRepository) Create(ctx context.Context, record domain.Education) (domain.Education, error) {
	rec := educationToModel(record)
	rec.EducationID = uuid.Nil
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Education{}, err
	}
	return toDomainEducation(rec), nil
}

func (r *educationRepository) GetByID(ctx context.Context, educationID uuid.UUID) (domain.Education, error) {
	var rec educationModel
	if err := r.db.WithContext(ctx).Where("education_id = ?", educationID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Education{}, domain.ErrNotFound
		}
		return domain.Education{}, err
	}
	return toDomainEducation(rec), nil
}

func (r *educationRepository) List(ctx context.Context, activeOnly bool) ([]domain.Education, error) {
	query := r.db.WithContext(ctx).Model(&educationModel{})
	if activeOnly {
		query = query.Where("is_active = TRUE")
	}

	var rows []educationModel
	if err := query.Order("sort_order ASC, start_date DESC NULLS LAST").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Education, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainEducation(row))
	}
	return result, nil
}

func (r *educationRepository) Update(ctx context.Context, record domain.Education) (domain.Education, error) {
	rec := educationToModel(record)
	res := r.db.WithContext(ctx).
		Model(&educationModel{}).
		Where("education_id = ?", record.EducationID).
		Updates(map[string]any{
			"institution":     rec.Institution,
			"degree":          rec.Degree,
			"field_of_study":  rec.Field,
			"start_date":      rec.StartDate,
			"end_date":        rec.EndDate,
			"is_completed":    rec.IsCompleted,
			"grade":           rec.Grade,
			"description":     rec.Description,
			"logo_url":        rec.LogoURL,
			"certificate_url": rec.CertificateURL,
			"education_type":  rec.Type,
			"sort_order":      rec.SortOrder,
			"updated_at":      rec.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Education{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Education{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, record.EducationID)
}

func (r *educationRepository) SetActive(ctx context.Context, educationID uuid.UUID, active bool, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&educationModel{}).
		Where("education_id = ?", educationID).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			res := tx.Model(&educationModel{}).
				Where("education_id = ?", id).
				Updates(map[string]any{
					"sort_order": position,
					"updated_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrNotFound
			}
		}
		return nil
	})
}
