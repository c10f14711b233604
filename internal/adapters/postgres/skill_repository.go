package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

type skillRepository struct {
	db *gorm.DB
}

func (r *skillRepository) Create(ctx context.Context, skill domain.Skill) (domain.Skill, error) {
	rec := skillToModel(skill)
	rec.SkillID = uuid.Nil
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Skill{}, fmt.Errorf("%w: skill name already exists", domain.ErrConflict)
		}
		return domain.Skill{}, err
	}
	return toDomainSkill(rec), nil
}

func (r *skillRepository) GetByID(ctx context.Context, skillID uuid.UUID) (domain.Skill, error) {
	var rec skillModel
	if err := r.db.WithContext(ctx).Where("skill_id = ?", skillID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Skill{}, domain.ErrNotFound
		}
		return domain.Skill{}, err
	}
	return toDomainSkill(rec), nil
}

func (r *skillRepository) List(ctx context.Context, category string, activeOnly bool) ([]domain.Skill, error) {
	query := r.db.WithContext(ctx).Model(&skillModel{})
	if activeOnly {
		query = query.Where("is_active = TRUE")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var rows []skillModel
	if err := query.Order("sort_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Skill, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainSkill(row))
	}
	return result, nil
}

func (r *skillRepository) Update(ctx context.Context, skill domain.Skill) (domain.Skill, error) {
	rec := skillToModel(skill)
	res := r.db.WithContext(ctx).
		Model(&skillModel{}).
		Where("skill_id = ?", skill.SkillID).
		Updates(map[string]any{
			"name":        rec.Name,
			"category":    rec.Category,
			"proficiency": rec.Proficiency,
			"icon":        rec.Icon,
			"description": rec.Description,
			"sort_order":  rec.SortOrder,
			"updated_at":  rec.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.Skill{}, fmt.Errorf("%w: skill name already exists", domain.ErrConflict)
		}
		return domain.Skill{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Skill{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, skill.SkillID)
}

func (r *skillRepository) SetActive(ctx context.Context, skillID uuid.UUID, active bool, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&skillModel{}).
		Where("skill_id = ?", skillID).
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

func (r *skillRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			res := tx.Model(&skillModel{}).
				Where("skill_id = ?", id).
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
