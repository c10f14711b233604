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

type projectRepository struct {
	db *gorm.DB
}

func (r *projectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	rec := projectToModel(project)
	rec.ProjectID = uuid.Nil
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Project{}, err
	}
	return toDomainProject(rec), nil
}

func (r *projectRepository) GetByID(ctx context.Context, projectID uuid.UUID) (domain.Project, error) {
	var rec projectModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, err
	}
	return toDomainProject(rec), nil
}

func (r *projectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, int64, error) {
	query := r.db.WithContext(ctx).Model(&projectModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = TRUE")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []projectModel
	listQuery := query.Order("priority DESC, created_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
	}
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	result := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainProject(row))
	}
	return result, total, nil
}

func (r *projectRepository) Update(ctx context.Context, project domain.Project) (domain.Project, error) {
	rec := projectToModel(project)
	res := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("project_id = ?", project.ProjectID).
		Updates(map[string]any{
			"title":             rec.Title,
			"description":       rec.Description,
			"short_description": rec.ShortDescription,
			"category":          rec.Category,
			"technologies":      rec.Technologies,
			"images":            rec.Images,
			"live_url":          rec.LiveURL,
			"github_url":        rec.GithubURL,
			"features":          rec.Features,
			"status":            rec.Status,
			"start_date":        rec.StartDate,
			"end_date":          rec.EndDate,
			"priority":          rec.Priority,
			"is_featured":       rec.IsFeatured,
			"tags":              rec.Tags,
			"client":            rec.Client,
			"updated_at":        rec.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Project{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, project.ProjectID)
}

func (r *projectRepository) SetActive(ctx context.Context, projectID uuid.UUID, active bool, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("project_id = ?", projectID).
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

func (r *projectRepository) AppendImages(ctx context.Context, projectID uuid.UUID, images []domain.ProjectImage, now time.Time) (domain.Project, error) {
	var result domain.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec projectModel
		if err := tx.Where("project_id = ?", projectID).Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		current := toDomainProject(rec)
		current.Images = append(current.Images, images...)
		if err := tx.Model(&projectModel{}).
			Where("project_id = ?", projectID).
			Updates(map[string]any{
				"images":     encodeJSONColumn(current.Images),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		current.UpdatedAt = now
		result = current
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return result, nil
}
