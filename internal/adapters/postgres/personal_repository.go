package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

type personalDetailsRepository struct {
	db *gorm.DB
}

func (r *personalDetailsRepository) Get(ctx context.Context) (domain.PersonalDetails, error) {
	var rec personalDetailsModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PersonalDetails{}, domain.ErrNotFound
		}
		return domain.PersonalDetails{}, err
	}
	return toDomainPersonalDetails(rec), nil
}

// Upsert keeps the table at a single row: the existing row is updated in
// place when present, otherwise the first row is inserted.
func (r *personalDetailsRepository) Upsert(ctx context.Context, details domain.PersonalDetails) (domain.PersonalDetails, error) {
	var result domain.PersonalDetails
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing personalDetailsModel
		err := tx.Order("created_at ASC").Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec := personalDetailsToModel(details)
			rec.DetailsID = uuid.Nil
			if createErr := tx.Create(&rec).Error; createErr != nil {
				return createErr
			}
			result = toDomainPersonalDetails(rec)
			return nil
		case err != nil:
			return err
		}

		rec := personalDetailsToModel(details)
		if updateErr := tx.Model(&personalDetailsModel{}).
			Where("details_id = ?", existing.DetailsID).
			Updates(map[string]any{
				"full_name":      rec.FullName,
				"email":          rec.Email,
				"business_email": rec.BusinessEmail,
				"phone_numbers":  rec.PhoneNumbers,
				"social_links":   rec.SocialLinks,
				"personal_info":  rec.PersonalInfo,
				"bio":            rec.Bio,
				"profile_images": rec.ProfileImages,
				"cv_url":         rec.CVURL,
				"is_active":      rec.IsActive,
				"updated_at":     rec.UpdatedAt,
			}).Error; updateErr != nil {
			return updateErr
		}

		var reloaded personalDetailsModel
		if loadErr := tx.Where("details_id = ?", existing.DetailsID).Take(&reloaded).Error; loadErr != nil {
			return loadErr
		}
		result = toDomainPersonalDetails(reloaded)
		return nil
	})
	if err != nil {
		return domain.PersonalDetails{}, err
	}
	return result, nil
}
