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

type contactRepository struct {
	db *gorm.DB
}

func (r *contactRepository) Create(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	rec := contactMessageModel{
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Phone:     msg.Phone,
		IPAddress: nullableString(msg.IPAddress),
		UserAgent: msg.UserAgent,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.ContactMessage{}, err
	}
	return toDomainContactMessage(rec), nil
}

func (r *contactRepository) GetByID(ctx context.Context, messageID uuid.UUID) (domain.ContactMessage, error) {
	var rec contactMessageModel
	if err := r.db.WithContext(ctx).Where("message_id = ?", messageID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ContactMessage{}, domain.ErrNotFound
		}
		return domain.ContactMessage{}, err
	}
	return toDomainContactMessage(rec), nil
}

func (r *contactRepository) List(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&contactMessageModel{})
	if filter.Read != nil {
		query = query.Where("is_read = ?", *filter.Read)
	}
	if filter.Replied != nil {
		query = query.Where("is_replied = ?", *filter.Replied)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []contactMessageModel
	listQuery := query.Order("created_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
	}
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	result := make([]domain.ContactMessage, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainContactMessage(row))
	}
	return result, total, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, messageID uuid.UUID, read bool, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&contactMessageModel{}).
		Where("message_id = ?", messageID).
		Updates(map[string]any{
			"is_read":    read,
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

func (r *contactRepository) Reply(ctx context.Context, messageID uuid.UUID, reply string, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&contactMessageModel{}).
		Where("message_id = ?", messageID).
		Updates(map[string]any{
			"is_replied":    true,
			"is_read":       true,
			"reply_message": reply,
			"replied_at":    now,
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

func (r *contactRepository) Delete(ctx context.Context, messageID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Delete(&contactMessageModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Stats(ctx context.Context, recentSince time.Time) (ports.ContactStats, error) {
	stats := ports.ContactStats{}
	base := func() *gorm.DB { return r.db.WithContext(ctx).Model(&contactMessageModel{}) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return ports.ContactStats{}, err
	}
	if err := base().Where("is_read = FALSE").Count(&stats.Unread).Error; err != nil {
		return ports.ContactStats{}, err
	}
	if err := base().Where("is_replied = TRUE").Count(&stats.Replied).Error; err != nil {
		return ports.ContactStats{}, err
	}
	if err := base().Where("created_at >= ?", recentSince).Count(&stats.Recent).Error; err != nil {
		return ports.ContactStats{}, err
	}
	return stats, nil
}
