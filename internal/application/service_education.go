package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

const cacheKeyEducation = "portfolio:education:active"

func educationFromInput(in EducationInput) domain.Education {
	recType := in.Type
	if recType == "" {
		recType = "Certificate"
	}
	completed := true
	if in.IsCompleted != nil {
		completed = *in.IsCompleted
	}
	return domain.Education{
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsCompleted: completed,
		Grade:       in.Grade,
		Description: in.Description,
		Type:        recType,
		IsActive:    true,
		Order:       in.Order,
	}
}

func (s *Service) ListEducation(ctx context.Context) ([]domain.Education, error) {
	if raw, found, err := s.cache.Get(ctx, cacheKeyEducation); err == nil && found {
		var cached []domain.Education
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	}

	records, err := s.education.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(records); err == nil {
		_ = s.cache.Set(ctx, cacheKeyEducation, string(raw), s.cfg.CacheTTL)
	}
	return records, nil
}

func (s *Service) ListAllEducation(ctx context.Context) ([]domain.Education, error) {
	return s.education.List(ctx, false)
}

func (s *Service) CreateEducation(ctx context.Context, in EducationInput) (domain.Education, error) {
	record := educationFromInput(in)
	if err := domain.ValidateEducation(record); err != nil {
		return domain.Education{}, err
	}
	now := s.nowFn()
	record.CreatedAt = now
	record.UpdatedAt = now

	created, err := s.education.Create(ctx, record)
	if err != nil {
		return domain.Education{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return created, nil
}

func (s *Service) UpdateEducation(ctx context.Context, educationID uuid.UUID, in EducationInput) (domain.Education, error) {
	existing, err := s.education.GetByID(ctx, educationID)
	if err != nil {
		return domain.Education{}, err
	}

	record := educationFromInput(in)
	record.EducationID = existing.EducationID
	record.IsActive = existing.IsActive
	record.LogoURL = existing.LogoURL
	record.CertificateURL = existing.CertificateURL
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.nowFn()
	if err := domain.ValidateEducation(record); err != nil {
		return domain.Education{}, err
	}

	updated, err := s.education.Update(ctx, record)
	if err != nil {
		return domain.Education{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return updated, nil
}

func (s *Service) DeleteEducation(ctx context.Context, educationID uuid.UUID) error {
	if err := s.education.SetActive(ctx, educationID, false, s.nowFn()); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return nil
}

func (s *Service) ReorderEducation(ctx context.Context, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: ordered education ids are required", domain.ErrInvalidInput)
	}
	if err := s.education.Reorder(ctx, orderedIDs, s.nowFn()); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return nil
}

// UploadEducationLogo stores an institution logo and records its URL.
func (s *Service) UploadEducationLogo(ctx context.Context, educationID uuid.UUID, upload UploadInput) (domain.Education, error) {
	record, err := s.education.GetByID(ctx, educationID)
	if err != nil {
		return domain.Education{}, err
	}
	if err := s.checkUpload(upload, imageMIMEs); err != nil {
		return domain.Education{}, err
	}
	url, err := s.files.Save(ctx, "logo", upload.FileName, upload.Data)
	if err != nil {
		return domain.Education{}, fmt.Errorf("store logo: %w", err)
	}

	record.LogoURL = url
	record.UpdatedAt = s.nowFn()
	updated, err := s.education.Update(ctx, record)
	if err != nil {
		return domain.Education{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return updated, nil
}

// UploadEducationCertificate stores a certificate document and records its URL.
func (s *Service) UploadEducationCertificate(ctx context.Context, educationID uuid.UUID, upload UploadInput) (domain.Education, error) {
	record, err := s.education.GetByID(ctx, educationID)
	if err != nil {
		return domain.Education{}, err
	}
	if err := s.checkUpload(upload, documentMIMEs); err != nil {
		return domain.Education{}, err
	}
	url, err := s.files.Save(ctx, "certificate", upload.FileName, upload.Data)
	if err != nil {
		return domain.Education{}, fmt.Errorf("store certificate: %w", err)
	}

	record.CertificateURL = url
	record.UpdatedAt = s.nowFn()
	updated, err := s.education.Update(ctx, record)
	if err != nil {
		return domain.Education{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyEducation)
	return updated, nil
}
