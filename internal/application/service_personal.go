package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

const cacheKeyPersonal = "portfolio:personal"

// GetPersonalDetails returns the public owner profile.
func (s *Service) GetPersonalDetails(ctx context.Context) (domain.PersonalDetails, error) {
	if raw, found, err := s.cache.Get(ctx, cacheKeyPersonal); err == nil && found {
		var cached domain.PersonalDetails
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	}

	details, err := s.personal.Get(ctx)
	if err != nil {
		return domain.PersonalDetails{}, err
	}
	if raw, err := json.Marshal(details); err == nil {
		_ = s.cache.Set(ctx, cacheKeyPersonal, string(raw), s.cfg.CacheTTL)
	}
	return details, nil
}

// UpdatePersonalDetails upserts the single owner-profile row. Upload URLs
// survive the update; they only change through the upload operations.
func (s *Service) UpdatePersonalDetails(ctx context.Context, in PersonalDetailsInput) (domain.PersonalDetails, error) {
	details := domain.PersonalDetails{
		FullName:      strings.TrimSpace(in.FullName),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		BusinessEmail: strings.ToLower(strings.TrimSpace(in.BusinessEmail)),
		PhoneNumbers:  in.PhoneNumbers,
		SocialLinks:   in.SocialLinks,
		PersonalInfo:  in.PersonalInfo,
		Bio:           in.Bio,
		IsActive:      true,
	}
	if err := domain.ValidatePersonalDetails(details); err != nil {
		return domain.PersonalDetails{}, err
	}

	existing, err := s.personal.Get(ctx)
	switch {
	case err == nil:
		details.DetailsID = existing.DetailsID
		details.ProfileImages = existing.ProfileImages
		details.CVURL = existing.CVURL
		details.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		details.CreatedAt = s.nowFn()
	default:
		// A storage failure must not be mistaken for "no row yet": writing
		// through here would wipe the upload URLs off the persisted profile.
		return domain.PersonalDetails{}, fmt.Errorf("fetch personal details: %w", err)
	}
	details.UpdatedAt = s.nowFn()

	updated, err := s.personal.Upsert(ctx, details)
	if err != nil {
		return domain.PersonalDetails{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyPersonal)
	return updated, nil
}

// UploadProfileImage stores a profile photo into the main or secondary slot.
func (s *Service) UploadProfileImage(ctx context.Context, slot string, upload UploadInput) (domain.PersonalDetails, error) {
	if slot != "main" && slot != "secondary" {
		return domain.PersonalDetails{}, fmt.Errorf("%w: image slot must be main or secondary", domain.ErrInvalidInput)
	}
	if err := s.checkUpload(upload, imageMIMEs); err != nil {
		return domain.PersonalDetails{}, err
	}

	details, err := s.personal.Get(ctx)
	if err != nil {
		return domain.PersonalDetails{}, err
	}

	url, err := s.files.Save(ctx, "profile", upload.FileName, upload.Data)
	if err != nil {
		return domain.PersonalDetails{}, fmt.Errorf("store profile image: %w", err)
	}
	if slot == "main" {
		details.ProfileImages.Main = url
	} else {
		details.ProfileImages.Secondary = url
	}
	details.UpdatedAt = s.nowFn()

	updated, err := s.personal.Upsert(ctx, details)
	if err != nil {
		return domain.PersonalDetails{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyPersonal)
	return updated, nil
}

// UploadCV stores the downloadable CV document.
func (s *Service) UploadCV(ctx context.Context, upload UploadInput) (domain.PersonalDetails, error) {
	if err := s.checkUpload(upload, documentMIMEs); err != nil {
		return domain.PersonalDetails{}, err
	}

	details, err := s.personal.Get(ctx)
	if err != nil {
		return domain.PersonalDetails{}, err
	}

	url, err := s.files.Save(ctx, "cv", upload.FileName, upload.Data)
	if err != nil {
		return domain.PersonalDetails{}, fmt.Errorf("store cv: %w", err)
	}
	details.CVURL = url
	details.UpdatedAt = s.nowFn()

	updated, err := s.personal.Upsert(ctx, details)
	if err != nil {
		return domain.PersonalDetails{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeyPersonal)
	return updated, nil
}
