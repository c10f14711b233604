package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dushan456/portfolio-backend/internal/application"
	"github.com/dushan456/portfolio-backend/internal/domain"
)

const personalCacheKey = "portfolio:personal"

func validPersonalInput() application.PersonalDetailsInput {
	return application.PersonalDetailsInput{
		FullName:     "Dushan Perera",
		Email:        "Owner@Example.com",
		PhoneNumbers: []string{"+94 71 000 0000"},
	}
}

func TestUpdatePersonalDetailsUpserts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	details, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput())
	if err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if details.Email != "owner@example.com" {
		t.Fatalf("Email = %q, want lowercase", details.Email)
	}

	// Second update reuses the same row.
	in := validPersonalInput()
	in.FullName = "Dushan B. Perera"
	updated, err := f.service.UpdatePersonalDetails(ctx, in)
	if err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if updated.DetailsID != details.DetailsID {
		t.Fatal("updates must target the single existing row")
	}
	if !updated.CreatedAt.Equal(details.CreatedAt) {
		t.Fatal("CreatedAt must survive updates")
	}
}

func TestUpdatePersonalDetailsPreservesUploads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if _, err := f.service.UploadProfileImage(ctx, "main", application.UploadInput{
		FileName: "me.png", ContentType: "image/png", Data: []byte("png"),
	}); err != nil {
		t.Fatalf("UploadProfileImage: %v", err)
	}
	if _, err := f.service.UploadCV(ctx, application.UploadInput{
		FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("pdf"),
	}); err != nil {
		t.Fatalf("UploadCV: %v", err)
	}

	updated, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput())
	if err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if updated.ProfileImages.Main == "" {
		t.Fatal("profile image must survive a details update")
	}
	if updated.CVURL == "" {
		t.Fatal("cv url must survive a details update")
	}
}

func TestUpdatePersonalDetailsStorageFailureKeepsUploads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if _, err := f.service.UploadProfileImage(ctx, "main", application.UploadInput{
		FileName: "me.png", ContentType: "image/png", Data: []byte("png"),
	}); err != nil {
		t.Fatalf("UploadProfileImage: %v", err)
	}
	if _, err := f.service.UploadCV(ctx, application.UploadInput{
		FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("pdf"),
	}); err != nil {
		t.Fatalf("UploadCV: %v", err)
	}

	// A failing read must surface, not be treated as an empty profile.
	f.personal.getErr = errors.New("connection reset by peer")
	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err == nil {
		t.Fatal("storage failure during update must propagate")
	}

	stored, err := f.personal.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ProfileImages.Main == "" || stored.CVURL == "" {
		t.Fatalf("uploads wiped by failed update: %+v", stored.ProfileImages)
	}
}

func TestUploadProfileImageSlots(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}

	upload := application.UploadInput{FileName: "me.png", ContentType: "image/png", Data: []byte("png")}
	if _, err := f.service.UploadProfileImage(ctx, "avatar", upload); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad slot: err = %v, want ErrInvalidInput", err)
	}

	details, err := f.service.UploadProfileImage(ctx, "secondary", upload)
	if err != nil {
		t.Fatalf("UploadProfileImage: %v", err)
	}
	if details.ProfileImages.Secondary == "" || details.ProfileImages.Main != "" {
		t.Fatalf("secondary slot upload landed wrong: %+v", details.ProfileImages)
	}
}

func TestGetPersonalDetailsCaches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.GetPersonalDetails(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("empty profile: err = %v, want ErrNotFound", err)
	}

	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}

	if _, err := f.service.GetPersonalDetails(ctx); err != nil {
		t.Fatalf("GetPersonalDetails: %v", err)
	}
	if !f.cache.has(personalCacheKey) {
		t.Fatal("read must populate the cache")
	}

	if _, err := f.service.UpdatePersonalDetails(ctx, validPersonalInput()); err != nil {
		t.Fatalf("UpdatePersonalDetails: %v", err)
	}
	if f.cache.has(personalCacheKey) {
		t.Fatal("update must invalidate the cache")
	}
}

func TestUpdatePersonalDetailsValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	in := validPersonalInput()
	in.PhoneNumbers = nil
	if _, err := f.service.UpdatePersonalDetails(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("no phones: err = %v, want ErrInvalidInput", err)
	}

	in = validPersonalInput()
	in.Email = "broken"
	if _, err := f.service.UpdatePersonalDetails(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad email: err = %v, want ErrInvalidInput", err)
	}
}
