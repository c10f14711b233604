package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dushan456/portfolio-backend/internal/application"
	"github.com/dushan456/portfolio-backend/internal/domain"
)

const educationCacheKey = "portfolio:education:active"

func validEducationInput() application.EducationInput {
	return application.EducationInput{
		Institution: "University of Colombo",
		Degree:      "BSc in Computer Science",
		Field:       "Computer Science",
		Type:        "Degree",
	}
}

func TestCreateEducationDefaults(t *testing.T) {
	f := newFixture()

	in := validEducationInput()
	in.Type = ""
	record, err := f.service.CreateEducation(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}
	if record.Type != "Certificate" {
		t.Fatalf("Type = %q, want default Certificate", record.Type)
	}
	if !record.IsCompleted {
		t.Fatal("IsCompleted defaults to true")
	}
	if !record.IsActive {
		t.Fatal("new records start active")
	}
}

func TestCreateEducationValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	in := validEducationInput()
	in.Institution = ""
	if _, err := f.service.CreateEducation(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing institution: err = %v, want ErrInvalidInput", err)
	}

	in = validEducationInput()
	in.Type = "Bootcamp"
	if _, err := f.service.CreateEducation(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown type: err = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateEducationPreservesUploads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	record, err := f.service.CreateEducation(ctx, validEducationInput())
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	logo := application.UploadInput{FileName: "logo.png", ContentType: "image/png", Data: []byte("png")}
	if _, err := f.service.UploadEducationLogo(ctx, record.EducationID, logo); err != nil {
		t.Fatalf("UploadEducationLogo: %v", err)
	}
	cert := application.UploadInput{FileName: "cert.pdf", ContentType: "application/pdf", Data: []byte("pdf")}
	if _, err := f.service.UploadEducationCertificate(ctx, record.EducationID, cert); err != nil {
		t.Fatalf("UploadEducationCertificate: %v", err)
	}

	updated, err := f.service.UpdateEducation(ctx, record.EducationID, validEducationInput())
	if err != nil {
		t.Fatalf("UpdateEducation: %v", err)
	}
	if updated.LogoURL == "" || updated.CertificateURL == "" {
		t.Fatalf("upload urls must survive updates: %+v", updated)
	}
}

func TestEducationUploadMIMEChecks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	record, err := f.service.CreateEducation(ctx, validEducationInput())
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	// Logos accept images only; a pdf is out.
	pdf := application.UploadInput{FileName: "cert.pdf", ContentType: "application/pdf", Data: []byte("pdf")}
	if _, err := f.service.UploadEducationLogo(ctx, record.EducationID, pdf); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("pdf logo: err = %v, want ErrInvalidInput", err)
	}

	// Certificates accept documents; a gif is out.
	gif := application.UploadInput{FileName: "cert.gif", ContentType: "image/gif", Data: []byte("gif")}
	if _, err := f.service.UploadEducationCertificate(ctx, record.EducationID, gif); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("gif certificate: err = %v, want ErrInvalidInput", err)
	}
}

func TestEducationCacheLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	record, err := f.service.CreateEducation(ctx, validEducationInput())
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	if _, err := f.service.ListEducation(ctx); err != nil {
		t.Fatalf("ListEducation: %v", err)
	}
	if !f.cache.has(educationCacheKey) {
		t.Fatal("list must populate the cache")
	}

	if err := f.service.DeleteEducation(ctx, record.EducationID); err != nil {
		t.Fatalf("DeleteEducation: %v", err)
	}
	if f.cache.has(educationCacheKey) {
		t.Fatal("delete must invalidate the cache")
	}

	public, err := f.service.ListEducation(ctx)
	if err != nil {
		t.Fatalf("ListEducation: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("public list has %d records, want 0", len(public))
	}

	all, err := f.service.ListAllEducation(ctx)
	if err != nil {
		t.Fatalf("ListAllEducation: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("admin list has %d records, want 1", len(all))
	}
}
