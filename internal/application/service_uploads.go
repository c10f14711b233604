package application

import (
	"fmt"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

var imageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var documentMIMEs = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/jpeg": {},
	"image/png":  {},
}

func (s *Service) checkUpload(upload UploadInput, allowed map[string]struct{}) error {
	if len(upload.Data) == 0 {
		return fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if len(upload.Data) > s.cfg.MaxUploadBytes {
		return fmt.Errorf("%w: file exceeds %d byte limit", domain.ErrInvalidInput, s.cfg.MaxUploadBytes)
	}
	if _, ok := allowed[upload.ContentType]; !ok {
		return fmt.Errorf("%w: file type %q is not allowed", domain.ErrInvalidInput, upload.ContentType)
	}
	return nil
}
