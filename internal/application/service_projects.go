package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

func projectFromInput(in ProjectInput) domain.Project {
	status := in.Status
	if status == "" {
		status = "Completed"
	}
	return domain.Project{
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Category:         in.Category,
		Technologies:     in.Technologies,
		Images:           in.Images,
		LiveURL:          in.LiveURL,
		GithubURL:        in.GithubURL,
		Features:         in.Features,
		Status:           status,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Priority:         in.Priority,
		IsFeatured:       in.IsFeatured,
		IsActive:         true,
		Tags:             in.Tags,
		Client:           in.Client,
	}
}

// ListProjects serves the public catalog: active rows only, newest and
// highest-priority first, with category/featured filters and pagination.
func (s *Service) ListProjects(ctx context.Context, q ProjectListQuery) (ProjectListResponse, error) {
	page, limit := pageWindow(q.Page, q.Limit, 20)
	projects, total, err := s.projects.List(ctx, ports.ProjectFilter{
		Category:   q.Category,
		Featured:   q.Featured,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return ProjectListResponse{}, err
	}
	return ProjectListResponse{
		Projects:   projects,
		Pagination: Pagination{Current: page, Pages: totalPages(total, limit), Total: total},
	}, nil
}

// ListAllProjects is the admin view and includes inactive rows.
func (s *Service) ListAllProjects(ctx context.Context, q ProjectListQuery) (ProjectListResponse, error) {
	page, limit := pageWindow(q.Page, q.Limit, 50)
	projects, total, err := s.projects.List(ctx, ports.ProjectFilter{
		Category:   q.Category,
		Featured:   q.Featured,
		ActiveOnly: false,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return ProjectListResponse{}, err
	}
	return ProjectListResponse{
		Projects:   projects,
		Pagination: Pagination{Current: page, Pages: totalPages(total, limit), Total: total},
	}, nil
}

// GetProject returns a single public project. Inactive rows are hidden
// behind the same not-found as missing ones.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (domain.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !project.IsActive {
		return domain.Project{}, domain.ErrNotFound
	}
	return project, nil
}

func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (domain.Project, error) {
	project := projectFromInput(in)
	if err := domain.ValidateProject(project); err != nil {
		return domain.Project{}, err
	}
	now := s.nowFn()
	project.CreatedAt = now
	project.UpdatedAt = now
	return s.projects.Create(ctx, project)
}

func (s *Service) UpdateProject(ctx context.Context, projectID uuid.UUID, in ProjectInput) (domain.Project, error) {
	existing, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}

	project := projectFromInput(in)
	project.ProjectID = existing.ProjectID
	project.IsActive = existing.IsActive
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = s.nowFn()
	if len(project.Images) == 0 {
		project.Images = existing.Images
	}
	if err := domain.ValidateProject(project); err != nil {
		return domain.Project{}, err
	}
	return s.projects.Update(ctx, project)
}

// DeleteProject soft-deletes: the row stays for the admin view and can be
// reactivated by an update.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	return s.projects.SetActive(ctx, projectID, false, s.nowFn())
}

// UploadProjectImages stores the files and appends them to the gallery.
// The first image of a previously empty gallery becomes the main image.
func (s *Service) UploadProjectImages(ctx context.Context, projectID uuid.UUID, uploads []UploadInput) ([]domain.ProjectImage, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no image files provided", domain.ErrInvalidInput)
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	images := make([]domain.ProjectImage, 0, len(uploads))
	for i, upload := range uploads {
		if err := s.checkUpload(upload, imageMIMEs); err != nil {
			return nil, err
		}
		url, err := s.files.Save(ctx, "images", upload.FileName, upload.Data)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		images = append(images, domain.ProjectImage{
			URL:    url,
			Alt:    fmt.Sprintf("%s - Image %d", project.Title, i+1),
			IsMain: i == 0 && len(project.Images) == 0,
		})
	}

	if _, err := s.projects.AppendImages(ctx, projectID, images, s.nowFn()); err != nil {
		return nil, err
	}
	return images, nil
}
