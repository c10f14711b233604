package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

const cacheKeySkills = "portfolio:skills:active"

func skillFromInput(in SkillInput) domain.Skill {
	return domain.Skill{
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
		Icon:        in.Icon,
		Description: in.Description,
		IsActive:    true,
		Order:       in.Order,
	}
}

// ListSkills returns active skills ordered for display. The unfiltered
// list is served from cache and repopulated on miss.
func (s *Service) ListSkills(ctx context.Context, category string) ([]domain.Skill, error) {
	if category == "" {
		if raw, found, err := s.cache.Get(ctx, cacheKeySkills); err == nil && found {
			var cached []domain.Skill
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
		}
	}

	skills, err := s.skills.List(ctx, category, true)
	if err != nil {
		return nil, err
	}
	if category == "" {
		if raw, err := json.Marshal(skills); err == nil {
			_ = s.cache.Set(ctx, cacheKeySkills, string(raw), s.cfg.CacheTTL)
		}
	}
	return skills, nil
}

// ListSkillCategories returns the categories that currently have active
// skills, preserving the canonical category order.
func (s *Service) ListSkillCategories(ctx context.Context) ([]string, error) {
	skills, err := s.ListSkills(ctx, "")
	if err != nil {
		return nil, err
	}
	present := map[string]bool{}
	for _, skill := range skills {
		present[skill.Category] = true
	}
	categories := make([]string, 0, len(present))
	for _, c := range domain.SkillCategories {
		if present[c] {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (s *Service) ListAllSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx, "", false)
}

func (s *Service) CreateSkill(ctx context.Context, in SkillInput) (domain.Skill, error) {
	skill := skillFromInput(in)
	if err := domain.ValidateSkill(skill); err != nil {
		return domain.Skill{}, err
	}
	now := s.nowFn()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	created, err := s.skills.Create(ctx, skill)
	if err != nil {
		return domain.Skill{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeySkills)
	return created, nil
}

func (s *Service) UpdateSkill(ctx context.Context, skillID uuid.UUID, in SkillInput) (domain.Skill, error) {
	existing, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		return domain.Skill{}, err
	}

	skill := skillFromInput(in)
	skill.SkillID = existing.SkillID
	skill.IsActive = existing.IsActive
	skill.CreatedAt = existing.CreatedAt
	skill.UpdatedAt = s.nowFn()
	if err := domain.ValidateSkill(skill); err != nil {
		return domain.Skill{}, err
	}

	updated, err := s.skills.Update(ctx, skill)
	if err != nil {
		return domain.Skill{}, err
	}
	_ = s.cache.Delete(ctx, cacheKeySkills)
	return updated, nil
}

func (s *Service) DeleteSkill(ctx context.Context, skillID uuid.UUID) error {
	if err := s.skills.SetActive(ctx, skillID, false, s.nowFn()); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeySkills)
	return nil
}

// ReorderSkills applies a full ordered id list; positions follow slice order.
func (s *Service) ReorderSkills(ctx context.Context, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: ordered skill ids are required", domain.ErrInvalidInput)
	}
	if err := s.skills.Reorder(ctx, orderedIDs, s.nowFn()); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeySkills)
	return nil
}
