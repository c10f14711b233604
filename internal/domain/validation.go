package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an email address and rejects
// syntactically invalid input.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return normalized, nil
}

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// ValidateProject checks the fields the public catalog depends on.
func ValidateProject(p Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: project title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: project description is required", ErrInvalidInput)
	}
	if len(p.ShortDescription) > 200 {
		return fmt.Errorf("%w: short description must be <= 200 chars", ErrInvalidInput)
	}
	if !oneOf(p.Category, ProjectCategories) {
		return fmt.Errorf("%w: valid category is required", ErrInvalidInput)
	}
	if len(p.Technologies) == 0 {
		return fmt.Errorf("%w: at least one technology is required", ErrInvalidInput)
	}
	if p.Status != "" && !oneOf(p.Status, ProjectStatuses) {
		return fmt.Errorf("%w: invalid project status", ErrInvalidInput)
	}
	if p.Priority < 0 || p.Priority > 10 {
		return fmt.Errorf("%w: priority must be between 0 and 10", ErrInvalidInput)
	}
	return nil
}

// ValidateSkill checks skill fields before persistence.
func ValidateSkill(s Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: skill name is required", ErrInvalidInput)
	}
	if !oneOf(s.Category, SkillCategories) {
		return fmt.Errorf("%w: valid skill category is required", ErrInvalidInput)
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return fmt.Errorf("%w: proficiency must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

// ValidateEducation checks education fields before persistence.
func ValidateEducation(e Education) error {
	if strings.TrimSpace(e.Institution) == "" {
		return fmt.Errorf("%w: institution is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Degree) == "" {
		return fmt.Errorf("%w: degree is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Field) == "" {
		return fmt.Errorf("%w: field of study is required", ErrInvalidInput)
	}
	if e.Type != "" && !oneOf(e.Type, EducationTypes) {
		return fmt.Errorf("%w: invalid education type", ErrInvalidInput)
	}
	return nil
}

// ValidatePersonalDetails checks the owner profile before upsert.
func ValidatePersonalDetails(d PersonalDetails) error {
	if strings.TrimSpace(d.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(d.PhoneNumbers) == 0 {
		return fmt.Errorf("%w: at least one phone number is required", ErrInvalidInput)
	}
	return nil
}

// ValidateContactMessage checks an inbound visitor message.
func ValidateContactMessage(m ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return nil
}
