package postgres

import (
	"encoding/json"
	"strings"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

func toDomainAdmin(row adminModel) domain.Admin {
	return domain.Admin{
		AdminID:        row.AdminID,
		Email:          row.Email,
		PasswordHash:   row.PasswordHash,
		Name:           row.Name,
		Role:           row.Role,
		IsActive:       row.IsActive,
		LastLoginAt:    row.LastLoginAt,
		FailedAttempts: row.FailedAttempts,
		LockedUntil:    row.LockedUntil,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toDomainProject(row projectModel) domain.Project {
	p := domain.Project{
		ProjectID:        row.ProjectID,
		Title:            row.Title,
		Description:      row.Description,
		ShortDescription: row.ShortDescription,
		Category:         row.Category,
		LiveURL:          row.LiveURL,
		GithubURL:        row.GithubURL,
		Status:           row.Status,
		StartDate:        row.StartDate,
		EndDate:          row.EndDate,
		Priority:         row.Priority,
		IsFeatured:       row.IsFeatured,
		IsActive:         row.IsActive,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	decodeJSONColumn(row.Technologies, &p.Technologies)
	decodeJSONColumn(row.Images, &p.Images)
	decodeJSONColumn(row.Features, &p.Features)
	decodeJSONColumn(row.Tags, &p.Tags)
	decodeJSONColumn(row.Client, &p.Client)
	return p
}

func projectToModel(p domain.Project) projectModel {
	return projectModel{
		ProjectID:        p.ProjectID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Category:         p.Category,
		Technologies:     encodeJSONColumn(p.Technologies),
		Images:           encodeJSONColumn(p.Images),
		LiveURL:          p.LiveURL,
		GithubURL:        p.GithubURL,
		Features:         encodeJSONColumn(p.Features),
		Status:           p.Status,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Priority:         p.Priority,
		IsFeatured:       p.IsFeatured,
		IsActive:         p.IsActive,
		Tags:             encodeJSONColumn(p.Tags),
		Client:           encodeJSONColumn(p.Client),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toDomainSkill(row skillModel) domain.Skill {
	return domain.Skill{
		SkillID:     row.SkillID,
		Name:        row.Name,
		Category:    row.Category,
		Proficiency: row.Proficiency,
		Icon:        row.Icon,
		Description: row.Description,
		IsActive:    row.IsActive,
		Order:       row.SortOrder,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func skillToModel(s domain.Skill) skillModel {
	return skillModel{
		SkillID:     s.SkillID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Icon:        s.Icon,
		Description: s.Description,
		IsActive:    s.IsActive,
		SortOrder:   s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDomainEducation(row educationModel) domain.Education {
	return domain.Education{
		EducationID:    row.EducationID,
		Institution:    row.Institution,
		Degree:         row.Degree,
		Field:          row.Field,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		IsCompleted:    row.IsCompleted,
		Grade:          row.Grade,
		Description:    row.Description,
		LogoURL:        row.LogoURL,
		CertificateURL: row.CertificateURL,
		Type:           row.Type,
		IsActive:       row.IsActive,
		Order:          row.SortOrder,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func educationToModel(e domain.Education) educationModel {
	return educationModel{
		EducationID:    e.EducationID,
		Institution:    e.Institution,
		Degree:         e.Degree,
		Field:          e.Field,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsCompleted:    e.IsCompleted,
		Grade:          e.Grade,
		Description:    e.Description,
		LogoURL:        e.LogoURL,
		CertificateURL: e.CertificateURL,
		Type:           e.Type,
		IsActive:       e.IsActive,
		SortOrder:      e.Order,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toDomainPersonalDetails(row personalDetailsModel) domain.PersonalDetails {
	d := domain.PersonalDetails{
		DetailsID:     row.DetailsID,
		FullName:      row.FullName,
		Email:         row.Email,
		BusinessEmail: row.BusinessEmail,
		CVURL:         row.CVURL,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	decodeJSONColumn(row.PhoneNumbers, &d.PhoneNumbers)
	decodeJSONColumn(row.SocialLinks, &d.SocialLinks)
	decodeJSONColumn(row.PersonalInfo, &d.PersonalInfo)
	decodeJSONColumn(row.Bio, &d.Bio)
	decodeJSONColumn(row.ProfileImages, &d.ProfileImages)
	return d
}

func personalDetailsToModel(d domain.PersonalDetails) personalDetailsModel {
	return personalDetailsModel{
		DetailsID:     d.DetailsID,
		FullName:      d.FullName,
		Email:         d.Email,
		BusinessEmail: d.BusinessEmail,
		PhoneNumbers:  encodeJSONColumn(d.PhoneNumbers),
		SocialLinks:   encodeJSONColumn(d.SocialLinks),
		PersonalInfo:  encodeJSONColumn(d.PersonalInfo),
		Bio:           encodeJSONColumn(d.Bio),
		ProfileImages: encodeJSONColumn(d.ProfileImages),
		CVURL:         d.CVURL,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDomainContactMessage(row contactMessageModel) domain.ContactMessage {
	ip := ""
	if row.IPAddress != nil {
		ip = *row.IPAddress
	}
	return domain.ContactMessage{
		MessageID:    row.MessageID,
		Name:         row.Name,
		Email:        row.Email,
		Subject:      row.Subject,
		Message:      row.Message,
		Phone:        row.Phone,
		IsRead:       row.IsRead,
		IsReplied:    row.IsReplied,
		ReplyMessage: row.ReplyMessage,
		RepliedAt:    row.RepliedAt,
		IPAddress:    ip,
		UserAgent:    row.UserAgent,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toDomainLoginAttempt(row loginAttemptModel) domain.LoginAttempt {
	ip := ""
	if row.IPAddress != nil {
		ip = *row.IPAddress
	}
	return domain.LoginAttempt{
		ID:        row.ID,
		AdminID:   row.AdminID,
		AttemptAt: row.AttemptAt,
		Email:     row.Email,
		IPAddress: ip,
		UserAgent: row.UserAgent,
		Status:    row.Status,
		Reason:    row.Reason,
	}
}

// encodeJSONColumn renders a value for a jsonb column. Marshal failures
// cannot happen for the plain structs and slices used here, so the failure
// path degrades to an empty object rather than plumbing an error through
// every mapper.
func encodeJSONColumn(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func decodeJSONColumn(raw string, out any) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), out)
}

func nullableString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
