package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

// AdminSummary is the redacted view of the admin account. It is the only
// account shape that ever leaves the service; the password hash has no
// path out.
type AdminSummary struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	Admin     AdminSummary `json:"admin"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ProjectInput struct {
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	ShortDescription string                `json:"short_description"`
	Category         string                `json:"category"`
	Technologies     []string              `json:"technologies"`
	LiveURL          string                `json:"live_url"`
	GithubURL        string                `json:"github_url"`
	Features         []string              `json:"features"`
	Status           string                `json:"status"`
	StartDate        *time.Time            `json:"start_date"`
	EndDate          *time.Time            `json:"end_date"`
	Priority         int                   `json:"priority"`
	IsFeatured       bool                  `json:"is_featured"`
	Tags             []string              `json:"tags"`
	Client           domain.ClientRef      `json:"client"`
	Images           []domain.ProjectImage `json:"images"`
}

// ProjectListQuery mirrors the public catalog query string.
type ProjectListQuery struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// Pagination echoes list-window bookkeeping back to the client.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type ProjectListResponse struct {
	Projects   []domain.Project `json:"projects"`
	Pagination Pagination       `json:"pagination"`
}

type SkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type EducationInput struct {
	Institution    string     `json:"institution"`
	Degree         string     `json:"degree"`
	Field          string     `json:"field"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	IsCompleted    *bool      `json:"is_completed"`
	Grade          string     `json:"grade"`
	Description    string     `json:"description"`
	Type           string     `json:"type"`
	Order          int        `json:"order"`
}

type PersonalDetailsInput struct {
	FullName      string               `json:"full_name"`
	Email         string               `json:"email"`
	BusinessEmail string               `json:"business_email"`
	PhoneNumbers  []string             `json:"phone_numbers"`
	SocialLinks   domain.SocialLinks   `json:"social_links"`
	PersonalInfo  domain.PersonalInfo  `json:"personal_info"`
	Bio           domain.Bio           `json:"bio"`
}

type ContactInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Phone     string `json:"phone"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type ContactListQuery struct {
	Read    *bool
	Replied *bool
	Page    int
	Limit   int
}

type ContactListResponse struct {
	Messages   []domain.ContactMessage `json:"messages"`
	Pagination Pagination              `json:"pagination"`
}

type ContactStatsResponse struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Replied int64 `json:"replied"`
	Recent  int64 `json:"recent"`
}

// UploadInput is a decoded multipart file handed to an upload use-case.
type UploadInput struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}
