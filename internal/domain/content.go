package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategories are the accepted project groupings for the public site.
var ProjectCategories = []string{
	"Web Development",
	"Mobile App",
	"Desktop App",
	"E-Commerce",
	"LMS",
	"Business Website",
	"Travel Website",
	"Restaurant Website",
	"Other",
}

// ProjectStatuses are the accepted lifecycle states of a project.
var ProjectStatuses = []string{"Completed", "In Progress", "Planning", "On Hold"}

// SkillCategories are the accepted skill groupings.
var SkillCategories = []string{
	"Frontend",
	"Backend",
	"Database",
	"Mobile",
	"Desktop",
	"Design",
	"Tools",
	"Other",
}

// EducationTypes are the accepted education record kinds.
var EducationTypes = []string{"Degree", "Certificate", "Course", "Training"}

// ProjectImage is a gallery entry attached to a project. Exactly one image
// per project should carry IsMain.
type ProjectImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"is_main"`
}

type ClientRef struct {
	Name    string `json:"name,omitempty"`
	Website string `json:"website,omitempty"`
}

type Project struct {
	ProjectID        uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description,omitempty"`
	Category         string         `json:"category"`
	Technologies     []string       `json:"technologies"`
	Images           []ProjectImage `json:"images"`
	LiveURL          string         `json:"live_url,omitempty"`
	GithubURL        string         `json:"github_url,omitempty"`
	Features         []string       `json:"features"`
	Status           string         `json:"status"`
	StartDate        *time.Time     `json:"start_date,omitempty"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	Priority         int            `json:"priority"`
	IsFeatured       bool           `json:"is_featured"`
	IsActive         bool           `json:"is_active"`
	Tags             []string       `json:"tags"`
	Client           ClientRef      `json:"client"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Skill struct {
	SkillID     uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Education struct {
	EducationID    uuid.UUID  `json:"id"`
	Institution    string     `json:"institution"`
	Degree         string     `json:"degree"`
	Field          string     `json:"field,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsCompleted    bool       `json:"is_completed"`
	Grade          string     `json:"grade,omitempty"`
	Description    string     `json:"description,omitempty"`
	LogoURL        string     `json:"logo_url,omitempty"`
	CertificateURL string     `json:"certificate_url,omitempty"`
	Type           string     `json:"type"`
	IsActive       bool       `json:"is_active"`
	Order          int        `json:"order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type PersonalInfo struct {
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Age         int        `json:"age,omitempty"`
	NICNumber   string     `json:"nic_number,omitempty"`
	CivilStatus string     `json:"civil_status,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
}

type Bio struct {
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
}

type ProfileImages struct {
	Main      string `json:"main,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// PersonalDetails is the single owner profile shown on the public site.
// The table holds at most one row; updates upsert it.
type PersonalDetails struct {
	DetailsID     uuid.UUID     `json:"id"`
	FullName      string        `json:"full_name"`
	Email         string        `json:"email"`
	BusinessEmail string        `json:"business_email,omitempty"`
	PhoneNumbers  []string      `json:"phone_numbers"`
	SocialLinks   SocialLinks   `json:"social_links"`
	PersonalInfo  PersonalInfo  `json:"personal_info"`
	Bio           Bio           `json:"bio"`
	ProfileImages ProfileImages `json:"profile_images"`
	CVURL         string        `json:"cv_url,omitempty"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type ContactMessage struct {
	MessageID    uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	Phone        string     `json:"phone,omitempty"`
	IsRead       bool       `json:"is_read"`
	IsReplied    bool       `json:"is_replied"`
	ReplyMessage string     `json:"reply_message,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	IPAddress    string     `json:"-"`
	UserAgent    string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoginAttempt records authentication outcomes for audit.
// The lockout decision itself reads only the admin row; this trail exists
// so repeated failures can be inspected after the fact.
type LoginAttempt struct {
	ID        int64      `json:"id"`
	AdminID   *uuid.UUID `json:"admin_id,omitempty"`
	AttemptAt time.Time  `json:"attempt_at"`
	Email     string     `json:"email"`
	IPAddress string     `json:"ip_address,omitempty"`
	UserAgent string     `json:"user_agent,omitempty"`
	Status    string     `json:"status"`
	Reason    string     `json:"reason,omitempty"`
}
