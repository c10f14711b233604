package postgres

import (
	"time"

	"github.com/google/uuid"
)

type adminModel struct {
	AdminID        uuid.UUID  `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string     `gorm:"column:email"`
	PasswordHash   string     `gorm:"column:password_hash"`
	Name           string     `gorm:"column:name"`
	Role           string     `gorm:"column:role"`
	IsActive       bool       `gorm:"column:is_active"`
	LastLoginAt    *time.Time `gorm:"column:last_login_at"`
	FailedAttempts int        `gorm:"column:failed_login_attempts"`
	LockedUntil    *time.Time `gorm:"column:locked_until"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (adminModel) TableName() string { return "admins" }

// Structured project fields (gallery, tech list, features, tags, client)
// live in jsonb columns; Postgres only ever filters on the scalar ones.
type projectModel struct {
	ProjectID        uuid.UUID  `gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title            string     `gorm:"column:title"`
	Description      string     `gorm:"column:description"`
	ShortDescription string     `gorm:"column:short_description"`
	Category         string     `gorm:"column:category"`
	Technologies     string     `gorm:"column:technologies;type:jsonb"`
	Images           string     `gorm:"column:images;type:jsonb"`
	LiveURL          string     `gorm:"column:live_url"`
	GithubURL        string     `gorm:"column:github_url"`
	Features         string     `gorm:"column:features;type:jsonb"`
	Status           string     `gorm:"column:status"`
	StartDate        *time.Time `gorm:"column:start_date"`
	EndDate          *time.Time `gorm:"column:end_date"`
	Priority         int        `gorm:"column:priority"`
	IsFeatured       bool       `gorm:"column:is_featured"`
	IsActive         bool       `gorm:"column:is_active"`
	Tags             string     `gorm:"column:tags;type:jsonb"`
	Client           string     `gorm:"column:client;type:jsonb"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

type skillModel struct {
	SkillID     uuid.UUID `gorm:"column:skill_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category"`
	Proficiency int       `gorm:"column:proficiency"`
	Icon        string    `gorm:"column:icon"`
	Description string    `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	SortOrder   int       `gorm:"column:sort_order"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (skillModel) TableName() string { return "skills" }

type educationModel struct {
	EducationID    uuid.UUID  `gorm:"column:education_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Institution    string     `gorm:"column:institution"`
	Degree         string     `gorm:"column:degree"`
	Field          string     `gorm:"column:field_of_study"`
	StartDate      *time.Time `gorm:"column:start_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
	IsCompleted    bool       `gorm:"column:is_completed"`
	Grade          string     `gorm:"column:grade"`
	Description    string     `gorm:"column:description"`
	LogoURL        string     `gorm:"column:logo_url"`
	CertificateURL string     `gorm:"column:certificate_url"`
	Type           string     `gorm:"column:education_type"`
	IsActive       bool       `gorm:"column:is_active"`
	SortOrder      int        `gorm:"column:sort_order"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (educationModel) TableName() string { return "education" }

type personalDetailsModel struct {
	DetailsID     uuid.UUID `gorm:"column:details_id;type:uuid;default:gen_random_uuid();primaryKey"`
	FullName      string    `gorm:"column:full_name"`
	Email         string    `gorm:"column:email"`
	BusinessEmail string    `gorm:"column:business_email"`
	PhoneNumbers  string    `gorm:"column:phone_numbers;type:jsonb"`
	SocialLinks   string    `gorm:"column:social_links;type:jsonb"`
	PersonalInfo  string    `gorm:"column:personal_info;type:jsonb"`
	Bio           string    `gorm:"column:bio;type:jsonb"`
	ProfileImages string    `gorm:"column:profile_images;type:jsonb"`
	CVURL         string    `gorm:"column:cv_url"`
	IsActive      bool      `gorm:"column:is_active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (personalDetailsModel) TableName() string { return "personal_details" }

type contactMessageModel struct {
	MessageID    uuid.UUID  `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string     `gorm:"column:name"`
	Email        string     `gorm:"column:email"`
	Subject      string     `gorm:"column:subject"`
	Message      string     `gorm:"column:message"`
	Phone        string     `gorm:"column:phone"`
	IsRead       bool       `gorm:"column:is_read"`
	IsReplied    bool       `gorm:"column:is_replied"`
	ReplyMessage string     `gorm:"column:reply_message"`
	RepliedAt    *time.Time `gorm:"column:replied_at"`
	IPAddress    *string    `gorm:"column:ip_address"`
	UserAgent    string     `gorm:"column:user_agent"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

type loginAttemptModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	AdminID   *uuid.UUID `gorm:"column:admin_id"`
	AttemptAt time.Time  `gorm:"column:attempt_at"`
	Email     string     `gorm:"column:email"`
	IPAddress *string    `gorm:"column:ip_address"`
	UserAgent string     `gorm:"column:user_agent"`
	Status    string     `gorm:"column:status"`
	Reason    string     `gorm:"column:failure_reason"`
}

func (loginAttemptModel) TableName() string { return "login_attempts" }
