package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
)

// CreateAdminParams captures admin provisioning inputs. The password is
// already hashed by the caller; the repository never sees plaintext.
type CreateAdminParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}

// AdminProfilePatch carries the only two profile fields an admin may edit.
type AdminProfilePatch struct {
	Name  *string
	Email *string
}

// LoginStateUpdate is the mutable slice of the admin row owned by the login
// flow. Persisting it as one unit keeps failure counting and lock timestamps
// from drifting apart.
type LoginStateUpdate struct {
	FailedAttempts int
	LockedUntil    *time.Time
	LastLoginAt    *time.Time
}

// AdminRepository is the credential store. No other component reads or
// writes admin rows; hashing happens above it, lockout math happens above
// it, and it only persists the results.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	GetByID(ctx context.Context, adminID uuid.UUID) (domain.Admin, error)
	Create(ctx context.Context, params CreateAdminParams) (domain.Admin, error)
	UpdateLoginState(ctx context.Context, adminID uuid.UUID, state LoginStateUpdate, now time.Time) error
	UpdatePasswordHash(ctx context.Context, adminID uuid.UUID, passwordHash string, now time.Time) error
	UpdateProfile(ctx context.Context, adminID uuid.UUID, patch AdminProfilePatch, now time.Time) (domain.Admin, error)
}

// ProjectFilter narrows project listings. Nil members mean "no constraint".
type ProjectFilter struct {
	Category    string
	Featured    *bool
	ActiveOnly  bool
	Page        int
	Limit       int
}

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, int64, error)
	Update(ctx context.Context, project domain.Project) (domain.Project, error)
	SetActive(ctx context.Context, projectID uuid.UUID, active bool, now time.Time) error
	AppendImages(ctx context.Context, projectID uuid.UUID, images []domain.ProjectImage, now time.Time) (domain.Project, error)
}

type SkillRepository interface {
	Create(ctx context.Context, skill domain.Skill) (domain.Skill, error)
	GetByID(ctx context.Context, skillID uuid.UUID) (domain.Skill, error)
	List(ctx context.Context, category string, activeOnly bool) ([]domain.Skill, error)
	Update(ctx context.Context, skill domain.Skill) (domain.Skill, error)
	SetActive(ctx context.Context, skillID uuid.UUID, active bool, now time.Time) error
	Reorder(ctx context.Context, orderedIDs []uuid.UUID, now time.Time) error
}

type EducationRepository interface {
	Create(ctx context.Context, record domain.Education) (domain.Education, error)
	GetByID(ctx context.Context, educationID uuid.UUID) (domain.Education, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Education, error)
	Update(ctx context.Context, record domain.Education) (domain.Education, error)
	SetActive(ctx context.Context, educationID uuid.UUID, active bool, now time.Time) error
	Reorder(ctx context.Context, orderedIDs []uuid.UUID, now time.Time) error
}

// PersonalDetailsRepository manages the single owner-profile row.
type PersonalDetailsRepository interface {
	Get(ctx context.Context) (domain.PersonalDetails, error)
	Upsert(ctx context.Context, details domain.PersonalDetails) (domain.PersonalDetails, error)
}

// ContactFilter narrows the admin message inbox.
type ContactFilter struct {
	Read    *bool
	Replied *bool
	Page    int
	Limit   int
}

// ContactStats summarizes the inbox for the admin dashboard.
type ContactStats struct {
	Total   int64
	Unread  int64
	Replied int64
	Recent  int64
}

type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error)
	GetByID(ctx context.Context, messageID uuid.UUID) (domain.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.ContactMessage, int64, error)
	MarkRead(ctx context.Context, messageID uuid.UUID, read bool, now time.Time) error
	Reply(ctx context.Context, messageID uuid.UUID, reply string, now time.Time) error
	Delete(ctx context.Context, messageID uuid.UUID) error
	Stats(ctx context.Context, recentSince time.Time) (ContactStats, error)
}

// LoginAttemptRepository stores login outcomes for after-the-fact audit.
type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt domain.LoginAttempt) error
	ListRecent(ctx context.Context, limit int) ([]domain.LoginAttempt, error)
}
