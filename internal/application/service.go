package application

import (
	"time"

	"github.com/dushan456/portfolio-backend/internal/ports"
)

// Config carries the tunables the use-cases depend on. It is resolved once
// at bootstrap and injected, never read from the environment at call time.
type Config struct {
	TokenTTL             time.Duration
	FailedLoginThreshold int
	LockoutDuration      time.Duration
	CacheTTL             time.Duration
	MaxUploadBytes       int
	ContactRecentWindow  time.Duration
}

// Service implements every use-case of the backend: the auth session flows
// against the credential store, and the portfolio content CRUD around them.
type Service struct {
	cfg           Config
	admins        ports.AdminRepository
	projects      ports.ProjectRepository
	skills        ports.SkillRepository
	education     ports.EducationRepository
	personal      ports.PersonalDetailsRepository
	contacts      ports.ContactRepository
	loginAttempts ports.LoginAttemptRepository
	cache         ports.Cache
	files         ports.FileStore
	hasher        ports.PasswordHasher
	tokenSigner   ports.TokenSigner
	nowFn         func() time.Time
}

type Dependencies struct {
	Config        Config
	Admins        ports.AdminRepository
	Projects      ports.ProjectRepository
	Skills        ports.SkillRepository
	Education     ports.EducationRepository
	Personal      ports.PersonalDetailsRepository
	Contacts      ports.ContactRepository
	LoginAttempts ports.LoginAttemptRepository
	Cache         ports.Cache
	Files         ports.FileStore
	Hasher        ports.PasswordHasher
	TokenSigner   ports.TokenSigner

	// NowFn overrides the clock; tests use it to step over lockout windows.
	NowFn func() time.Time
}

func NewService(deps Dependencies) *Service {
	nowFn := deps.NowFn
	if nowFn == nil {
		nowFn = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		cfg:           deps.Config,
		admins:        deps.Admins,
		projects:      deps.Projects,
		skills:        deps.Skills,
		education:     deps.Education,
		personal:      deps.Personal,
		contacts:      deps.Contacts,
		loginAttempts: deps.LoginAttempts,
		cache:         deps.Cache,
		files:         deps.Files,
		hasher:        deps.Hasher,
		tokenSigner:   deps.TokenSigner,
		nowFn:         nowFn,
	}
}
