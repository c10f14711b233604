package postgres

import (
	"gorm.io/gorm"

	"github.com/dushan456/portfolio-backend/internal/ports"
)

// Repositories bundles every Postgres-backed port implementation behind a
// single constructor so wiring stays in one place.
type Repositories struct {
	Admins          ports.AdminRepository
	Projects        ports.ProjectRepository
	Skills          ports.SkillRepository
	Education       ports.EducationRepository
	PersonalDetails ports.PersonalDetailsRepository
	Contact         ports.ContactRepository
	LoginAttempts   ports.LoginAttemptRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Admins:          &adminRepository{db: db},
		Projects:        &projectRepository{db: db},
		Skills:          &skillRepository{db: db},
		Education:       &educationRepository{db: db},
		PersonalDetails: &personalDetailsRepository{db: db},
		Contact:         &contactRepository{db: db},
		LoginAttempts:   &loginAttemptRepository{db: db},
	}
}
