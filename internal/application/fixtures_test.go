package application_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/application"
	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

// testClock is the injectable time source; tests advance it to step over
// lockout windows and token lifetimes.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	service  *application.Service
	clock    *testClock
	admins   *fakeAdmins
	projects *fakeProjects
	skills   *fakeSkills
	educ     *fakeEducation
	personal *fakePersonal
	contacts *fakeContacts
	attempts *fakeLoginAttempts
	cache    *fakeCache
	files    *fakeFiles
	signer   *fakeSigner
}

func defaultTestConfig() application.Config {
	return application.Config{
		TokenTTL:             7 * 24 * time.Hour,
		FailedLoginThreshold: 5,
		LockoutDuration:      30 * time.Minute,
		CacheTTL:             5 * time.Minute,
		MaxUploadBytes:       1 << 20,
		ContactRecentWindow:  7 * 24 * time.Hour,
	}
}

func newFixture() *fixture {
	return newFixtureWithConfig(defaultTestConfig())
}

func newFixtureWithConfig(cfg application.Config) *fixture {
	clock := newTestClock()
	admins := &fakeAdmins{byID: map[uuid.UUID]domain.Admin{}}
	projects := &fakeProjects{byID: map[uuid.UUID]domain.Project{}}
	skills := &fakeSkills{byID: map[uuid.UUID]domain.Skill{}}
	educ := &fakeEducation{byID: map[uuid.UUID]domain.Education{}}
	personal := &fakePersonal{}
	contacts := &fakeContacts{byID: map[uuid.UUID]domain.ContactMessage{}}
	attempts := &fakeLoginAttempts{}
	cache := &fakeCache{items: map[string]string{}}
	files := &fakeFiles{}
	signer := &fakeSigner{tokens: map[string]ports.AuthClaims{}, now: clock.Now}

	svc := application.NewService(application.Dependencies{
		Config:        cfg,
		Admins:        admins,
		Projects:      projects,
		Skills:        skills,
		Education:     educ,
		Personal:      personal,
		Contacts:      contacts,
		LoginAttempts: attempts,
		Cache:         cache,
		Files:         files,
		Hasher:        &fakeHasher{},
		TokenSigner:   signer,
		NowFn:         clock.Now,
	})

	return &fixture{
		service:  svc,
		clock:    clock,
		admins:   admins,
		projects: projects,
		skills:   skills,
		educ:     educ,
		personal: personal,
		contacts: contacts,
		attempts: attempts,
		cache:    cache,
		files:    files,
		signer:   signer,
	}
}

// seedAdmin inserts an active account directly into the fake store.
func (f *fixture) seedAdmin(email, password string) domain.Admin {
	admin := domain.Admin{
		AdminID:      uuid.New(),
		Email:        email,
		PasswordHash: "hashed:" + password,
		Name:         "Test Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    f.clock.Now(),
		UpdatedAt:    f.clock.Now(),
	}
	f.admins.put(admin)
	return admin
}

type fakeAdmins struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Admin
}

func (s *fakeAdmins) put(admin domain.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[admin.AdminID] = admin
}

func (s *fakeAdmins) get(adminID uuid.UUID) domain.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[adminID]
}

func (s *fakeAdmins) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.byID {
		if admin.Email == email {
			return admin, nil
		}
	}
	return domain.Admin{}, domain.ErrNotFound
}

func (s *fakeAdmins) GetByID(_ context.Context, adminID uuid.UUID) (domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.byID[adminID]
	if !ok {
		return domain.Admin{}, domain.ErrNotFound
	}
	return admin, nil
}

func (s *fakeAdmins) Create(_ context.Context, params ports.CreateAdminParams) (domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.byID {
		if admin.Email == params.Email {
			return domain.Admin{}, domain.ErrDuplicateEmail
		}
	}
	admin := domain.Admin{
		AdminID:      uuid.New(),
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Name:         params.Name,
		Role:         params.Role,
		IsActive:     true,
		CreatedAt:    params.CreatedAt,
		UpdatedAt:    params.CreatedAt,
	}
	s.byID[admin.AdminID] = admin
	return admin, nil
}

func (s *fakeAdmins) UpdateLoginState(_ context.Context, adminID uuid.UUID, state ports.LoginStateUpdate, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.byID[adminID]
	if !ok {
		return domain.ErrNotFound
	}
	admin.FailedAttempts = state.FailedAttempts
	admin.LockedUntil = state.LockedUntil
	if state.LastLoginAt != nil {
		admin.LastLoginAt = state.LastLoginAt
	}
	admin.UpdatedAt = now
	s.byID[adminID] = admin
	return nil
}

func (s *fakeAdmins) UpdatePasswordHash(_ context.Context, adminID uuid.UUID, passwordHash string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.byID[adminID]
	if !ok {
		return domain.ErrNotFound
	}
	admin.PasswordHash = passwordHash
	admin.UpdatedAt = now
	s.byID[adminID] = admin
	return nil
}

func (s *fakeAdmins) UpdateProfile(_ context.Context, adminID uuid.UUID, patch ports.AdminProfilePatch, now time.Time) (domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.byID[adminID]
	if !ok {
		return domain.Admin{}, domain.ErrNotFound
	}
	if patch.Email != nil {
		for id, other := range s.byID {
			if id != adminID && other.Email == *patch.Email {
				return domain.Admin{}, domain.ErrDuplicateEmail
			}
		}
		admin.Email = *patch.Email
	}
	if patch.Name != nil {
		admin.Name = *patch.Name
	}
	admin.UpdatedAt = now
	s.byID[adminID] = admin
	return admin, nil
}

type fakeProjects struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Project
}

func (s *fakeProjects) Create(_ context.Context, project domain.Project) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project.ProjectID = uuid.New()
	s.byID[project.ProjectID] = project
	return project, nil
}

func (s *fakeProjects) GetByID(_ context.Context, projectID uuid.UUID) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.byID[projectID]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	return project, nil
}

func (s *fakeProjects) List(_ context.Context, filter ports.ProjectFilter) ([]domain.Project, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.Project, 0, len(s.byID))
	for _, project := range s.byID {
		if filter.ActiveOnly && !project.IsActive {
			continue
		}
		if filter.Category != "" && project.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && project.IsFeatured != *filter.Featured {
			continue
		}
		matched = append(matched, project)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if filter.Limit > 0 {
		start := (filter.Page - 1) * filter.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (s *fakeProjects) Update(_ context.Context, project domain.Project) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[project.ProjectID]; !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	s.byID[project.ProjectID] = project
	return project, nil
}

func (s *fakeProjects) SetActive(_ context.Context, projectID uuid.UUID, active bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.byID[projectID]
	if !ok {
		return domain.ErrNotFound
	}
	project.IsActive = active
	project.UpdatedAt = now
	s.byID[projectID] = project
	return nil
}

func (s *fakeProjects) AppendImages(_ context.Context, projectID uuid.UUID, images []domain.ProjectImage, now time.Time) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.byID[projectID]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	project.Images = append(project.Images, images...)
	project.UpdatedAt = now
	s.byID[projectID] = project
	return project, nil
}

type fakeSkills struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Skill
}

func (s *fakeSkills) put(skill domain.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[skill.SkillID] = skill
}

// nameTaken mirrors the unique index on skill names; comparison is
// case-insensitive like the database's LOWER(name) index.
func (s *fakeSkills) nameTaken(name string, exclude uuid.UUID) bool {
	for id, other := range s.byID {
		if id != exclude && strings.EqualFold(other.Name, name) {
			return true
		}
	}
	return false
}

func (s *fakeSkills) Create(_ context.Context, skill domain.Skill) (domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(skill.Name, uuid.Nil) {
		return domain.Skill{}, fmt.Errorf("%w: skill name already exists", domain.ErrConflict)
	}
	skill.SkillID = uuid.New()
	s.byID[skill.SkillID] = skill
	return skill, nil
}

func (s *fakeSkills) GetByID(_ context.Context, skillID uuid.UUID) (domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill, ok := s.byID[skillID]
	if !ok {
		return domain.Skill{}, domain.ErrNotFound
	}
	return skill, nil
}

func (s *fakeSkills) List(_ context.Context, category string, activeOnly bool) ([]domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.Skill, 0, len(s.byID))
	for _, skill := range s.byID {
		if activeOnly && !skill.IsActive {
			continue
		}
		if category != "" && skill.Category != category {
			continue
		}
		matched = append(matched, skill)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Order != matched[j].Order {
			return matched[i].Order < matched[j].Order
		}
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

func (s *fakeSkills) Update(_ context.Context, skill domain.Skill) (domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[skill.SkillID]; !ok {
		return domain.Skill{}, domain.ErrNotFound
	}
	if s.nameTaken(skill.Name, skill.SkillID) {
		return domain.Skill{}, fmt.Errorf("%w: skill name already exists", domain.ErrConflict)
	}
	s.byID[skill.SkillID] = skill
	return skill, nil
}

func (s *fakeSkills) SetActive(_ context.Context, skillID uuid.UUID, active bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill, ok := s.byID[skillID]
	if !ok {
		return domain.ErrNotFound
	}
	skill.IsActive = active
	skill.UpdatedAt = now
	s.byID[skillID] = skill
	return nil
}

func (s *fakeSkills) Reorder(_ context.Context, orderedIDs []uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for position, id := range orderedIDs {
		skill, ok := s.byID[id]
		if !ok {
			return domain.ErrNotFound
		}
		skill.Order = position
		skill.UpdatedAt = now
		s.byID[id] = skill
	}
	return nil
}

type fakeEducation struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Education
}

func (s *fakeEducation) Create(_ context.Context, record domain.Education) (domain.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.EducationID = uuid.New()
	s.byID[record.EducationID] = record
	return record, nil
}

func (s *fakeEducation) GetByID(_ context.Context, educationID uuid.UUID) (domain.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[educationID]
	if !ok {
		return domain.Education{}, domain.ErrNotFound
	}
	return record, nil
}

func (s *fakeEducation) List(_ context.Context, activeOnly bool) ([]domain.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.Education, 0, len(s.byID))
	for _, record := range s.byID {
		if activeOnly && !record.IsActive {
			continue
		}
		matched = append(matched, record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })
	return matched, nil
}

func (s *fakeEducation) Update(_ context.Context, record domain.Education) (domain.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[record.EducationID]; !ok {
		return domain.Education{}, domain.ErrNotFound
	}
	s.byID[record.EducationID] = record
	return record, nil
}

func (s *fakeEducation) SetActive(_ context.Context, educationID uuid.UUID, active bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[educationID]
	if !ok {
		return domain.ErrNotFound
	}
	record.IsActive = active
	record.UpdatedAt = now
	s.byID[educationID] = record
	return nil
}

func (s *fakeEducation) Reorder(_ context.Context, orderedIDs []uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for position, id := range orderedIDs {
		record, ok := s.byID[id]
		if !ok {
			return domain.ErrNotFound
		}
		record.Order = position
		record.UpdatedAt = now
		s.byID[id] = record
	}
	return nil
}

type fakePersonal struct {
	mu      sync.Mutex
	details *domain.PersonalDetails

	// getErr makes the next Get fail, simulating a storage outage.
	getErr error
}

func (s *fakePersonal) Get(_ context.Context) (domain.PersonalDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		err := s.getErr
		s.getErr = nil
		return domain.PersonalDetails{}, err
	}
	if s.details == nil {
		return domain.PersonalDetails{}, domain.ErrNotFound
	}
	return *s.details, nil
}

func (s *fakePersonal) Upsert(_ context.Context, details domain.PersonalDetails) (domain.PersonalDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if details.DetailsID == uuid.Nil {
		details.DetailsID = uuid.New()
	}
	s.details = &details
	return details, nil
}

type fakeContacts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.ContactMessage
}

func (s *fakeContacts) Create(_ context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.MessageID = uuid.New()
	s.byID[msg.MessageID] = msg
	return msg, nil
}

func (s *fakeContacts) GetByID(_ context.Context, messageID uuid.UUID) (domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.byID[messageID]
	if !ok {
		return domain.ContactMessage{}, domain.ErrNotFound
	}
	return msg, nil
}

func (s *fakeContacts) List(_ context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.ContactMessage, 0, len(s.byID))
	for _, msg := range s.byID {
		if filter.Read != nil && msg.IsRead != *filter.Read {
			continue
		}
		if filter.Replied != nil && msg.IsReplied != *filter.Replied {
			continue
		}
		matched = append(matched, msg)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, int64(len(matched)), nil
}

func (s *fakeContacts) MarkRead(_ context.Context, messageID uuid.UUID, read bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.byID[messageID]
	if !ok {
		return domain.ErrNotFound
	}
	msg.IsRead = read
	msg.UpdatedAt = now
	s.byID[messageID] = msg
	return nil
}

func (s *fakeContacts) Reply(_ context.Context, messageID uuid.UUID, reply string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.byID[messageID]
	if !ok {
		return domain.ErrNotFound
	}
	msg.IsReplied = true
	msg.IsRead = true
	msg.ReplyMessage = reply
	msg.RepliedAt = &now
	msg.UpdatedAt = now
	s.byID[messageID] = msg
	return nil
}

func (s *fakeContacts) Delete(_ context.Context, messageID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[messageID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, messageID)
	return nil
}

func (s *fakeContacts) Stats(_ context.Context, recentSince time.Time) (ports.ContactStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := ports.ContactStats{}
	for _, msg := range s.byID {
		stats.Total++
		if !msg.IsRead {
			stats.Unread++
		}
		if msg.IsReplied {
			stats.Replied++
		}
		if !msg.CreatedAt.Before(recentSince) {
			stats.Recent++
		}
	}
	return stats, nil
}

type fakeLoginAttempts struct {
	mu       sync.Mutex
	attempts []domain.LoginAttempt
}

func (s *fakeLoginAttempts) Insert(_ context.Context, attempt domain.LoginAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *fakeLoginAttempts) ListRecent(_ context.Context, limit int) ([]domain.LoginAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LoginAttempt, len(s.attempts))
	copy(out, s.attempts)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *fakeLoginAttempts) last() (domain.LoginAttempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.attempts) == 0 {
		return domain.LoginAttempt{}, false
	}
	return s.attempts[len(s.attempts)-1], true
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string]string
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.items[key]
	return raw, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.items, key)
	}
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

type fakeFiles struct {
	mu    sync.Mutex
	saved []string
}

func (f *fakeFiles) Save(_ context.Context, field, originalName string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	path := fmt.Sprintf("/uploads/%s-%d-%s", field, len(f.saved), originalName)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFiles) Remove(_ context.Context, _ string) error {
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.AuthClaims
	now    func() time.Time
}

func (s *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := fmt.Sprintf("token-%d", len(s.tokens)+1)
	s.tokens[token] = claims
	return token, nil
}

func (s *fakeSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	s.mu.Lock()
	claims, ok := s.tokens[raw]
	s.mu.Unlock()
	if !ok {
		return ports.AuthClaims{}, domain.ErrInvalidToken
	}
	if s.now().After(claims.ExpiresAt) {
		return ports.AuthClaims{}, domain.ErrTokenExpired
	}
	return claims, nil
}
