package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

// Login validates credentials against the stored hash and drives the
// account lockout state machine. Both "no such admin" and "wrong password"
// fail identically so the endpoint cannot be used to enumerate accounts;
// only an active lock is allowed to look different.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return LoginResponse{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recordAttempt(ctx, nil, email, req, "FAILURE", "ADMIN_NOT_FOUND")
			return LoginResponse{}, domain.ErrInvalidCredentials
		}
		return LoginResponse{}, fmt.Errorf("fetch admin: %w", err)
	}
	if !admin.IsActive {
		s.recordAttempt(ctx, &admin.AdminID, email, req, "FAILURE", "ACCOUNT_INACTIVE")
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	now := s.nowFn()
	if admin.IsLocked(now) {
		slog.Default().WarnContext(ctx, "account lockout active",
			"module", "application",
			"operation", "login",
			"outcome", "blocked",
			"locked_until", admin.LockedUntil,
		)
		s.recordAttempt(ctx, &admin.AdminID, email, req, "BLOCKED", "ACCOUNT_LOCKED")
		return LoginResponse{}, domain.ErrAccountLocked
	}

	if err := s.hasher.Compare(admin.PasswordHash, req.Password); err != nil {
		// The stored count survives an expired lock, so a stale streak of
		// failures relocks immediately on the next miss.
		state := ports.LoginStateUpdate{
			FailedAttempts: admin.FailedAttempts + 1,
			LockedUntil:    admin.LockedUntil,
			LastLoginAt:    admin.LastLoginAt,
		}
		if state.FailedAttempts >= s.cfg.FailedLoginThreshold {
			lockedUntil := now.Add(s.cfg.LockoutDuration)
			state.LockedUntil = &lockedUntil
			slog.Default().WarnContext(ctx, "account lockout triggered",
				"module", "application",
				"operation", "login",
				"outcome", "blocked",
				"failed_attempts", state.FailedAttempts,
				"locked_until", lockedUntil,
			)
		}
		if persistErr := s.admins.UpdateLoginState(ctx, admin.AdminID, state, now); persistErr != nil {
			return LoginResponse{}, fmt.Errorf("persist login state: %w", persistErr)
		}
		s.recordAttempt(ctx, &admin.AdminID, email, req, "FAILURE", "INVALID_PASSWORD")
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	state := ports.LoginStateUpdate{
		FailedAttempts: 0,
		LockedUntil:    nil,
		LastLoginAt:    &now,
	}
	if err := s.admins.UpdateLoginState(ctx, admin.AdminID, state, now); err != nil {
		return LoginResponse{}, fmt.Errorf("persist login state: %w", err)
	}

	token, err := s.tokenSigner.Sign(ports.AuthClaims{
		AdminID:   admin.AdminID,
		Email:     admin.Email,
		Role:      admin.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	s.recordAttempt(ctx, &admin.AdminID, email, req, "SUCCESS", "")

	admin.LastLoginAt = &now
	return LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
		Admin:     toAdminSummary(admin),
	}, nil
}

// VerifyToken checks a presented token cryptographically and then against
// the live account, so deactivation cuts access before the token expires.
func (s *Service) VerifyToken(ctx context.Context, token string) (AdminSummary, error) {
	admin, err := s.AuthenticateRequest(ctx, token)
	if err != nil {
		return AdminSummary{}, err
	}
	return toAdminSummary(admin), nil
}

// AuthenticateRequest is the gate for privileged operations: same checks as
// VerifyToken, but the full account is handed back as proof of identity.
func (s *Service) AuthenticateRequest(ctx context.Context, token string) (domain.Admin, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Admin{}, fmt.Errorf("%w: token is required", domain.ErrInvalidInput)
	}

	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return domain.Admin{}, domain.ErrTokenExpired
		}
		return domain.Admin{}, domain.ErrInvalidToken
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil || !admin.IsActive {
		return domain.Admin{}, domain.ErrInvalidToken
	}
	return admin, nil
}

// UpdateAdminProfile applies the two editable profile fields. Email moves
// through the same normalization as login so case never splits identities.
func (s *Service) UpdateAdminProfile(ctx context.Context, adminID uuid.UUID, req UpdateProfileRequest) (AdminSummary, error) {
	patch := ports.AdminProfilePatch{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return AdminSummary{}, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
		}
		patch.Name = &name
	}
	if req.Email != nil {
		email, err := domain.NormalizeEmail(*req.Email)
		if err != nil {
			return AdminSummary{}, err
		}
		patch.Email = &email
	}

	admin, err := s.admins.UpdateProfile(ctx, adminID, patch, s.nowFn())
	if err != nil {
		return AdminSummary{}, err
	}
	return toAdminSummary(admin), nil
}

// ChangePassword rotates the admin secret after re-proving the current one.
// The new plaintext is hashed here, with a fresh salt, before anything is
// persisted; the repository only ever stores the finished hash.
func (s *Service) ChangePassword(ctx context.Context, adminID uuid.UUID, req ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: current and new password are required", domain.ErrInvalidInput)
	}
	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(admin.PasswordHash, req.CurrentPassword); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.admins.UpdatePasswordHash(ctx, adminID, hash, s.nowFn())
}

// ProvisionAdmin creates the admin account. It backs the seed step at
// startup; there is no self-service registration surface.
func (s *Service) ProvisionAdmin(ctx context.Context, email, password, name, role string) (AdminSummary, error) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return AdminSummary{}, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return AdminSummary{}, err
	}
	if strings.TrimSpace(name) == "" {
		return AdminSummary{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleAdmin
	}
	if !domain.ValidRole(role) {
		return AdminSummary{}, fmt.Errorf("%w: invalid role", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AdminSummary{}, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.admins.Create(ctx, ports.CreateAdminParams{
		Email:        normalized,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         role,
		CreatedAt:    s.nowFn(),
	})
	if err != nil {
		return AdminSummary{}, err
	}
	return toAdminSummary(admin), nil
}

// ListLoginAudit returns the most recent authentication outcomes.
func (s *Service) ListLoginAudit(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.loginAttempts.ListRecent(ctx, limit)
}
