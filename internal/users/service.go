package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"peso-backend/internal/shared/auth"
	"peso-backend/internal/shared/server/middleware"
)

// Service contains business logic for accounts and authentication.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// selfServeRoles are the roles an account may register itself with. Admin
// accounts are provisioned by a superadmin.
var selfServeRoles = map[string]struct{}{
	middleware.RoleJobseeker: {},
	middleware.RoleEmployer:  {},
}

// Register creates an account and returns it with a signed token.
func (s *Service) Register(ctx context.Context, email, password, fullName, role string) (User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return User{}, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if role == "" {
		role = middleware.RoleJobseeker
	}
	if _, ok := selfServeRoles[role]; !ok {
		return User{}, "", fmt.Errorf("%w: role %q cannot self-register", ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     strings.TrimSpace(fullName),
		Active:       true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	if !user.Active {
		return User{}, "", ErrInactive
	}

	token, err := s.signToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// UpsertFromAuth persists an identity arriving via OAuth. New accounts start
// as active jobseekers; existing accounts keep their role and flag.
func (s *Service) UpsertFromAuth(ctx context.Context, userID, email, fullName string) (User, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(email) == "" {
		return User{}, fmt.Errorf("%w: user id and email are required", ErrInvalidInput)
	}

	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		user = User{
			ID:     userID,
			Role:   middleware.RoleJobseeker,
			Active: true,
		}
	}
	user.Email = strings.ToLower(strings.TrimSpace(email))
	user.FullName = strings.TrimSpace(fullName)
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetByID returns an account by ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

// List returns accounts for the admin console.
func (s *Service) List(ctx context.Context, limit, offset int) ([]User, error) {
	return s.Repo.List(ctx, limit, offset)
}

// SetActive flips an account's active flag. Admins manage jobseekers and
// employers; only a superadmin manages admin accounts.
func (s *Service) SetActive(ctx context.Context, actorRole, targetID string, active bool) (User, error) {
	target, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		return User{}, err
	}
	if target.Role == middleware.RoleSuperadmin {
		return User{}, ErrForbidden
	}
	if target.Role == middleware.RoleAdmin && actorRole != middleware.RoleSuperadmin {
		return User{}, ErrForbidden
	}
	if err := s.Repo.SetActive(ctx, targetID, active); err != nil {
		return User{}, err
	}
	target.Active = active
	return target, nil
}

// SignToken issues a JWT for an account.
func (s *Service) signToken(user User) (string, error) {
	return auth.SignJWT(auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.FullName,
		Role:  user.Role,
	})
}
