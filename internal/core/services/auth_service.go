package services

import (
	"context"

	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/config"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/password"
)

// Auth errors
var (
	ErrInvalidCredentials = domain.ErrInvalidCredentials
)

// AuthService handles authentication business logic
type AuthService struct {
	staff *jsonstore.StaffStore
	cfg   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(staff *jsonstore.StaffStore, cfg *config.Config) *AuthService {
	return &AuthService{staff: staff, cfg: cfg}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult represents a successful login
type LoginResult struct {
	User  *domain.StaffResponse `json:"user"`
	Token string                `json:"token"`
}

// Login checks the credentials against the staff store and issues a
// session token. Unknown email and wrong password both map to
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	staff, ok := s.staff.FindByEmail(input.Email)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(input.Password, staff.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := domain.Identity{
		ID:    staff.ID,
		Name:  staff.Name,
		Email: staff.Email,
		Role:  staff.Role,
	}

	token, err := jwt.Issue(identity, s.cfg.JWT.Secret, s.cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:  staff.ToResponse(),
		Token: token,
	}, nil
}
