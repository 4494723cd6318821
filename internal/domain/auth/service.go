package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gymhub/internal/pkg/apperr"
	jwtsvc "gymhub/internal/pkg/jwt"
	"gymhub/internal/pkg/validator"
)

type Service struct {
	repo Repository
	jwt  *jwtsvc.Service
}

func NewService(repo Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register creates an account. Self-registration always gets MEMBER;
// admin-created accounts may carry any valid role.
func (s *Service) Register(ctx context.Context, req *RegisterRequest, allowRole bool) (*AuthResponse, error) {
	role := RoleMember
	if allowRole && req.Role != "" {
		role = Role(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("failed to look up email", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
	}
	if fields := validator.Validate(user); fields != nil {
		return nil, apperr.Validation("INVALID_USER", "invalid user fields").WithDetails(fields)
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperr.Internal("failed to look up email", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// Me returns the profile of the authenticated user.
func (s *Service) Me(ctx context.Context, userID int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListOwners powers the admin's owner dropdown for plan assignment.
func (s *Service) ListOwners(ctx context.Context) ([]*User, error) {
	owners, err := s.repo.ListOwners(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list owners", err)
	}
	return owners, nil
}
