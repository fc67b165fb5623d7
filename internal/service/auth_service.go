package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/utils"
)

var (
	ErrMissingFields = errors.New("something is missing")
	ErrInvalidRole   = errors.New("role must be student or recruiter")
	ErrEmailTaken    = errors.New("user already exists with this email")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two causes must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrRoleMismatch       = errors.New("account doesn't exist with current role")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService provides registration, login, and profile management
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.SanitizedUser, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.SanitizedUser, string, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.SanitizedUser, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account. No session is issued; login is a
// separate explicit step. There is no existence pre-check: the insert is the
// uniqueness check, so two concurrent registrations for one email serialize
// in the store and exactly one wins.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.SanitizedUser, error) {
	if req.FullName == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" || req.Role == "" {
		return nil, ErrMissingFields
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return created.Sanitize(), nil
}

// Login authenticates a user and returns a sanitized view plus a session
// token. The role check runs strictly after password verification, so a
// wrong password never reveals whether the role would have matched.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.SanitizedUser, string, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	if req.Role != user.Role {
		return nil, "", ErrRoleMismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user.Sanitize(), token, nil
}

// UpdateProfile overwrites only the fields present in the request. Absent
// fields keep their stored value.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.SanitizedUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		user.Profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Profile.Skills = splitTrimmed(*req.Skills)
	}

	saved, err := s.userRepo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if saved == nil {
		return nil, ErrUserNotFound
	}

	return saved.Sanitize(), nil
}

// splitTrimmed parses a comma-delimited string into an order-preserving list
// of trimmed, non-empty items.
func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
