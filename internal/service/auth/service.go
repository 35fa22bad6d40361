package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shiftops/workforce-backend-go/internal/domain/auth"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/email"
	"github.com/shiftops/workforce-backend-go/internal/pkg/jwt"
	userservice "github.com/shiftops/workforce-backend-go/internal/service/user"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	users      user.Repository
	jwtService jwt.Service
	email      email.EmailService
}

func NewAuthService(users user.Repository, jwtService jwt.Service, emailService email.EmailService) auth.Service {
	return &AuthServiceImpl{
		users:      users,
		jwtService: jwtService,
		email:      emailService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if u.Status != user.StatusActive {
		return auth.LoginResponse{}, auth.ErrInactiveAccount
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: auth.LoginProfile{
			ID:       u.ID,
			Name:     u.Name,
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
		},
	}, nil
}

// GeneratePassword implements auth.Service. Unknown emails are ignored
// silently so the endpoint cannot be used to probe for accounts.
func (s *AuthServiceImpl) GeneratePassword(ctx context.Context, req auth.GeneratePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	password, err := userservice.GeneratePassword()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return err
	}

	if err := s.email.SendNewPassword(u.Email, u.Name, password); err != nil {
		log.Printf("[AuthService] Failed to send new password email to user %d: %v", u.ID, err)
	}

	return nil
}
