package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/shiftops/workforce-backend-go/internal/pkg/email"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db          *database.DB
	repo        user.Repository
	email       email.EmailService
	frontendURL string
}

func NewUserService(db *database.DB, repo user.Repository, emailService email.EmailService, frontendURL string) user.Service {
	return &UserServiceImpl{
		db:          db,
		repo:        repo,
		email:       emailService,
		frontendURL: frontendURL,
	}
}

// passwordAlphabet leaves out look-alike characters.
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789!@#$%"

// GeneratePassword returns a random password that satisfies the strong
// password rule.
func GeneratePassword() (string, error) {
	buf := make([]byte, 10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	// Guarantee one capital and one special regardless of the draw.
	return "Wf!" + string(buf), nil
}

// Create implements user.Service.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	password := req.Password
	if !req.RequirePassword {
		generated, err := GeneratePassword()
		if err != nil {
			return user.UserResponse{}, err
		}
		password = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, user.User{
			Name:         req.Name,
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: &hashStr,
			Mobile:       req.Mobile,
			Address:      req.Address,
			Role:         req.Role,
			Status:       user.StatusActive,
		})
		if err != nil {
			return err
		}

		for _, set := range []struct {
			kind string
			ids  []int64
		}{
			{user.AttrQualification, req.Qualifications},
			{user.AttrSkill, req.Skills},
			{user.AttrLanguage, req.Languages},
		} {
			if len(set.ids) == 0 {
				continue
			}
			if err := s.repo.AddAttributes(txCtx, created.ID, set.kind, set.ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	if !req.RequirePassword {
		if err := s.email.SendWelcome(created.Email, created.Name, created.Email, password, s.frontendURL); err != nil {
			log.Printf("[UserService] Failed to send welcome email to user %d: %v", created.ID, err)
		}
	}

	return s.Get(ctx, created.ID)
}

// Get implements user.Service.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
	filter.Normalize()

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}
	return responses, total, nil
}

// Update implements user.Service. Attribute slices are diffed against the
// stored sets inside one transaction.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Mobile != nil {
		u.Mobile = req.Mobile
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Status != nil {
		u.Status = *req.Status
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, u); err != nil {
			return err
		}

		for _, set := range []struct {
			kind string
			want []int64
		}{
			{user.AttrQualification, req.Qualifications},
			{user.AttrSkill, req.Skills},
			{user.AttrLanguage, req.Languages},
		} {
			if set.want == nil {
				continue
			}
			if err := s.syncAttributes(txCtx, u.ID, set.kind, set.want); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *UserServiceImpl) syncAttributes(ctx context.Context, userID int64, kind string, want []int64) error {
	current, err := s.repo.AttributeIDs(ctx, userID, kind)
	if err != nil {
		return err
	}

	wanted := make(map[int64]bool, len(want))
	for _, id := range want {
		wanted[id] = true
	}
	have := make(map[int64]bool, len(current))
	for _, id := range current {
		have[id] = true
	}

	var toAdd, toRemove []int64
	for id := range wanted {
		if !have[id] {
			toAdd = append(toAdd, id)
		}
	}
	for id := range have {
		if !wanted[id] {
			toRemove = append(toRemove, id)
		}
	}

	if len(toAdd) > 0 {
		if err := s.repo.AddAttributes(ctx, userID, kind, toAdd); err != nil {
			return err
		}
	}
	if len(toRemove) > 0 {
		if err := s.repo.RemoveAttributes(ctx, userID, kind, toRemove); err != nil {
			return err
		}
	}
	return nil
}

// Delete implements user.Service.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Summary implements user.Service.
func (s *UserServiceImpl) Summary(ctx context.Context) (user.SummaryResponse, error) {
	return s.repo.AllAttributes(ctx)
}
