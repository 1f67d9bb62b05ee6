package user

import (
	"context"
	"fmt"

	"github.com/attenda/timeclock-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
		IsActive:     true,
	})
	if err != nil {
		if err == user.ErrUsernameTaken {
			return user.UserResponse{}, user.ErrUsernameTaken
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapUserToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return mapUserToResponse(u), nil
}

// ResetPassword implements user.UserService.
func (s *UserServiceImpl) ResetPassword(ctx context.Context, id string, req user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if err == user.ErrUserNotFound {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// SetUserStatus implements user.UserService.
func (s *UserServiceImpl) SetUserStatus(ctx context.Context, id string, req user.SetUserStatusRequest) error {
	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !req.Active && target.IsAdmin() {
		return user.ErrCannotDeactivateAdmin
	}

	if err := s.userRepo.SetActive(ctx, id, req.Active); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	return nil
}

func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
