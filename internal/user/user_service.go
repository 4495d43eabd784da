package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"connected/internal/common"
	"connected/internal/dbmysql"
)

// UserDto is the profile payload produced by the identity-provider event
// hook. The ID is the provider's subject string.
type UserDto struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email"`
}

type UserService interface {
	AllUsers(ctx context.Context) ([]dbmysql.User, error)
	VerifyUser(ctx context.Context, userID string) (*dbmysql.User, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	CreateUser(ctx context.Context, dto UserDto) error
	UpdateUser(ctx context.Context, userID string, dto UserDto) (*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) AllUsers(ctx context.Context) ([]dbmysql.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// VerifyUser finds a user or reports common.ErrNotFound.
func (s *userService) VerifyUser(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("a user with ID %s does not exist: %w", userID, common.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UserExists(ctx context.Context, userID string) (bool, error) {
	return s.userRepo.CheckUserExists(ctx, userID)
}

func (s *userService) CreateUser(ctx context.Context, dto UserDto) error {
	if dto.FirstName == "" || dto.LastName == "" || dto.Email == "" {
		return fmt.Errorf("the request is missing required information: %w", common.ErrInvalidArgument)
	}

	user := &dbmysql.User{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Email:     dto.Email,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	slog.Info("a new user has been created", "user_id", user.ID)
	return nil
}

// UpdateUser merges the non-empty fields of dto onto the stored profile.
func (s *userService) UpdateUser(ctx context.Context, userID string, dto UserDto) (*dbmysql.User, error) {
	original, err := s.VerifyUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if dto.FirstName != "" {
		original.FirstName = dto.FirstName
	}
	if dto.LastName != "" {
		original.LastName = dto.LastName
	}
	if dto.Phone != "" {
		original.Phone = dto.Phone
	}
	if dto.Email != "" {
		original.Email = dto.Email
	}

	slog.Info("updating user details", "user_id", userID)
	if err := s.userRepo.UpdateUser(ctx, original); err != nil {
		return nil, err
	}
	return original, nil
}
