package service

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CurrentUser loads the authenticated user and rejects deactivated accounts.
func (s *UserService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	if !user.IsActive {
		return nil, fail(ErrInactiveUser, "Inactive user")
	}
	return user, nil
}

// RequireAdmin is CurrentUser restricted to admins and superusers.
func (s *UserService) RequireAdmin(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fail(ErrForbidden, "The user doesn't have enough privileges")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}
