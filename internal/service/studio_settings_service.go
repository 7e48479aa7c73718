package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
)

const msgStudioSettingsNotFound = "Studio settings not found"

// StudioSettingsService manages studio profiles. Each profile belongs to the
// user that created it; admins may act on any of them.
type StudioSettingsService struct {
	settingsRepo *repository.StudioSettingsRepository
}

func NewStudioSettingsService(settingsRepo *repository.StudioSettingsRepository) *StudioSettingsService {
	return &StudioSettingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *StudioSettingsService) CreateSettings(ctx context.Context, user *models.User, req models.StudioSettingsRequest) (*models.StudioSettings, error) {
	req.EmailID = normalizeEmail(req.EmailID)

	if _, err := s.settingsRepo.GetByUserID(ctx, user.ID); err == nil {
		return nil, fail(ErrConflict, "Studio settings already exist for this user")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if req.EmailID != nil {
		taken, err := s.settingsRepo.EmailTaken(ctx, *req.EmailID, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fail(ErrConflict, "Email already registered")
		}
	}

	settings, err := s.settingsRepo.Create(ctx, req.ToStudioSettings(user.ID))
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fail(ErrConflict, "Email already registered")
	}
	return settings, err
}

// ListSettings returns every profile. Admin only.
func (s *StudioSettingsService) ListSettings(ctx context.Context, user *models.User, page models.Page) ([]models.StudioSettings, error) {
	if !user.IsAdmin() {
		return nil, fail(ErrForbidden, "The user doesn't have enough privileges")
	}
	return s.settingsRepo.List(ctx, page)
}

func (s *StudioSettingsService) CurrentSettings(ctx context.Context, user *models.User) (*models.StudioSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, notFound(err, "No settings found. Please create your studio profile first.")
	}
	return settings, nil
}

func (s *StudioSettingsService) GetSettings(ctx context.Context, user *models.User, id uint) (*models.StudioSettings, error) {
	return s.owned(ctx, user, id)
}

func (s *StudioSettingsService) UpdateSettings(ctx context.Context, user *models.User, id uint, req models.UpdateStudioSettingsRequest) (*models.StudioSettings, error) {
	if _, err := s.owned(ctx, user, id); err != nil {
		return nil, err
	}

	if req.EmailID.Present {
		req.EmailID.Value = normalizeEmail(req.EmailID.Value)
	}
	changes, err := req.Changes()
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}

	if req.EmailID.Value != nil {
		taken, err := s.settingsRepo.EmailTaken(ctx, *req.EmailID.Value, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fail(ErrConflict, "Email already in use")
		}
	}

	settings, err := s.settingsRepo.Update(ctx, id, changes)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, fail(ErrConflict, "Email already in use")
	case err != nil:
		return nil, notFound(err, msgStudioSettingsNotFound)
	}
	return settings, nil
}

func (s *StudioSettingsService) DeleteSettings(ctx context.Context, user *models.User, id uint) (*models.StudioSettings, error) {
	if _, err := s.owned(ctx, user, id); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, msgStudioSettingsNotFound)
	}
	return settings, nil
}

// owned loads a profile the user may act on. Profiles of other users are
// reported as missing to non-admins.
func (s *StudioSettingsService) owned(ctx context.Context, user *models.User, id uint) (*models.StudioSettings, error) {
	settings, err := s.settingsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgStudioSettingsNotFound)
	}
	if !user.IsAdmin() && !settings.OwnedBy(user.ID) {
		return nil, fail(ErrNotFound, msgStudioSettingsNotFound)
	}
	return settings, nil
}

// normalizeEmail trims the address and maps blanks to nil so empty strings
// never compete for the unique index.
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
