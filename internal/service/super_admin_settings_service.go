package service

import (
	"context"
	"errors"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	msgSuperAdminExists   = "Super admin settings already exist. Use PUT to update."
	msgSuperAdminNotFound = "Super admin settings not found. Please create settings first."
)

type SuperAdminSettingsService struct {
	settingsRepo *repository.SuperAdminSettingsRepository
	logger       *zap.Logger
}

func NewSuperAdminSettingsService(settingsRepo *repository.SuperAdminSettingsRepository, logger *zap.Logger) *SuperAdminSettingsService {
	return &SuperAdminSettingsService{
		settingsRepo: settingsRepo,
		logger:       logger.Named("super_admin_settings"),
	}
}

func (s *SuperAdminSettingsService) CreateSettings(ctx context.Context, req models.SuperAdminSettingsRequest) (*models.SuperAdminSettings, error) {
	settings, err := s.settingsRepo.Create(ctx, req.ToSuperAdminSettings())
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fail(ErrConflict, msgSuperAdminExists)
	}
	return settings, err
}

func (s *SuperAdminSettingsService) GetSettings(ctx context.Context) (*models.SuperAdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, notFound(err, msgSuperAdminNotFound)
	}
	return settings, nil
}

func (s *SuperAdminSettingsService) UpdateSettings(ctx context.Context, req models.UpdateSuperAdminSettingsRequest) (*models.SuperAdminSettings, error) {
	changes, err := req.Changes()
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}

	settings, err := s.settingsRepo.Update(ctx, changes)
	if err != nil {
		return nil, notFound(err, msgSuperAdminNotFound)
	}
	return settings, nil
}

func (s *SuperAdminSettingsService) DeleteSettings(ctx context.Context) (*models.SuperAdminSettings, error) {
	settings, err := s.settingsRepo.Delete(ctx)
	if err != nil {
		return nil, notFound(err, "Super admin settings not found")
	}
	return settings, nil
}

// InitializeSettings returns the existing row or creates one with the
// platform defaults. A concurrent initializer that loses the insert race
// gets the winner's row.
func (s *SuperAdminSettingsService) InitializeSettings(ctx context.Context) (*models.SuperAdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	settings, err = s.settingsRepo.Create(ctx, models.DefaultSuperAdminSettings())
	if errors.Is(err, repository.ErrDuplicate) {
		return s.settingsRepo.Get(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("initialized super admin settings", zap.Uint("id", settings.ID))
	return settings, nil
}
