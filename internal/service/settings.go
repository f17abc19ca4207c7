package service

import (
	"context"
	"strings"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type settingsService struct {
	settingRepo repository.SettingRepository
}

func NewSettingsService(settingRepo repository.SettingRepository) SettingsService {
	return &settingsService{settingRepo: settingRepo}
}

func (s *settingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settingRepo.Get(ctx, key)
}

func (s *settingsService) Set(ctx context.Context, actor domain.Actor, key, value, description string) error {
	if !actor.IsAdmin() {
		return domain.ErrAdminOnly
	}
	if strings.TrimSpace(key) == "" {
		return domain.Validationf("setting key is required")
	}
	return s.settingRepo.Upsert(ctx, &domain.Setting{
		Key:         key,
		Value:       value,
		Description: description,
	})
}

func (s *settingsService) List(ctx context.Context) ([]domain.Setting, error) {
	return s.settingRepo.List(ctx)
}

// EnsureDefaults seeds the engine's well-known keys. Existing values are
// left untouched, so it is safe to run on every startup.
func (s *settingsService) EnsureDefaults(ctx context.Context) error {
	defaults := []domain.Setting{
		{Key: domain.SettingMinHoursAdvance, Value: "24", Description: "Minimum hours between request creation and the requested date"},
		{Key: domain.SettingAvailableCarts, Value: "2", Description: "Maximum approved cart reservations per calendar day"},
		{Key: domain.SettingCartPrice, Value: defaultCartPrice, Description: "Flat price per cart reservation"},
		{Key: domain.SettingTractorPricePerHour, Value: defaultTractorPricePerHour, Description: "Tractor service price per hour"},
	}
	for i := range defaults {
		if err := s.settingRepo.EnsureDefault(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
