package serviceimpl

import (
	"context"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
)

type SettingServiceImpl struct {
	repo repositories.SettingRepository
}

func NewSettingService(repo repositories.SettingRepository) services.SettingService {
	return &SettingServiceImpl{repo: repo}
}

// GetAll merges persisted rows over the defaults, so every known key has a
// value even on a fresh database. Unknown persisted keys pass through as-is.
func (s *SettingServiceImpl) GetAll(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(models.DefaultSettings))
	for key, value := range models.DefaultSettings {
		out[key] = value
	}

	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load settings", "error", err)
		return nil, err
	}
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (s *SettingServiceImpl) Set(ctx context.Context, key, value string) error {
	if err := s.repo.Upsert(ctx, &models.Setting{Key: key, Value: value}); err != nil {
		logger.ErrorContext(ctx, "Failed to save setting", "key", key, "error", err)
		return err
	}
	return nil
}

func (s *SettingServiceImpl) SaveSiteText(ctx context.Context, title, subtitle, eventDate, location string) error {
	values := map[string]string{
		"title":      title,
		"subtitle":   subtitle,
		"event_date": eventDate,
		"location":   location,
	}
	for key, value := range values {
		if err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	logger.InfoContext(ctx, "Site text settings saved")
	return nil
}
