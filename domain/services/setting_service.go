package services

import (
	"context"
)

type SettingService interface {
	// GetAll merges persisted rows over the defaults so every known key
	// always has a value.
	GetAll(ctx context.Context) (map[string]string, error)
	// Set upserts one key. Any string is accepted for any key.
	Set(ctx context.Context, key, value string) error
	// SaveSiteText upserts the four site text keys in one call.
	SaveSiteText(ctx context.Context, title, subtitle, eventDate, location string) error
}
