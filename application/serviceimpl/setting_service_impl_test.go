package serviceimpl

import (
	"context"
	"testing"

	"gymrank/domain/models"
	"gymrank/infrastructure/postgres"
)

func TestSettingServiceDefaults(t *testing.T) {
	svc := NewSettingService(postgres.NewSettingRepository(newTestDB(t)))

	settings, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	for key, want := range models.DefaultSettings {
		if settings[key] != want {
			t.Errorf("settings[%q] = %q, expected default %q", key, settings[key], want)
		}
	}
}

func TestSettingServiceSetOverridesOneKey(t *testing.T) {
	svc := NewSettingService(postgres.NewSettingRepository(newTestDB(t)))
	ctx := context.Background()

	if err := svc.Set(ctx, "title", "Cupa Romaniei 2026"); err != nil {
		t.Fatalf("set: %v", err)
	}

	settings, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if settings["title"] != "Cupa Romaniei 2026" {
		t.Errorf("title = %q", settings["title"])
	}
	// Untouched keys keep their defaults.
	if settings["subtitle"] != models.DefaultSettings["subtitle"] {
		t.Errorf("subtitle = %q, expected default", settings["subtitle"])
	}
}

func TestSettingServiceSaveSiteText(t *testing.T) {
	svc := NewSettingService(postgres.NewSettingRepository(newTestDB(t)))
	ctx := context.Background()

	if err := svc.SaveSiteText(ctx, "Title", "Sub", "2026-05-10", "Bucharest"); err != nil {
		t.Fatalf("save site text: %v", err)
	}

	settings, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := map[string]string{
		"title":      "Title",
		"subtitle":   "Sub",
		"event_date": "2026-05-10",
		"location":   "Bucharest",
	}
	for key, value := range want {
		if settings[key] != value {
			t.Errorf("settings[%q] = %q, expected %q", key, settings[key], value)
		}
	}

	// Saving again overwrites instead of duplicating rows.
	if err := svc.SaveSiteText(ctx, "Title 2", "Sub", "2026-05-10", "Bucharest"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	settings, err = svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if settings["title"] != "Title 2" {
		t.Errorf("title = %q after resave", settings["title"])
	}
}
