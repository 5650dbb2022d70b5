package config

import (
	"os"
	"testing"
)

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			t.Setenv(key, old)
			_ = os.Unsetenv(key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetForTest(t,
		"PORT", "FIREBASE_PROJECT_ID", "REDIS_ADDR", "REDIS_DB",
		"GPT_API_KEY", "GPT_API_URL", "GPT_MODEL", "DATA_VERSION",
	)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Firebase.ProjectID != "" {
		t.Errorf("expected remote store disabled by default, got %q", cfg.Firebase.ProjectID)
	}
	if cfg.Assist.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default model %q", cfg.Assist.Model)
	}
	if cfg.DataVersion == "" {
		t.Error("expected a default data version")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("FIREBASE_PROJECT_ID", "prospot-prod")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DATA_VERSION", "v9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %q", cfg.Port)
	}
	if cfg.Firebase.ProjectID != "prospot-prod" {
		t.Errorf("expected project id, got %q", cfg.Firebase.ProjectID)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.DataVersion != "v9" {
		t.Errorf("expected data version v9, got %q", cfg.DataVersion)
	}
}
