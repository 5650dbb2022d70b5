// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v8"
)

// Server holds HTTP server settings.
type Server struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Firebase holds Firebase/Firestore settings. An empty ProjectID disables the
// remote store and the service runs on cache + seed data only.
type Firebase struct {
	ProjectID                    string `env:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Redis holds cache-tier settings. An empty Addr disables the cache tier.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Assist holds AI oracle settings. An empty APIKey disables the remote oracle
// and every call answers from the local heuristic.
type Assist struct {
	APIKey string `env:"GPT_API_KEY"`
	APIURL string `env:"GPT_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	Model  string `env:"GPT_MODEL" envDefault:"gpt-4o-mini"`
}

// Config is the full process configuration.
type Config struct {
	Server
	Firebase
	Redis
	Assist

	// DataVersion invalidates cached catalog/ad blobs when it changes.
	// Bump it whenever the bundled seed data is updated.
	DataVersion string `env:"DATA_VERSION" envDefault:"v4"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
