package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root client configuration. Values come from an optional YAML
// file (IDEABOARD_CONFIG) with environment variables taking precedence.
type Config struct {
	API APIConfig `yaml:"api"`
	TUI TUIConfig `yaml:"tui"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"IDEABOARD_API_URL" env-default:"http://localhost:8080/api"`
	Timeout time.Duration `yaml:"timeout"  env:"IDEABOARD_API_TIMEOUT" env-default:"30s"`
}

// TUIConfig holds optional appearance preferences.
type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `yaml:"glyphs" env:"IDEABOARD_GLYPHS" env-default:"unicode"`
	// PageSize is the default page size for paginated listings.
	PageSize int `yaml:"page_size" env:"IDEABOARD_PAGE_SIZE" env-default:"50"`
}

// Load reads configuration from IDEABOARD_CONFIG (when set and present) and
// the environment. A missing config file is not an error; env defaults apply.
func Load() (Config, error) {
	var cfg Config
	path := os.Getenv("IDEABOARD_CONFIG")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
