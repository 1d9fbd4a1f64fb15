package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"homegame-server/internal/util"
)

// EnvPrefix prefixes every environment override, e.g. HOMEGAME_SESSION_MAX_SESSIONS
const EnvPrefix = "homegame"

// Config provides configuration for the homegame server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	HostToken struct {
		// Secret signs host tokens, a random secret is used when empty
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"hostToken" envconfig:"host_token"`
	Session struct {
		CodeLength  int `yaml:"codeLength" envconfig:"code_length"`
		MaxSessions int `yaml:"maxSessions" envconfig:"max_sessions"`
	} `yaml:"session"`
	Poker struct {
		StartingChips int      `yaml:"startingChips" envconfig:"starting_chips"`
		BlindLevels   []string `yaml:"blindLevels" envconfig:"blind_levels"`
		BlindPosting  string   `yaml:"blindPosting" envconfig:"blind_posting"`
	} `yaml:"poker"`
	Blackjack struct {
		StartingChips   int  `yaml:"startingChips" envconfig:"starting_chips"`
		DealerHandValue int  `yaml:"dealerHandValue" envconfig:"dealer_hand_value"`
		PushOnTie       bool `yaml:"pushOnTie" envconfig:"push_on_tie"`
		RotateDealer    bool `yaml:"rotateDealer" envconfig:"rotate_dealer"`
	} `yaml:"blackjack"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.HostToken.TTL = 24 * time.Hour
	cfg.Session.CodeLength = 6
	cfg.Session.MaxSessions = 100
	cfg.Poker.StartingChips = 1000
	cfg.Poker.BlindLevels = []string{"5/10", "10/20", "20/40", "40/80", "80/160"}
	cfg.Poker.BlindPosting = "automatic"
	cfg.Blackjack.StartingChips = 1000
	cfg.Blackjack.DealerHandValue = 17
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, the YAML file, the .env file, then the environment
func Load() error {
	cfg := DefaultConfig()

	if err := loadFile(util.Getenv("HOMEGAME_CONFIG_FILE", "config.yaml"), &cfg); err != nil {
		return err
	}

	if err := loadDotEnv(util.Getenv("HOMEGAME_ENV_FILE", ".env")); err != nil {
		return err
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that can't be caught by decoding
func (c Config) Validate() error {
	// base64 of the 20 random bytes in a token
	if c.Session.CodeLength < 4 || c.Session.CodeLength > 26 {
		return fmt.Errorf("session code length must be between 4 and 26, got %d", c.Session.CodeLength)
	}

	if c.Session.MaxSessions < 0 {
		return fmt.Errorf("max sessions cannot be negative, got %d", c.Session.MaxSessions)
	}

	if c.HostToken.TTL <= 0 {
		return fmt.Errorf("host token ttl must be positive, got %s", c.HostToken.TTL)
	}

	return nil
}

// loadFile decodes the YAML file at path over cfg
// A missing file is not an error
func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}

	return nil
}

// loadDotEnv sets the variables in path that aren't already in the environment
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("could not load %s: %w", path, err)
	}

	return nil
}
