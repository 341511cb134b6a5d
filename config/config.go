/* config.go
 * Loads the process configuration from a .env file (if present) and the environment
 */

package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	// Region is the only server region the bot queries
	Region = "eu"
	// UserAgent is sent with every statistics API request
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	DefaultCommandPrefix = "!"
	DefaultHenrikBaseURL = "https://api.henrikdev.xyz"
	DefaultMongoDatabase = "valorant_bot"
	DefaultLogLevel      = "info"
)

// ErrMissingToken is returned when no discord bot token is configured
var ErrMissingToken = errors.New("DISCORD_TOKEN is required")

type Config struct {
	DiscordToken  string `envconfig:"DISCORD_TOKEN"`
	ApplicationID string `envconfig:"DISCORD_APPLICATION_ID"`
	CommandPrefix string `envconfig:"COMMAND_PREFIX" default:"!"`

	HenrikAPIKey  string `envconfig:"HENRIK_API_KEY"`
	HenrikBaseURL string `envconfig:"HENRIK_BASE_URL" default:"https://api.henrikdev.xyz"`

	MongoURI      string `envconfig:"MONGO_URI"`
	MongoDatabase string `envconfig:"MONGO_DB" default:"valorant_bot"`

	HealthAddr string `envconfig:"HEALTH_ADDR"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env into the environment and decodes the environment into a Config.
// Preconditions: None, a missing .env file is not an error
// Postconditions: Returns the populated Config, or an error if decoding fails or the bot token is missing.
// The API key is not checked here, a missing key surfaces later as an authorization failure
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}

	// envconfig only applies default tags to unset variables, a blank line in .env still counts as set
	fallback(&cfg.CommandPrefix, DefaultCommandPrefix)
	fallback(&cfg.HenrikBaseURL, DefaultHenrikBaseURL)
	fallback(&cfg.MongoDatabase, DefaultMongoDatabase)
	fallback(&cfg.LogLevel, DefaultLogLevel)

	return &cfg, nil
}

func fallback(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

var Module = fx.Provide(Load)
