package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "discord"

type Config struct {
	Token        string `required:"true"`
	Prefix       string `default:"!"`
	GuildID      string `split_words:"true" default:""`
	SyncCommands bool   `split_words:"true" default:"true"`
	LogLevel     string `split_words:"true" default:"info"`
}

// Load reads the optional env files into the process environment and then
// processes the DISCORD_* variables.
func Load(files ...string) (Config, error) {
	if err := loadEnvFiles(files...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to process env vars")
	}
	if cfg.Prefix == "" {
		return Config{}, errors.New("prefix must not be empty")
	}
	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// A missing .env is fine, the variables may come from the environment.
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to load %s", f)
		}
	}
	return nil
}
