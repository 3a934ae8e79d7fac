package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"football-quiz/internal/app"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		ID              string `yaml:"id"`
		TTL             string `yaml:"ttl"`
		QuestionSeconds int    `yaml:"questionSeconds"`
		TickInterval    string `yaml:"tickInterval"`
		RevealDelay     string `yaml:"revealDelay"`
	} `yaml:"quiz"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the zero Config.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// Timing converts the quiz clock settings, filling gaps with the defaults.
func (c Config) Timing() app.Timing {
	def := app.DefaultTiming()
	timing := app.Timing{
		QuestionSeconds: c.Quiz.QuestionSeconds,
		TickInterval:    TTLDuration(c.Quiz.TickInterval, def.TickInterval),
		RevealDelay:     TTLDuration(c.Quiz.RevealDelay, def.RevealDelay),
	}
	if timing.QuestionSeconds <= 0 {
		timing.QuestionSeconds = def.QuestionSeconds
	}
	return timing
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
