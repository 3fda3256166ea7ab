package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the engine tuning knobs. Everything has a sane default;
// a config file is optional and environment variables win over it.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path" env:"CODEDRILL_DB"`

	// StoreTimeout bounds every store round-trip; callers get an error
	// instead of hanging.
	StoreTimeout time.Duration `yaml:"store_timeout" env:"CODEDRILL_STORE_TIMEOUT" env-default:"5s"`

	// StandardStaleHours is the staleness threshold for standard sessions.
	StandardStaleHours float64 `yaml:"standard_stale_hours" env:"CODEDRILL_STANDARD_STALE_HOURS" env-default:"6"`

	// InterviewStaleHours is the stricter threshold for interview sessions.
	InterviewStaleHours float64 `yaml:"interview_stale_hours" env:"CODEDRILL_INTERVIEW_STALE_HOURS" env-default:"3"`

	// DraftExpireHours is how long an untouched draft survives.
	DraftExpireHours float64 `yaml:"draft_expire_hours" env:"CODEDRILL_DRAFT_EXPIRE_HOURS" env-default:"24"`

	// ProblemsPerTopic is how many problems a new session schedules per
	// focus topic.
	ProblemsPerTopic int `yaml:"problems_per_topic" env:"CODEDRILL_PROBLEMS_PER_TOPIC" env-default:"2"`

	// NotifyEnabled toggles the best-effort cross-instance journal.
	NotifyEnabled bool `yaml:"notify_enabled" env:"CODEDRILL_NOTIFY" env-default:"true"`
}

// Load reads the optional config file at path (empty means env-only) and
// applies environment overrides.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			return cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}
