// Package config reads process-level defaults from WPPROJECT_* environment
// variables.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Settings seed the CLI flag defaults.
type Settings struct {
	LogLevel  string `env:"WPPROJECT_LOG_LEVEL" envDefault:"info"`
	Profile   string `env:"WPPROJECT_PROFILE"`
	AssumeYes bool   `env:"WPPROJECT_YES"`
	Backup    string `env:"WPPROJECT_BACKUP" envDefault:"none"`
}

func Load() (Settings, error) {
	return env.ParseAs[Settings]()
}
