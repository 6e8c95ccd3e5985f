package conf

import (
	"fmt"
	"slices"
)

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

func (l *Log) setDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = 100
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = 3
	}
}

func (l *Log) validate() []error {
	var errs []error
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, l.Level) {
		errs = append(errs, fmt.Errorf("log level must be one of %v, got %q", validLevels, l.Level))
	}
	if l.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("log max_size_mb must be >= 0"))
	}
	if l.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log max_backups must be >= 0"))
	}
	return errs
}
