// Package config provides YAML-based configuration loading for the game
// shell: theme, locale, storage, swipe tuning and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete shell configuration.
type Config struct {
	Theme         string      `yaml:"theme"`
	Locale        string      `yaml:"locale"`
	DBPath        string      `yaml:"db_path"`
	BestScoreKey  string      `yaml:"best_score_key"`
	NoticeSeconds int         `yaml:"notice_seconds"`
	Swipe         SwipeConfig `yaml:"swipe"`
	SSH           SSHConfig   `yaml:"ssh"`
	Log           LogConfig   `yaml:"log"`
}

// SwipeConfig tunes mouse-drag gestures. Terminal cells are converted to
// distance units before the threshold is applied.
type SwipeConfig struct {
	MinDistance     int `yaml:"min_distance"`
	CellWidthUnits  int `yaml:"cell_width_units"`
	CellHeightUnits int `yaml:"cell_height_units"`
}

// SSHConfig configures the `serve` command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// NoticeDuration returns how long the win notice stays on screen.
func (c Config) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Locale {
	case "en", "zh":
	default:
		return fmt.Errorf("config: unknown locale %q", c.Locale)
	}
	if c.Theme == "" {
		return fmt.Errorf("config: theme must be set")
	}
	if c.BestScoreKey == "" {
		return fmt.Errorf("config: best_score_key must be set")
	}
	if c.NoticeSeconds < 0 {
		return fmt.Errorf("config: notice_seconds must not be negative, got %d", c.NoticeSeconds)
	}
	if c.Swipe.MinDistance < 0 {
		return fmt.Errorf("config: swipe.min_distance must not be negative, got %d", c.Swipe.MinDistance)
	}
	if c.Swipe.CellWidthUnits <= 0 || c.Swipe.CellHeightUnits <= 0 {
		return fmt.Errorf("config: swipe cell units must be positive, got %dx%d",
			c.Swipe.CellWidthUnits, c.Swipe.CellHeightUnits)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
