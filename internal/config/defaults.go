package config

import (
	_ "embed"
)

//go:embed defaults/weather2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// defaults/weather2048.yaml and is used if that file fails to parse.
func Default() Config {
	return Config{
		Theme:         "weather",
		Locale:        "en",
		BestScoreKey:  "best-score",
		NoticeSeconds: 3,
		Swipe: SwipeConfig{
			MinDistance:     30,
			CellWidthUnits:  12,
			CellHeightUnits: 24,
		},
		SSH: SSHConfig{
			Address:            ":2048",
			HostKey:            ".ssh/weather2048_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{Level: "info"},
	}
}
