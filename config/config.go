package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Defaults mirror the tool's original fixed behavior.
const (
	DefaultExtension  = ".mp4"
	DefaultPrefix     = "processed"
	DefaultTargetPeak = -0.5
	DefaultBitrate    = "320k"
	DefaultSampleRate = 48000
)

type Config struct {
	Extension   string  // input file extension, matched case-sensitively
	Prefix      string  // output prefix when none is given on the command line
	TargetPeak  float64 // peak normalization target in dBFS
	MP3Bitrate  string
	MP3Rate     int
	FFmpegPath  string
	FFprobePath string
	NoColor     bool
}

type fileConfig struct {
	Extension   string   `toml:"extension"`
	Prefix      string   `toml:"output_prefix"`
	TargetPeak  *float64 `toml:"target_peak_db"`
	MP3Bitrate  string   `toml:"mp3_bitrate"`
	MP3Rate     int      `toml:"mp3_sample_rate"`
	FFmpegPath  string   `toml:"ffmpeg_path"`
	FFprobePath string   `toml:"ffprobe_path"`
	NoColor     bool     `toml:"no_color"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Extension:   DefaultExtension,
		Prefix:      DefaultPrefix,
		TargetPeak:  DefaultTargetPeak,
		MP3Bitrate:  DefaultBitrate,
		MP3Rate:     DefaultSampleRate,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		if fc.Extension != "" {
			cfg.Extension = fc.Extension
		}
		if fc.Prefix != "" {
			cfg.Prefix = fc.Prefix
		}
		if fc.TargetPeak != nil {
			cfg.TargetPeak = *fc.TargetPeak
		}
		if fc.MP3Bitrate != "" {
			cfg.MP3Bitrate = fc.MP3Bitrate
		}
		if fc.MP3Rate != 0 {
			cfg.MP3Rate = fc.MP3Rate
		}
		if fc.FFmpegPath != "" {
			cfg.FFmpegPath = expandTilde(fc.FFmpegPath)
		}
		if fc.FFprobePath != "" {
			cfg.FFprobePath = expandTilde(fc.FFprobePath)
		}
		if fc.NoColor {
			cfg.NoColor = true
		}
	}

	applyEnvOverrides(cfg)

	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OBSVIDEO_EXTENSION"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("OBSVIDEO_OUTPUT_PREFIX"); v != "" {
		cfg.Prefix = v
	}
	if v := os.Getenv("OBSVIDEO_FFMPEG"); v != "" {
		cfg.FFmpegPath = expandTilde(v)
	}
	if v := os.Getenv("OBSVIDEO_FFPROBE"); v != "" {
		cfg.FFprobePath = expandTilde(v)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "obsvideo")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "obsvideo")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
