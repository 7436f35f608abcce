// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Radarr  *ArrConfig    `toml:"radarr"`
	Sonarr  *ArrConfig    `toml:"sonarr"`
	TMDB    TMDBConfig    `toml:"tmdb"`
	App     AppConfig     `toml:"app"`
	YtDlp   YtDlpConfig   `toml:"ytdlp"`
	FFmpeg  FFmpegConfig  `toml:"ffmpeg"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
}

// ArrConfig points at one catalog service (Radarr or Sonarr).
type ArrConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// TMDBConfig holds metadata-service credentials and the candidate acceptance
// filters. An unset filter passes every candidate through.
type TMDBConfig struct {
	APIKey       string   `toml:"api_key"`
	Language     string   `toml:"language"`
	OfficialOnly *bool    `toml:"official_only"`
	VideoTypes   []string `toml:"video_types"`
	VideoSize    int      `toml:"video_size"`
	SourceSite   string   `toml:"source_site"`
}

type AppConfig struct {
	TrailerDir     string   `toml:"trailer_dir"`
	OnlyOneTrailer *bool    `toml:"only_one_trailer"`
	FreeSpaceGB    float64  `toml:"free_space_gb"`
	CustomPath     string   `toml:"custom_path"`
	CustomMovieDir string   `toml:"custom_movie_dir"`
	CustomShowDir  string   `toml:"custom_show_dir"`
	UseTitle       string   `toml:"use_title"`
	Quiet          bool     `toml:"quiet"`
	ScanInterval   duration `toml:"scan_interval"`
}

type YtDlpConfig struct {
	Binary              string   `toml:"binary"`
	BaseURL             string   `toml:"base_url"`
	Format              string   `toml:"format"`
	MaxDurationSeconds  int      `toml:"max_duration_seconds"`
	SearchPrefixes      []string `toml:"search_prefixes"`
	SearchKeyword       string   `toml:"search_keyword"`
	SeasonTitleTemplate string   `toml:"season_title_template"`
	SkipIntros          bool     `toml:"skip_intros"`
	SponsorblockRemove  []string `toml:"sponsorblock_remove"`
	RequestInterval     int      `toml:"request_interval_seconds"`
	DownloadTimeout     duration `toml:"download_timeout"`
	CookiesFile         string   `toml:"cookies_file"`
	NoWarnings          bool     `toml:"no_warnings"`
}

type FFmpegConfig struct {
	CommandTemplate  string   `toml:"command_template"`
	Threads          int      `toml:"threads"`
	BufferSize       string   `toml:"buffer_size"`
	OutputExtension  string   `toml:"output_extension"`
	TranscodeTimeout duration `toml:"transcode_timeout"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type HistoryConfig struct {
	Database string `toml:"database"`
}

// duration lets TOML carry values like "12h" or "90s".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d duration) Std() time.Duration { return time.Duration(d) }

// ScanInterval returns the daemon sleep between scan cycles.
func (c *Config) ScanInterval() time.Duration { return c.App.ScanInterval.Std() }

// OnlyOneTrailer reports the single-trailer policy (default true).
func (c *Config) OnlyOneTrailer() bool {
	if c.App.OnlyOneTrailer == nil {
		return true
	}
	return *c.App.OnlyOneTrailer
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults(md)
	return &cfg, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if c.TMDB.Language == "" {
		c.TMDB.Language = "en-US"
	}
	if c.App.TrailerDir == "" {
		c.App.TrailerDir = "trailers"
	}
	if c.App.FreeSpaceGB == 0 {
		c.App.FreeSpaceGB = 5
	}
	if c.App.UseTitle == "" {
		c.App.UseTitle = "title"
	}
	if c.App.ScanInterval == 0 {
		c.App.ScanInterval = duration(12 * time.Hour)
	}
	if c.YtDlp.Binary == "" {
		c.YtDlp.Binary = "yt-dlp"
	}
	if c.YtDlp.BaseURL == "" {
		c.YtDlp.BaseURL = "https://www.youtube.com/watch?v="
	}
	if c.YtDlp.Format == "" {
		c.YtDlp.Format = "bestvideo+bestaudio"
	}
	if c.YtDlp.SeasonTitleTemplate == "" {
		c.YtDlp.SeasonTitleTemplate = "{show} Season {season}"
	}
	if c.YtDlp.RequestInterval == 0 {
		c.YtDlp.RequestInterval = 1
	}
	if c.FFmpeg.Threads == 0 {
		c.FFmpeg.Threads = 4
	}
	if c.FFmpeg.BufferSize == "" {
		c.FFmpeg.BufferSize = "1M"
	}
	if c.FFmpeg.OutputExtension == "" {
		c.FFmpeg.OutputExtension = "mkv"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 5
	}
	// An explicit database = "" disables the store, so the default applies
	// only when the key is absent entirely.
	if !md.IsDefined("history", "database") {
		c.History.Database = "./data/fetcharr.db"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Supports ${VAR:-default} (default when unset or empty) and ${VAR:?message}
// (required, message reported when unset or empty). Returns the rewritten
// content and the list of unresolved variables.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1] // Strip ${ and }

		if name, def, ok := strings.Cut(expr, ":-"); ok {
			if value := os.Getenv(name); value != "" {
				return value
			}
			return def
		}

		if name, msg, ok := strings.Cut(expr, ":?"); ok {
			if value := os.Getenv(name); value != "" {
				return value
			}
			missing = append(missing, name+": "+msg)
			return match
		}

		if value, ok := os.LookupEnv(expr); ok {
			return value
		}
		missing = append(missing, expr)
		return match
	})

	return result, missing
}
