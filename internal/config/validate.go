package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validUseTitles = map[string]bool{
	"title": true, "originalTitle": true, "sortTitle": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// At least one catalog required
	if c.Radarr == nil && c.Sonarr == nil {
		errs = append(errs, "radarr/sonarr: at least one catalog service must be configured")
	}
	for name, arr := range map[string]*ArrConfig{"radarr": c.Radarr, "sonarr": c.Sonarr} {
		if arr == nil {
			continue
		}
		if arr.URL == "" {
			errs = append(errs, fmt.Sprintf("%s.url: required when %s is configured", name, name))
		}
		if arr.APIKey == "" {
			errs = append(errs, fmt.Sprintf("%s.api_key: required when %s is configured", name, name))
		}
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			errs = append(errs, fmt.Sprintf("tmdb.language: invalid language tag %q", c.TMDB.Language))
		}
	}

	// App validation
	if c.App.FreeSpaceGB < 0 {
		errs = append(errs, fmt.Sprintf("app.free_space_gb: must not be negative, got %v", c.App.FreeSpaceGB))
	}
	if !validUseTitles[c.App.UseTitle] {
		errs = append(errs, fmt.Sprintf("app.use_title: must be one of title, originalTitle, sortTitle; got %q", c.App.UseTitle))
	}

	// Downloader validation
	if c.YtDlp.MaxDurationSeconds < 0 {
		errs = append(errs, fmt.Sprintf("ytdlp.max_duration_seconds: must not be negative, got %d", c.YtDlp.MaxDurationSeconds))
	}
	for _, prefix := range c.YtDlp.SearchPrefixes {
		if strings.ContainsAny(prefix, ": ") {
			errs = append(errs, fmt.Sprintf("ytdlp.search_prefixes: %q must be a bare provider prefix (no colon or spaces)", prefix))
		}
	}

	// The transcode template is a deployment requirement, not a per-item one.
	if c.FFmpeg.CommandTemplate == "" {
		errs = append(errs, "ffmpeg.command_template: required")
	} else {
		for _, ph := range []string{"{input}", "{output}"} {
			if !strings.Contains(c.FFmpeg.CommandTemplate, ph) {
				errs = append(errs, fmt.Sprintf("ffmpeg.command_template: missing %s placeholder", ph))
			}
		}
	}

	// Log validation
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, fmt.Sprintf("log.max_size_mb: must not be negative, got %d", c.Log.MaxSizeMB))
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Sprintf("log.max_backups: must not be negative, got %d", c.Log.MaxBackups))
	}

	return errs
}
