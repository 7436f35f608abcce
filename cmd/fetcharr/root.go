package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fetcharr",
	Short: "Trailer fetcher for Radarr and Sonarr libraries",
	Long: `fetcharr - trailer fetcher for Radarr and Sonarr libraries

Scans the configured catalogs, resolves trailer candidates from TMDB
(falling back to provider search), downloads them with yt-dlp and
transcodes them next to each movie or show season.

Run 'fetcharrd' to start the scanning daemon.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("fetcharr {{.Version}}\n")
}
