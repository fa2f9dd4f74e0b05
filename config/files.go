package config

import (
	"os"
	"path/filepath"
)

// default file locations of the rangefilter CLI
var (
	// CLI flag defaults, read by viper when present
	ConfigFile = configFile("config.yaml")
	// field orders of datasets whose settings are not kept in the database
	SettingsFile = configFile("settings.yaml")
)

func configFile(filename string) string {
	dir := os.Getenv("CONFIG_DIR")
	if dir != "" {
		return filepath.Join(dir, filename)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	return filepath.Join(homeDir, ".rangefilter", filename)
}
