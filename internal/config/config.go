package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath string

	// Export
	ExportPath string

	// Presentation. Neither affects core correctness; the title heads the
	// page and the font size keeps Khmer script legible in the table.
	AppTitle string
	FontSize int
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_NAME", "wedding_data.db"),
		ExportPath: getEnv("EXPORT_FILE", "Wedding_List_Export.xlsx"),
		AppTitle:   getEnv("APP_TITLE", "Wedding Manager"),
		FontSize:   getEnvInt("FONT_SIZE", 12),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		// Check if the directory exists or can be created
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if !strings.HasSuffix(c.ExportPath, ".xlsx") {
		errors = append(errors, fmt.Sprintf("invalid export file '%s': must end with .xlsx", c.ExportPath))
	}

	if c.FontSize < 6 || c.FontSize > 72 {
		errors = append(errors, fmt.Sprintf("invalid font size %d: must be between 6 and 72", c.FontSize))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
