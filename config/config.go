package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	ServerHostname string
	HTTPPath       string
	AccessToken    string
	Port           string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads the Databricks warehouse credentials from the environment.
// All three credentials are required; the caller treats a missing one as
// fatal before any query runs.
func Load() error {
	AppConfig = Config{
		ServerHostname: os.Getenv("DATABRICKS_HOSTNAME"),
		HTTPPath:       os.Getenv("DATABRICKS_HTTP_PATH"),
		AccessToken:    os.Getenv("DATABRICKS_ACCESS_TOKEN"),
		Port:           os.Getenv("PORT"),
	}
	if AppConfig.Port == "" {
		AppConfig.Port = "3000"
	}

	var missing []string
	if AppConfig.ServerHostname == "" {
		missing = append(missing, "DATABRICKS_HOSTNAME")
	}
	if AppConfig.HTTPPath == "" {
		missing = append(missing, "DATABRICKS_HTTP_PATH")
	}
	if AppConfig.AccessToken == "" {
		missing = append(missing, "DATABRICKS_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}

	return nil
}
