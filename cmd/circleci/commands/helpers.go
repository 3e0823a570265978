package commands

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/fivetwenty-io/circleci-client/pkg/circleclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// CreateClient builds an API client from the active viper configuration.
func CreateClient() (circleci.Client, error) {
	config := &circleci.Config{
		Token:   viper.GetString("token"),
		BaseURL: viper.GetString("base-url"),
		Debug:   viper.GetBool("verbose"),
	}

	if slug := viper.GetString("slug"); slug != "" {
		config.ProjectSlug = circleci.ProjectSlugFromString(slug)
	}

	return circleclient.New(config)
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}
