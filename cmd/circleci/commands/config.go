package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/circleci-client/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and update the stored token, project slug, and API endpoint",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetTokenCommand())
	cmd.AddCommand(newConfigSetSlugCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			type ConfigView struct {
				Token   string `json:"token"    yaml:"token"`
				Slug    string `json:"slug"     yaml:"slug"`
				BaseURL string `json:"base_url" yaml:"base_url"`
			}

			view := ConfigView{
				Token:   Masked,
				Slug:    viper.GetString("slug"),
				BaseURL: viper.GetString("base-url"),
			}

			if viper.GetString("token") == "" {
				view.Token = NotAvailable
			}

			if view.BaseURL == "" {
				view.BaseURL = constants.DefaultBaseURL
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(view)
			case OutputFormatYAML:
				return outputYAML(view)
			default:
				fmt.Printf("Token:    %s\n", view.Token)
				fmt.Printf("Slug:     %s\n", view.Slug)
				fmt.Printf("Base URL: %s\n", view.BaseURL)
			}

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store an API token",
		Long:  "Prompt for an API token and persist it to the CLI config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API token: ")

			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading token: %w", err)
			}

			token := strings.TrimSpace(string(tokenBytes))
			viper.Set("token", token)

			return persistConfig()
		},
	}
}

func newConfigSetSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-slug <provider/org/repo>",
		Short: "Store a default project slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("slug", args[0])

			return persistConfig()
		},
	}
}

// persistConfig writes the active viper settings to the default config file.
func persistConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".circleci")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "cli.yml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("setting config file permissions: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configFile)

	return nil
}
