package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/circleci-client/cmd/circleci/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "circleci",
	Short: "CircleCI API v2 CLI",
	Long: `A command-line interface for interacting with the CircleCI API v2.

This CLI provides access to CircleCI resources including projects,
pipelines, workflows, environment variables, and insights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.circleci/cli.yml)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "API token")
	rootCmd.PersistentFlags().StringP("slug", "s", "", "project slug (provider/org/repo)")
	rootCmd.PersistentFlags().String("base-url", "", "API endpoint URL")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("slug", rootCmd.PersistentFlags().Lookup("slug"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewProjectCommand())
	rootCmd.AddCommand(commands.NewCheckoutKeysCommand())
	rootCmd.AddCommand(commands.NewEnvVarsCommand())
	rootCmd.AddCommand(commands.NewWorkflowsCommand())
	rootCmd.AddCommand(commands.NewPipelinesCommand())
	rootCmd.AddCommand(commands.NewInsightsCommand())
}

func initConfig() {
	configFile, _ := rootCmd.PersistentFlags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".circleci"))
			viper.SetConfigName("cli")
			viper.SetConfigType("yml")
		}
	}

	viper.SetEnvPrefix("CIRCLECI")
	viper.AutomaticEnv()

	// Missing config files are fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
