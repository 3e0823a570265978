package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// NewEnvVarsCommand creates the envvars command group.
func NewEnvVarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "envvars",
		Aliases: []string{"envvar", "env"},
		Short:   "Manage project environment variables",
		Long:    "List, show, create, and delete environment variables of the configured project",
	}

	cmd.AddCommand(newEnvVarsListCommand())
	cmd.AddCommand(newEnvVarsGetCommand())
	cmd.AddCommand(newEnvVarsCreateCommand())
	cmd.AddCommand(newEnvVarsDeleteCommand())

	return cmd
}

func newEnvVarsListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environment variables",
		Long:  "List environment variables; values are masked by the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var envVars []circleci.EnvVar

			if allPages {
				it := circleci.NewPageIterator(ctx, func(ctx context.Context, token string) (*circleci.ListResponse[circleci.EnvVar], error) {
					return client.EnvVars().List(ctx, &circleci.PageParams{PageToken: token})
				})

				envVars, err = it.All()
			} else {
				var page *circleci.ListResponse[circleci.EnvVar]

				page, err = client.EnvVars().List(ctx, nil)
				if page != nil {
					envVars = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list environment variables: %w", err)
			}

			return outputEnvVars(envVars)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newEnvVarsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show an environment variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			envVar, err := client.EnvVars().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get environment variable: %w", err)
			}

			return outputEnvVars([]circleci.EnvVar{*envVar})
		},
	}
}

func newEnvVarsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <value>",
		Short: "Create an environment variable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			envVar, err := client.EnvVars().Create(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to create environment variable: %w", err)
			}

			return outputEnvVars([]circleci.EnvVar{*envVar})
		},
	}
}

func newEnvVarsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an environment variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			message, err := client.EnvVars().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete environment variable: %w", err)
			}

			fmt.Println(message.Message)

			return nil
		},
	}
}

func outputEnvVars(envVars []circleci.EnvVar) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(envVars)
	case OutputFormatYAML:
		return outputYAML(envVars)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Value")

		for _, envVar := range envVars {
			_ = table.Append(envVar.Name, envVar.Value)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
