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

// NewProjectCommand creates the project command group.
func NewProjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect the configured project",
		Long:  "Show metadata for the project named by the configured slug",
	}

	cmd.AddCommand(newProjectGetCommand())

	return cmd
}

func newProjectGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show project metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return outputProject(project)
		},
	}
}

func outputProject(project *circleci.Project) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(project)
	case OutputFormatYAML:
		return outputYAML(project)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Slug", project.Slug)
		_ = table.Append("Name", project.Name)
		_ = table.Append("Organization", project.OrganizationName)

		if project.VCSInfo != nil {
			_ = table.Append("VCS URL", project.VCSInfo.VCSURL)
			_ = table.Append("Default Branch", project.VCSInfo.DefaultBranch)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
