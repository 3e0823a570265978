package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// NewInsightsCommand creates the insights command group.
func NewInsightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insights",
		Aliases: []string{"in"},
		Short:   "Aggregated workflow and job metrics",
	}

	cmd.AddCommand(newInsightsWorkflowsCommand())
	cmd.AddCommand(newInsightsJobsCommand())
	cmd.AddCommand(newInsightsWorkflowRunsCommand())
	cmd.AddCommand(newInsightsJobRunsCommand())

	return cmd
}

func insightsParamsFromFlags(branch string) *circleci.InsightsParams {
	if branch == "" {
		return nil
	}

	return &circleci.InsightsParams{Branch: branch}
}

func runParamsFromFlags(branch, start, end string) (*circleci.RunListParams, error) {
	params := &circleci.RunListParams{Branch: branch}

	if start != "" {
		startDate, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}

		params.StartDate = startDate
	}

	if end != "" {
		endDate, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", end, err)
		}

		params.EndDate = endDate
	}

	return params, nil
}

func newInsightsWorkflowsCommand() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "workflows",
		Short: "Summary metrics for the project's workflows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Insights().ListWorkflowMetrics(context.Background(), insightsParamsFromFlags(branch))
			if err != nil {
				return fmt.Errorf("failed to list workflow metrics: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(page.Items)
			case OutputFormatYAML:
				return outputYAML(page.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Runs", "Success Rate", "P95 Duration", "Credits")

				for _, metrics := range page.Items {
					_ = table.Append(metrics.Name,
						fmt.Sprintf("%d", metrics.Metrics.TotalRuns),
						fmt.Sprintf("%.1f%%", metrics.Metrics.SuccessRate*100),
						(time.Duration(metrics.Metrics.DurationMetrics.P95) * time.Second).String(),
						fmt.Sprintf("%d", metrics.Metrics.TotalCreditsUsed))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")

	return cmd
}

func newInsightsJobsCommand() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "jobs <workflow-name>",
		Short: "Summary metrics for a workflow's jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Insights().ListJobMetrics(context.Background(), args[0], insightsParamsFromFlags(branch))
			if err != nil {
				return fmt.Errorf("failed to list job metrics: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(page.Items)
			case OutputFormatYAML:
				return outputYAML(page.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Runs", "Success Rate", "P95 Duration", "Credits")

				for _, metrics := range page.Items {
					_ = table.Append(metrics.Name,
						fmt.Sprintf("%d", metrics.Metrics.TotalRuns),
						fmt.Sprintf("%.1f%%", metrics.Metrics.SuccessRate*100),
						(time.Duration(metrics.Metrics.DurationMetrics.P95) * time.Second).String(),
						fmt.Sprintf("%d", metrics.Metrics.TotalCreditsUsed))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")

	return cmd
}

func newInsightsWorkflowRunsCommand() *cobra.Command {
	var branch, start, end string

	cmd := &cobra.Command{
		Use:   "workflow-runs <workflow-name>",
		Short: "Recent runs of a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := runParamsFromFlags(branch, start, end)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Insights().ListWorkflowRuns(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list workflow runs: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(page.Items)
			case OutputFormatYAML:
				return outputYAML(page.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Branch", "Status", "Duration", "Created")

				for _, run := range page.Items {
					_ = table.Append(run.ID, run.Branch, run.Status,
						(time.Duration(run.Duration) * time.Second).String(),
						run.CreatedAt.Format("2006-01-02 15:04"))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")
	cmd.Flags().StringVar(&start, "start", "", "window start (RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "window end (RFC3339)")

	return cmd
}

func newInsightsJobRunsCommand() *cobra.Command {
	var branch, start, end string

	cmd := &cobra.Command{
		Use:   "job-runs <workflow-name> <job-name>",
		Short: "Recent runs of a job within a workflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := runParamsFromFlags(branch, start, end)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Insights().ListJobRuns(context.Background(), args[0], args[1], params)
			if err != nil {
				return fmt.Errorf("failed to list job runs: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(page.Items)
			case OutputFormatYAML:
				return outputYAML(page.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Status", "Started", "Stopped")

				for _, run := range page.Items {
					_ = table.Append(run.ID, run.Status, run.StartedAt.Format(time.RFC3339), formatTime(run.StoppedAt))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")
	cmd.Flags().StringVar(&start, "start", "", "window start (RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "window end (RFC3339)")

	return cmd
}
