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

// NewWorkflowsCommand creates the workflows command group.
func NewWorkflowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflows",
		Aliases: []string{"workflow", "wf"},
		Short:   "Operate on workflows by id",
	}

	cmd.AddCommand(newWorkflowsGetCommand())
	cmd.AddCommand(newWorkflowsCancelCommand())
	cmd.AddCommand(newWorkflowsRerunCommand())
	cmd.AddCommand(newWorkflowsApproveCommand())
	cmd.AddCommand(newWorkflowsJobsCommand())

	return cmd
}

func newWorkflowsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <workflow-id>",
		Short: "Show a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workflow, err := client.Workflows().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get workflow: %w", err)
			}

			return outputWorkflows([]circleci.Workflow{*workflow})
		},
	}
}

func newWorkflowsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <workflow-id>",
		Short: "Cancel a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Workflows().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel workflow: %w", err)
			}

			fmt.Println("Cancel accepted")

			return nil
		},
	}
}

func newWorkflowsRerunCommand() *cobra.Command {
	var (
		jobs       []string
		fromFailed bool
	)

	cmd := &cobra.Command{
		Use:   "rerun <workflow-id>",
		Short: "Rerun a workflow",
		Long:  "Rerun a workflow, optionally restricted to a job subset or to failed jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var opts *circleci.RerunOptions
			if len(jobs) > 0 || fromFailed {
				opts = &circleci.RerunOptions{
					Jobs:       jobs,
					FromFailed: fromFailed,
				}
			}

			rerun, err := client.Workflows().Rerun(context.Background(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to rerun workflow: %w", err)
			}

			fmt.Printf("Rerun accepted: workflow %s\n", rerun.WorkflowID)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&jobs, "job", nil, "job id to rerun (repeatable)")
	cmd.Flags().BoolVar(&fromFailed, "from-failed", false, "rerun from failed jobs")

	return cmd
}

func newWorkflowsApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <workflow-id> <approval-request-id>",
		Short: "Approve a pending approval job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Workflows().ApproveJob(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to approve job: %w", err)
			}

			fmt.Println("Approval accepted")

			return nil
		},
	}
}

func newWorkflowsJobsCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "jobs <workflow-id>",
		Short: "List the jobs of a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			workflowID := args[0]

			var jobs []circleci.WorkflowJob

			if allPages {
				it := circleci.NewPageIterator(ctx, func(ctx context.Context, token string) (*circleci.ListResponse[circleci.WorkflowJob], error) {
					return client.Workflows().ListJobs(ctx, workflowID, &circleci.PageParams{PageToken: token})
				})

				jobs, err = it.All()
			} else {
				var page *circleci.ListResponse[circleci.WorkflowJob]

				page, err = client.Workflows().ListJobs(ctx, workflowID, nil)
				if page != nil {
					jobs = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list workflow jobs: %w", err)
			}

			return outputWorkflowJobs(jobs)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func outputWorkflows(workflows []circleci.Workflow) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(workflows)
	case OutputFormatYAML:
		return outputYAML(workflows)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Status", "Pipeline", "Stopped")

		for _, workflow := range workflows {
			_ = table.Append(workflow.ID, workflow.Name, string(workflow.Status),
				fmt.Sprintf("%d", workflow.PipelineNumber), formatTime(workflow.StoppedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func outputWorkflowJobs(jobs []circleci.WorkflowJob) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(jobs)
	case OutputFormatYAML:
		return outputYAML(jobs)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Type", "Status", "Started", "Stopped")

		for _, job := range jobs {
			_ = table.Append(job.Name, job.Type, job.Status, formatTime(job.StartedAt), formatTime(job.StoppedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
