package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// NewPipelinesCommand creates the pipelines command group.
func NewPipelinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pipelines",
		Aliases: []string{"pipeline", "pl"},
		Short:   "Inspect and trigger pipelines",
	}

	cmd.AddCommand(newPipelinesListCommand())
	cmd.AddCommand(newPipelinesMineCommand())
	cmd.AddCommand(newPipelinesOrgCommand())
	cmd.AddCommand(newPipelinesGetCommand())
	cmd.AddCommand(newPipelinesNumberCommand())
	cmd.AddCommand(newPipelinesConfigCommand())
	cmd.AddCommand(newPipelinesWorkflowsCommand())
	cmd.AddCommand(newPipelinesTriggerCommand())

	return cmd
}

func newPipelinesListCommand() *cobra.Command {
	var (
		branch   string
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pipelines of the configured project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var pipelines []circleci.Pipeline

			if allPages {
				it := circleci.NewPageIterator(ctx, func(ctx context.Context, token string) (*circleci.ListResponse[circleci.Pipeline], error) {
					return client.Pipelines().ListForProject(ctx, &circleci.ProjectPipelineParams{
						Branch:    branch,
						PageToken: token,
					})
				})

				pipelines, err = it.All()
			} else {
				var page *circleci.ListResponse[circleci.Pipeline]

				page, err = client.Pipelines().ListForProject(ctx, &circleci.ProjectPipelineParams{Branch: branch})
				if page != nil {
					pipelines = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list project pipelines: %w", err)
			}

			return outputPipelines(pipelines)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newPipelinesMineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own pipelines of the configured project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Pipelines().ListMineForProject(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list own pipelines: %w", err)
			}

			return outputPipelines(page.Items)
		},
	}
}

func newPipelinesOrgCommand() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "org <org-slug>",
		Short: "List pipelines across an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Pipelines().List(context.Background(), &circleci.PipelineListParams{
				OrgSlug: args[0],
				Mine:    mine,
			})
			if err != nil {
				return fmt.Errorf("failed to list pipelines: %w", err)
			}

			return outputPipelines(page.Items)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only pipelines you triggered")

	return cmd
}

func newPipelinesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <pipeline-id>",
		Short: "Show a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			pipeline, err := client.Pipelines().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get pipeline: %w", err)
			}

			return outputPipelines([]circleci.Pipeline{*pipeline})
		},
	}
}

func newPipelinesNumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "number <pipeline-number>",
		Short: "Show a project pipeline by its number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pipeline number %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			pipeline, err := client.Pipelines().GetByNumber(context.Background(), number)
			if err != nil {
				return fmt.Errorf("failed to get pipeline by number: %w", err)
			}

			return outputPipelines([]circleci.Pipeline{*pipeline})
		},
	}
}

func newPipelinesConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config <pipeline-id>",
		Short: "Show a pipeline's configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			config, err := client.Pipelines().GetConfig(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get pipeline config: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(config)
			case OutputFormatYAML:
				return outputYAML(config)
			default:
				fmt.Println(config.Source)
			}

			return nil
		},
	}
}

func newPipelinesWorkflowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workflows <pipeline-id>",
		Short: "List the workflows of a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Pipelines().ListWorkflows(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list pipeline workflows: %w", err)
			}

			return outputWorkflows(page.Items)
		},
	}
}

func newPipelinesTriggerCommand() *cobra.Command {
	var (
		branch string
		tag    string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Trigger a new pipeline",
		Long:  "Trigger a new pipeline for the configured project on a branch or tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var opts *circleci.TriggerPipelineOptions
			if branch != "" || tag != "" || len(params) > 0 {
				opts = &circleci.TriggerPipelineOptions{
					Branch: branch,
					Tag:    tag,
				}

				if len(params) > 0 {
					opts.Parameters = make(map[string]interface{}, len(params))

					for _, param := range params {
						key, value, found := strings.Cut(param, "=")
						if !found {
							return fmt.Errorf("invalid parameter %q: expected key=value", param)
						}

						opts.Parameters[key] = value
					}
				}
			}

			pipeline, err := client.Pipelines().Trigger(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to trigger pipeline: %w", err)
			}

			return outputPipelines([]circleci.Pipeline{*pipeline})
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "branch to build")
	cmd.Flags().StringVar(&tag, "tag", "", "tag to build")
	cmd.Flags().StringSliceVar(&params, "param", nil, "pipeline parameter as key=value (repeatable)")

	return cmd
}

func outputPipelines(pipelines []circleci.Pipeline) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(pipelines)
	case OutputFormatYAML:
		return outputYAML(pipelines)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "ID", "State", "Created")

		for _, pipeline := range pipelines {
			_ = table.Append(fmt.Sprintf("%d", pipeline.Number), pipeline.ID, pipeline.State,
				pipeline.CreatedAt.Format("2006-01-02 15:04"))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
