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

// NewCheckoutKeysCommand creates the checkout-keys command group.
func NewCheckoutKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout-keys",
		Aliases: []string{"checkout-key", "keys"},
		Short:   "Manage project checkout keys",
	}

	cmd.AddCommand(newCheckoutKeysListCommand())
	cmd.AddCommand(newCheckoutKeysCreateCommand())
	cmd.AddCommand(newCheckoutKeysGetCommand())
	cmd.AddCommand(newCheckoutKeysDeleteCommand())

	return cmd
}

func newCheckoutKeysListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checkout keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var keys []circleci.CheckoutKey

			if allPages {
				it := circleci.NewPageIterator(ctx, func(ctx context.Context, token string) (*circleci.ListResponse[circleci.CheckoutKey], error) {
					return client.CheckoutKeys().List(ctx, &circleci.PageParams{PageToken: token})
				})

				keys, err = it.All()
			} else {
				var page *circleci.ListResponse[circleci.CheckoutKey]

				page, err = client.CheckoutKeys().List(ctx, nil)
				if page != nil {
					keys = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list checkout keys: %w", err)
			}

			return outputCheckoutKeys(keys)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newCheckoutKeysCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <user-key|deploy-key>",
		Short: "Create a checkout key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := client.CheckoutKeys().Create(context.Background(), circleci.CheckoutKeyType(args[0]))
			if err != nil {
				return fmt.Errorf("failed to create checkout key: %w", err)
			}

			return outputCheckoutKeys([]circleci.CheckoutKey{*key})
		},
	}
}

func newCheckoutKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <fingerprint>",
		Short: "Show a checkout key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := client.CheckoutKeys().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get checkout key: %w", err)
			}

			return outputCheckoutKeys([]circleci.CheckoutKey{*key})
		},
	}
}

func newCheckoutKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <fingerprint>",
		Short: "Delete a checkout key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			message, err := client.CheckoutKeys().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete checkout key: %w", err)
			}

			fmt.Println(message.Message)

			return nil
		},
	}
}

func outputCheckoutKeys(keys []circleci.CheckoutKey) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(keys)
	case OutputFormatYAML:
		return outputYAML(keys)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Fingerprint", "Type", "Preferred", "Created")

		for _, key := range keys {
			_ = table.Append(key.Fingerprint, key.Type, fmt.Sprintf("%t", key.Preferred), key.CreatedAt.Format("2006-01-02"))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
