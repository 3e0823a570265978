// Package circleci provides types, interfaces, and helpers for working with
// the CircleCI API v2.
//
// # Overview
//
// The circleci package defines the domain types (e.g., Project, Pipeline,
// Workflow, EnvVar) and the interfaces for resource-oriented clients (e.g.,
// PipelinesClient, WorkflowsClient). A concrete implementation of these
// clients is provided by the circleclient package, which wires configuration
// and transport. Most consumers should import circleclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/circleci-client/pkg/circleci"
//	  "github.com/fivetwenty-io/circleci-client/pkg/circleclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := circleclient.New(&circleci.Config{
//	    Token:       "...",
//	    ProjectSlug: circleci.NewProjectSlug(circleci.VCSGitHub, "acme", "widget"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // First page of the project's pipelines
//	  pipelines, err := cli.Pipelines().ListForProject(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = pipelines
//	}
//
// # Pagination
//
// Every list method returns one page plus an opaque next_page_token; no
// method follows pages on its own. Loop manually by feeding the token back
// through the params type, or use PageIterator:
//
//	it := circleci.NewPageIterator(ctx, func(ctx context.Context, token string) (*circleci.ListResponse[circleci.Pipeline], error) {
//	  return cli.Pipelines().ListForProject(ctx, &circleci.ProjectPipelineParams{PageToken: token})
//	})
//	all, err := it.All()
//
// # Errors
//
// A response whose status differs from the status the endpoint declares
// surfaces as *APIError carrying the message, the observed status code, and
// the raw body. Project-scoped methods called without a configured slug fail
// with ErrProjectSlugRequired before any network I/O. Transport faults
// propagate as ordinary wrapped errors.
package circleci
