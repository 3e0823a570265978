// Package circleclient provides the primary entry point for constructing a
// CircleCI API v2 client that implements the circleci.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the circleci package. Most applications
// should import circleclient to build a client, then use the returned
// circleci.Client to access resource-specific clients, for example
// Pipelines(), Workflows(), EnvVars(), etc.
//
// Quick start
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
//
//	  cli, err := circleclient.New(&circleci.Config{
//	    Token:       "your-api-token",
//	    ProjectSlug: circleci.NewProjectSlug(circleci.VCSGitHub, "acme", "widget"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  project, err := cli.Projects().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//	}
//
// The token is sent on every request in the Circle-Token header. Methods that
// are not project-scoped (workflows by id, pipelines by id, org-wide pipeline
// listings) work without a ProjectSlug.
package circleclient
