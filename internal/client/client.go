// Package client implements the circleci.Client interface on top of the
// internal HTTP dispatcher.
package client

import (
	"github.com/fivetwenty-io/circleci-client/internal/constants"
	"github.com/fivetwenty-io/circleci-client/internal/http"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// Client implements the circleci.Client interface. It is stateless aside
// from the immutable API token and the optional default project slug set at
// construction.
type Client struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug

	// Resource clients
	projects     circleci.ProjectsClient
	checkoutKeys circleci.CheckoutKeysClient
	envVars      circleci.EnvVarsClient
	workflows    circleci.WorkflowsClient
	pipelines    circleci.PipelinesClient
	insights     circleci.InsightsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *circleci.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from config.
func New(config *circleci.Config) (*Client, error) {
	if config == nil {
		return nil, circleci.ErrConfigRequired
	}

	if config.Token == "" {
		return nil, circleci.ErrTokenRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.Token, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		slug:       config.ProjectSlug,
	}

	client.initializeResourceClients()

	return client, nil
}

// Resource client accessors

// Projects implements circleci.Client.Projects.
func (c *Client) Projects() circleci.ProjectsClient {
	return c.projects
}

// CheckoutKeys implements circleci.Client.CheckoutKeys.
func (c *Client) CheckoutKeys() circleci.CheckoutKeysClient {
	return c.checkoutKeys
}

// EnvVars implements circleci.Client.EnvVars.
func (c *Client) EnvVars() circleci.EnvVarsClient {
	return c.envVars
}

// Workflows implements circleci.Client.Workflows.
func (c *Client) Workflows() circleci.WorkflowsClient {
	return c.workflows
}

// Pipelines implements circleci.Client.Pipelines.
func (c *Client) Pipelines() circleci.PipelinesClient {
	return c.pipelines
}

// Insights implements circleci.Client.Insights.
func (c *Client) Insights() circleci.InsightsClient {
	return c.insights
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient, c.slug)
	c.checkoutKeys = NewCheckoutKeysClient(c.httpClient, c.slug)
	c.envVars = NewEnvVarsClient(c.httpClient, c.slug)
	c.workflows = NewWorkflowsClient(c.httpClient)
	c.pipelines = NewPipelinesClient(c.httpClient, c.slug)
	c.insights = NewInsightsClient(c.httpClient, c.slug)
}

// loggerAdapter adapts circleci.Logger to http.Logger.
type loggerAdapter struct {
	logger circleci.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
