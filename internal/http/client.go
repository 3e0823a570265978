// Package http implements the request dispatcher shared by every endpoint
// method: it builds the target URL, encodes parameters according to the HTTP
// method, attaches the Circle-Token header, performs one round trip, and
// classifies the result against the caller-declared expected status.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/circleci-client/internal/constants"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

const defaultUserAgent = "circleci-client-go"

// Logger is the logging interface used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one dispatch. WantStatus is the status code the endpoint
// declares as success; any other observed status yields a *circleci.APIError.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Body       interface{}
	Headers    map[string]string
	WantStatus int
}

// Response is the raw outcome of a dispatch.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client performs HTTP requests against a fixed base URL, sending the API
// token on every call. Retries are disabled unless configured, so each
// dispatch is exactly one network round trip.
type Client struct {
	baseURL      string
	token        string
	userAgent    string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	interceptors *circleci.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each round trip when the context has no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig opts in to retrying transient failures. Without it every
// dispatch performs a single attempt.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *circleci.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for the given base URL and API token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		userAgent:  defaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do dispatches a request and classifies the response. When the observed
// status differs from WantStatus it returns the response together with a
// *circleci.APIError carrying the body's message field; transport faults
// propagate as plain wrapped errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = data
	}

	headers := make(nethttp.Header)
	headers.Set("Accept", "application/json")
	headers.Set("Circle-Token", c.token)
	headers.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	interceptReq := &circleci.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    rawBody,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = interceptReq.Headers

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	var reqErr error

	switch {
	case req.WantStatus != 0 && httpResp.StatusCode != req.WantStatus:
		reqErr = circleci.NewAPIError(httpResp.StatusCode, body)
	case req.WantStatus == 0 && httpResp.StatusCode >= nethttp.StatusBadRequest:
		reqErr = circleci.NewAPIError(httpResp.StatusCode, body)
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &circleci.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      reqErr,
		})
		if err != nil {
			return resp, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	return resp, reqErr
}

// Get dispatches a GET expecting wantStatus. Parameters go in the query
// string; pass nil to send none.
func (c *Client) Get(ctx context.Context, path string, query url.Values, wantStatus int) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     nethttp.MethodGet,
		Path:       path,
		Query:      query,
		WantStatus: wantStatus,
	})
}

// Delete dispatches a DELETE expecting wantStatus.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, wantStatus int) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     nethttp.MethodDelete,
		Path:       path,
		Query:      query,
		WantStatus: wantStatus,
	})
}

// Post dispatches a POST expecting wantStatus. A non-nil body is serialized
// as JSON; nil sends no body and no content-type header.
func (c *Client) Post(ctx context.Context, path string, body interface{}, wantStatus int) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     nethttp.MethodPost,
		Path:       path,
		Body:       body,
		WantStatus: wantStatus,
	})
}

// Put dispatches a PUT expecting wantStatus.
func (c *Client) Put(ctx context.Context, path string, body interface{}, wantStatus int) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     nethttp.MethodPut,
		Path:       path,
		Body:       body,
		WantStatus: wantStatus,
	})
}
