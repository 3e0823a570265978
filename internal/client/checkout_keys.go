package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/circleci-client/internal/http"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// CheckoutKeysClient implements circleci.CheckoutKeysClient.
type CheckoutKeysClient struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug
}

// NewCheckoutKeysClient creates a new checkout keys client.
func NewCheckoutKeysClient(httpClient *http.Client, slug *circleci.ProjectSlug) *CheckoutKeysClient {
	return &CheckoutKeysClient{
		httpClient: httpClient,
		slug:       slug,
	}
}

// List implements circleci.CheckoutKeysClient.List.
func (c *CheckoutKeysClient) List(ctx context.Context, params *circleci.PageParams) (*circleci.ListResponse[circleci.CheckoutKey], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/checkout-key", slug)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing checkout keys: %w", err)
	}

	var result circleci.ListResponse[circleci.CheckoutKey]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing checkout keys list response: %w", err)
	}

	return &result, nil
}

// Create implements circleci.CheckoutKeysClient.Create.
func (c *CheckoutKeysClient) Create(ctx context.Context, keyType circleci.CheckoutKeyType) (*circleci.CheckoutKey, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/checkout-key", slug)
	body := map[string]string{"type": string(keyType)}

	resp, err := c.httpClient.Post(ctx, path, body, nethttp.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating checkout key: %w", err)
	}

	var key circleci.CheckoutKey
	if err := json.Unmarshal(resp.Body, &key); err != nil {
		return nil, fmt.Errorf("parsing checkout key response: %w", err)
	}

	return &key, nil
}

// Get implements circleci.CheckoutKeysClient.Get.
func (c *CheckoutKeysClient) Get(ctx context.Context, fingerprint string) (*circleci.CheckoutKey, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/checkout-key/%s", slug, url.PathEscape(fingerprint))

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting checkout key: %w", err)
	}

	var key circleci.CheckoutKey
	if err := json.Unmarshal(resp.Body, &key); err != nil {
		return nil, fmt.Errorf("parsing checkout key response: %w", err)
	}

	return &key, nil
}

// Delete implements circleci.CheckoutKeysClient.Delete.
func (c *CheckoutKeysClient) Delete(ctx context.Context, fingerprint string) (*circleci.MessageResponse, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/checkout-key/%s", slug, url.PathEscape(fingerprint))

	resp, err := c.httpClient.Delete(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("deleting checkout key: %w", err)
	}

	var message circleci.MessageResponse
	if err := json.Unmarshal(resp.Body, &message); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &message, nil
}
