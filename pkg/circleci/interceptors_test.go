package circleci_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := circleci.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddRequestInterceptor(func(ctx context.Context, req *circleci.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *circleci.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &circleci.Request{
		Method: "GET",
		Path:   "me",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := circleci.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *circleci.Request, resp *circleci.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *circleci.Request, resp *circleci.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &circleci.Request{
		Method: "GET",
		Path:   "me",
	}
	resp := &circleci.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := circleci.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &circleci.Request{
		Method: "GET",
		Path:   "me",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := circleci.RateLimitInterceptor(10)
	ctx := context.Background()
	req := &circleci.Request{
		Method: "GET",
		Path:   "pipeline",
	}

	// The bucket starts full, so the first calls pass without blocking.
	for i := 0; i < 10; i++ {
		err := interceptor(ctx, req)
		require.NoError(t, err)
	}

	// With the bucket drained a canceled context aborts the wait.
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(canceled, req)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMetricsCollector(t *testing.T) {
	collector := circleci.NewMetricsCollector()

	var notifiedEndpoint string
	var notifiedMetrics *circleci.Metrics

	collector.SetOnChange(func(endpoint string, metrics *circleci.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	// Set up interceptors
	requestInterceptor := circleci.MetricsRequestInterceptor(collector)
	responseInterceptor := circleci.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &circleci.Request{
		Method: "GET",
		Path:   "pipeline",
	}

	// Execute request interceptor
	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	// Simulate some delay
	time.Sleep(10 * time.Millisecond)

	// Execute response interceptor with success
	resp := &circleci.Response{
		StatusCode: 200,
	}
	err = responseInterceptor(ctx, req, resp)
	require.NoError(t, err)

	// Check metrics
	assert.Equal(t, "GET pipeline", notifiedEndpoint)
	assert.NotNil(t, notifiedMetrics)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.True(t, notifiedMetrics.AverageLatency > 0)

	// Execute another request with error
	req2 := &circleci.Request{
		Method: "GET",
		Path:   "pipeline",
	}
	resp2 := &circleci.Response{
		StatusCode: 500,
	}
	err = responseInterceptor(ctx, req2, resp2)
	require.NoError(t, err)

	// Check updated metrics
	metrics := collector.GetMetrics("GET pipeline")
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
}
