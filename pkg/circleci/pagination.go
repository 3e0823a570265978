package circleci

import (
	"context"
	"errors"
)

// PageFunc fetches one page of a listing. An empty pageToken requests the
// first page; the returned NextPageToken feeds the next call.
type PageFunc[T any] func(ctx context.Context, pageToken string) (*ListResponse[T], error)

// PageIterator walks a token-paginated listing page by page. No endpoint
// method auto-follows pages; the iterator is the caller-side loop, passing
// each next_page_token back verbatim until the server returns an empty one.
type PageIterator[T any] struct {
	ctx   context.Context
	fetch PageFunc[T]

	items     []T
	index     int
	nextToken string
	started   bool
}

// NewPageIterator creates an iterator over the listing served by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether another item may be available. Before the first
// fetch it is always true; afterwards it is true while buffered items remain
// or a continuation token is outstanding.
func (it *PageIterator[T]) HasNext() bool {
	if !it.started {
		return true
	}

	return it.index < len(it.items) || it.nextToken != ""
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the listing is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	for it.index >= len(it.items) {
		if it.started && it.nextToken == "" {
			return zero, ErrNoMoreItems
		}

		page, err := it.fetch(it.ctx, it.nextToken)
		if err != nil {
			return zero, err
		}

		it.started = true
		it.items = page.Items
		it.index = 0
		it.nextToken = page.NextPageToken

		if len(page.Items) == 0 && page.NextPageToken == "" {
			return zero, ErrNoMoreItems
		}
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// All exhausts the listing and returns every item.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}
