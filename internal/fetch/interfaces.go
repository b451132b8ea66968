package fetch

import (
	"context"

	"github.com/pagepeek/pagepeek/internal/model"
)

// Fetcher defines the interface for the page transport.
type Fetcher interface {
	// Fetch performs one GET against pageURL and returns the raw response.
	// The context carries the caller's deadline; a nil error means the
	// response was read fully, whatever its status code.
	Fetch(ctx context.Context, pageURL string) (*model.FetchResponse, error)
}
