// Package authorization calls the external authorization oracle that
// must approve every transfer.
package authorization

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Service decides whether a transfer is authorized.
type Service interface {
	CheckAuthorization(ctx context.Context) (bool, error)
}

type service struct {
	url    string
	client *http.Client
}

// NewService creates an authorization client for the given endpoint.
func NewService(url string) Service {
	return &service{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// CheckAuthorization performs the external lookup. A 200 response
// authorizes the transfer; any other status denies it. The error
// return is reserved for transport failures, which callers report as
// an unavailable authorization service rather than a denial.
func (s *service) CheckAuthorization(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build authorization request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("authorization service unreachable: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
