// Package fetcher reads the dashboard documents over HTTP or from a directory.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// ErrStatus is returned when the server answers with a non-200 status.
var ErrStatus = errors.New("status code error")

// HTTP fetches documents relative to a base URL.
type HTTP struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

// NewHTTP creates a fetcher for documents published under baseURL.
func NewHTTP(log *slog.Logger, baseURL string) *HTTP {
	return &HTTP{log: log, baseURL: baseURL, client: http.DefaultClient}
}

// Fetch downloads one document by name.
func (h *HTTP) Fetch(ctx context.Context, name string) ([]byte, error) {
	resp, err := h.getResponse(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get response: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body of %s: %w", name, err)
	}

	return body, nil
}

func (h *HTTP) getResponse(ctx context.Context, name string) (*http.Response, error) {
	base, err := url.Parse(h.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", h.baseURL, err)
	}
	reqURL := base.JoinPath(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}

	req.Header.Add("User-Agent", "Mozilla/5.0 (compatible; GoHttpClient/1.0)")
	req.Header.Add("Cache-Control", "no-store")

	h.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", reqURL.String(), err)
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%w: [%d] %s", ErrStatus, res.StatusCode, res.Status)
	}

	h.log.DebugContext(ctx, "Successfully received http response", "document", name, "status code", res.StatusCode)

	return res, nil
}
