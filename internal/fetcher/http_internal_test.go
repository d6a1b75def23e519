package fetcher

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper is a mock for http.RoundTripper.
type mockRoundTripper struct {
	response *http.Response
	err      error
	lastReq  *http.Request
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func TestGetResponse(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := t.Context()

	testCases := []struct {
		name           string
		mockResponse   *http.Response
		mockError      error
		baseURL        string
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "Successful request (200 OK)",
			mockResponse: &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("{}")),
			},
			baseURL: "http://test.com/data",
		},
		{
			name: "Server Error (500)",
			mockResponse: &http.Response{
				StatusCode: http.StatusInternalServerError,
				Status:     "500 Internal Server Error",
				Body:       io.NopCloser(strings.NewReader("Error")),
			},
			baseURL:        "http://test.com/data",
			expectError:    true,
			expectedErrMsg: "status code error: [500]",
		},
		{
			name:           "Network error",
			mockError:      errors.New("connection failed"),
			baseURL:        "http://test.com/data",
			expectError:    true,
			expectedErrMsg: "connection failed",
		},
		{
			name:           "Invalid base URL",
			baseURL:        "://invalid-url",
			expectError:    true,
			expectedErrMsg: "failed to parse base URL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt := &mockRoundTripper{response: tc.mockResponse, err: tc.mockError}

			h := NewHTTP(logger, tc.baseURL)
			h.client = &http.Client{Transport: rt}

			resp, err := h.getResponse(ctx, "sites.json")

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				return
			}

			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "http://test.com/data/sites.json", rt.lastReq.URL.String())
			assert.Equal(t, "no-store", rt.lastReq.Header.Get("Cache-Control"))
		})
	}
}

func TestFetch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewHTTP(logger, "http://test.com/")
	h.client = &http.Client{Transport: &mockRoundTripper{
		response: &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"sites_ok":2}`)),
		},
	}}

	body, err := h.Fetch(t.Context(), "summary.json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"sites_ok":2}`, string(body))
}

func TestFetch_StatusError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewHTTP(logger, "http://test.com/")
	h.client = &http.Client{Transport: &mockRoundTripper{
		response: &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       io.NopCloser(strings.NewReader("")),
		},
	}}

	body, err := h.Fetch(t.Context(), "errors.json")

	assert.Nil(t, body)
	require.ErrorIs(t, err, ErrStatus)
	require.ErrorContains(t, err, "failed to get response")
}
