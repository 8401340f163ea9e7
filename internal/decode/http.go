// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/etnolekt/dwarconv/internal/httputil"
	"github.com/etnolekt/dwarconv/pkg/types"
)

// HTTPBackend decodes idcodes through a remote decoder service. The batch
// is POSTed as JSON and the response body carries the same line-oriented
// "<index>:<result>" output as the node script. Rate-limited responses are
// retried with exponential backoff.
type HTTPBackend struct {
	// URL is the decoder service endpoint.
	URL string

	// Client is optional; nil uses a client with the default decode
	// timeout.
	Client *http.Client

	// MaxRetries bounds retries on HTTP 429. Zero uses the httputil
	// default.
	MaxRetries int

	// UserAgent is sent with each request when non-empty.
	UserAgent string
}

// decodeRequest is the service request payload.
type decodeRequest struct {
	IDCodes []string `json:"idcodes"`
}

// Name implements Backend.
func (h *HTTPBackend) Name() string { return string(types.BackendHTTP) }

// Decode implements Backend.
func (h *HTTPBackend) Decode(ctx context.Context, idcodes []string) (string, error) {
	body, err := json.Marshal(decodeRequest{IDCodes: idcodes})
	if err != nil {
		return "", fmt.Errorf("encoding batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: types.DefaultDecodeTimeout}
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, h.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling decoder service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("decoder service returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading decoder response: %w", err)
	}
	return string(data), nil
}
