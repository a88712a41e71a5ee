// Package generate produces AI summary text for a resume. Generation is
// a paid action: the billing tier enforces credit balance and signals
// exhaustion with HTTP 402, which this package surfaces as a dedicated
// error so callers can route users to top-up instead of a retry path.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/credits"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout allows for an upstream LLM round trip.
const DefaultTimeout = 45 * time.Second

// Generator produces a professional summary from the rest of a document.
type Generator interface {
	Summary(ctx context.Context, doc types.Document) (string, error)
}

// HTTPGenerator calls the generation service, which meters credits.
type HTTPGenerator struct {
	baseURL    string
	ownerID    string
	httpClient *http.Client
}

// NewHTTPGenerator creates a generator backed by the generation service.
func NewHTTPGenerator(baseURL, ownerID string) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL:    baseURL,
		ownerID:    ownerID,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Summary requests a generated summary for the document. A 402 response
// becomes an InsufficientCreditsError; the request is never retried
// because a retry could double-charge.
func (g *HTTPGenerator) Summary(ctx context.Context, doc types.Document) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"owner_id": g.ownerID,
		"document": doc,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	url := g.baseURL + "/generate-summary"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := credits.DecodeInsufficient(resp); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	return result.Summary, nil
}
