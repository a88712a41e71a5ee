// Package extraction turns raw resume text into a canonical document.
// Extraction is slow and asynchronous from the caller's point of view;
// results are applied back to a wizard session which guards against
// stale deliveries.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout is generous because extraction runs an LLM pass upstream.
const DefaultTimeout = 45 * time.Second

// Extractor converts free-form resume text into a normalized document.
type Extractor interface {
	Extract(ctx context.Context, resumeText string) (types.Document, error)
}

// HTTPExtractor calls the resume parsing service over HTTP.
type HTTPExtractor struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPExtractor creates an extractor backed by the parsing service.
func NewHTTPExtractor(baseURL string) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Extract sends the resume text to the parsing service and normalizes
// whatever shape comes back. Upstream payloads are never trusted to be
// well-formed; malformed fields degrade to defaults rather than failing.
func (e *HTTPExtractor) Extract(ctx context.Context, resumeText string) (types.Document, error) {
	if strings.TrimSpace(resumeText) == "" {
		return types.Document{}, &Error{Source: "http", Message: "empty resume text"}
	}

	payload, err := json.Marshal(map[string]string{"resume_text": resumeText})
	if err != nil {
		return types.Document{}, &Error{Source: "http", Message: "failed to encode request", Cause: err}
	}

	url := e.baseURL + "/extract-resume"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return types.Document{}, &Error{Source: "http", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return types.Document{}, &Error{Source: "http", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return types.Document{}, &Error{
			Source:  "http",
			Message: fmt.Sprintf("parsing service returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Document{}, &Error{Source: "http", Message: "failed to read response", Cause: err}
	}

	return normalize.Payload(body), nil
}

// ExtractHTML strips an HTML resume export down to text and extracts from it.
func ExtractHTML(ctx context.Context, extractor Extractor, html string) (types.Document, error) {
	text, err := StripHTML(html)
	if err != nil {
		return types.Document{}, err
	}
	return extractor.Extract(ctx, text)
}
