// Package creation hands a finished resume off to the document service.
// The wizard's final step terminates here: after creation the session no
// longer owns the resume.
package creation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds the document service round trip.
const DefaultTimeout = 30 * time.Second

// Client creates finished resume documents in the document service.
// It satisfies the wizard's Creator interface.
type Client struct {
	baseURL    string
	ownerID    string
	httpClient *http.Client
}

// NewClient creates a document service client for an owner.
func NewClient(baseURL, ownerID string) *Client {
	return &Client{
		baseURL:    baseURL,
		ownerID:    ownerID,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// CreateDocument submits the finished document and returns its new ID.
func (c *Client) CreateDocument(ctx context.Context, doc *types.Document) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"owner_id": c.ownerID,
		"document": doc,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	url := c.baseURL + "/documents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build creation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("creation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read creation response: %w", err)
	}

	var result struct {
		DocumentID string `json:"document_id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode creation response: %w", err)
	}
	if result.DocumentID == "" {
		return "", fmt.Errorf("document service returned no document ID")
	}
	return result.DocumentID, nil
}
