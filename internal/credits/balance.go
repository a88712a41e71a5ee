package credits

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BalanceClient queries the billing service's current credit balance. The
// balance is consulted only for display; gating is enforced server-side.
type BalanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBalanceClient creates a balance client for the billing service
func NewBalanceClient(baseURL string) *BalanceClient {
	return &BalanceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Balance returns the current credit balance for an owner
func (c *BalanceClient) Balance(ctx context.Context, ownerID string) (float64, error) {
	url := fmt.Sprintf("%s/balance?owner_id=%s", c.baseURL, ownerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build balance request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance service returned status %d", resp.StatusCode)
	}

	var body struct {
		Balance float64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode balance response: %w", err)
	}
	return body.Balance, nil
}
