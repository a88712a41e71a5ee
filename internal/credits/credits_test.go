package credits

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_SuccessPassesThrough(t *testing.T) {
	gateway := NewGateway()
	calls := 0

	err := gateway.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGateway_InsufficientBalanceIsDedicatedSignal(t *testing.T) {
	gateway := NewGateway()

	err := gateway.Do(context.Background(), func(context.Context) error {
		return fmt.Errorf("generation rejected: %w", &InsufficientCreditsError{Required: 10, CurrentBalance: 3})
	})

	var insufficient *InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 10.0, insufficient.Required)
	assert.Equal(t, 3.0, insufficient.CurrentBalance)

	var generic *GatewayError
	assert.False(t, errors.As(err, &generic), "insufficient balance must not take the generic path")
}

func TestGateway_OtherFailuresAreGenericAndNotRetried(t *testing.T) {
	gateway := NewGateway()
	calls := 0

	err := gateway.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("upstream timeout")
	})

	var generic *GatewayError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, 1, calls, "credit-consuming actions are never retried")
}

func TestDecodeInsufficient_Extracts402Body(t *testing.T) {
	recorder := httptest.NewRecorder()
	recorder.WriteHeader(http.StatusPaymentRequired)
	_, _ = recorder.WriteString(`{"required": 25, "current_balance": 5.5}`)

	err := DecodeInsufficient(recorder.Result())
	var insufficient *InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 25.0, insufficient.Required)
	assert.Equal(t, 5.5, insufficient.CurrentBalance)
}

func TestDecodeInsufficient_IgnoresOtherStatuses(t *testing.T) {
	recorder := httptest.NewRecorder()
	recorder.WriteHeader(http.StatusInternalServerError)

	assert.NoError(t, DecodeInsufficient(recorder.Result()))
}

func TestDecodeInsufficient_UnreadableBodyStillSignals(t *testing.T) {
	recorder := httptest.NewRecorder()
	recorder.WriteHeader(http.StatusPaymentRequired)
	_, _ = recorder.WriteString(`garbage`)

	err := DecodeInsufficient(recorder.Result())
	var insufficient *InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.Zero(t, insufficient.Required)
}

func TestBalanceClient_Balance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balance", r.URL.Path)
		assert.Equal(t, "owner-1", r.URL.Query().Get("owner_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"balance": 42}`))
	}))
	defer server.Close()

	client := NewBalanceClient(server.URL)
	balance, err := client.Balance(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 42.0, balance)
}

func TestBalanceClient_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewBalanceClient(server.URL)
	_, err := client.Balance(context.Background(), "owner-1")
	assert.Error(t, err)
}
