package creation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestClient_CreateDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents", r.URL.Path)

		var body struct {
			OwnerID  string         `json:"owner_id"`
			Document types.Document `json:"document"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "owner-1", body.OwnerID)
		assert.Equal(t, "Dana Smith", body.Document.Contact.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"document_id": "doc-123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "owner-1")
	doc := types.Document{Contact: types.Contact{Name: "Dana Smith"}}

	id, err := client.CreateDocument(context.Background(), &doc)
	require.NoError(t, err)
	assert.Equal(t, "doc-123", id)
}

func TestClient_MissingDocumentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "owner-1")
	_, err := client.CreateDocument(context.Background(), &types.Document{})
	assert.Error(t, err)
}

func TestClient_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "owner-1")
	_, err := client.CreateDocument(context.Background(), &types.Document{})
	assert.Error(t, err)
}
