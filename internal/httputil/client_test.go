// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chemreg/pkg/types"
)

func TestNewClientSetsUserAgent(t *testing.T) {
	var receivedUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "chemreg/0.1 (mailto:ops@example.com)"})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "chemreg/0.1 (mailto:ops@example.com)", receivedUA)
}

func TestNewClientKeepsExplicitUserAgent(t *testing.T) {
	var receivedUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "chemreg/0.1"})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom-agent")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom-agent", receivedUA)
}

func TestNewClientEmptyAgentLeavesDefault(t *testing.T) {
	var receivedUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	// net/http sends its own default agent when none is configured.
	assert.Contains(t, receivedUA, "Go-http-client")
}

func TestNewClientAppliesTimeout(t *testing.T) {
	client := NewClient(types.HTTPConfig{Timeout: 42 * time.Second})
	assert.Equal(t, 42*time.Second, client.Timeout)
}
