// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across resolvers.
package httputil

import (
	"net/http"

	"github.com/pdiddy/chemreg/pkg/types"
)

// userAgentTransport applies a User-Agent header to every outgoing
// request that does not already carry one.
type userAgentTransport struct {
	base  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent != "" && req.Header.Get("User-Agent") == "" {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.agent)
	}
	return t.base.RoundTrip(req)
}

// NewClient returns an *http.Client with the configured timeout and a
// transport that identifies the tool to the upstream services. Both
// PubChem and Wikipedia ask automated clients for a descriptive
// User-Agent with a contact address.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:  http.DefaultTransport,
			agent: cfg.UserAgent,
		},
	}
}
