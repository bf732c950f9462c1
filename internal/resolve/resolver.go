// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve queries chemical identity sources and normalizes their
// answers into a single record shape.
//
// Two sources are supported: the PubChem PUG REST API (structured JSON)
// and English Wikipedia article infoboxes (semi-structured HTML). Both
// degrade every failure class — transport error, non-200 status, malformed
// body, no match — to the same sentinel-valued Resolution. The failure
// classes are deliberately indistinguishable in the output; callers that
// need diagnostics must watch the per-item progress stream instead.
package resolve

import (
	"context"

	"github.com/pdiddy/chemreg/pkg/types"
)

// Resolver resolves one substance name against one source. Implementations
// never fail: every error path yields types.Unresolved(), so the batch
// orchestrator only ever observes sentinel data.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, substance string) types.Resolution
}
