// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"strings"

	"github.com/pdiddy/chemreg/pkg/types"
)

// IsCASNumber reports whether s is shaped like a CAS registry number:
// exactly two hyphens, and nothing but ASCII digits once the hyphens are
// removed. "64-17-5" qualifies; "64-17-5A" and "64-17-5-1" do not. The
// check is deliberately this loose — group lengths are not validated and
// no checksum is computed, matching how the synonym lists are filtered
// upstream.
func IsCASNumber(s string) bool {
	if strings.Count(s, "-") != 2 {
		return false
	}
	stripped := strings.ReplaceAll(s, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FirstCAS returns the first CAS-shaped string in synonyms, in list order,
// or types.NotAvailable when none matches.
func FirstCAS(synonyms []string) string {
	for _, s := range synonyms {
		if IsCASNumber(s) {
			return s
		}
	}
	return types.NotAvailable
}
