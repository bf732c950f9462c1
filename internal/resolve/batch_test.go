// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/chemreg/pkg/types"
)

// stubResolver returns canned resolutions and records the names it was
// asked about.
type stubResolver struct {
	name    string
	results map[string]types.Resolution
	calls   []string
}

func (s *stubResolver) Name() string { return s.name }

func (s *stubResolver) Resolve(_ context.Context, substance string) types.Resolution {
	s.calls = append(s.calls, substance)
	if res, ok := s.results[substance]; ok {
		return res
	}
	return types.Unresolved()
}

func resolutionWithCAS(cas string, synonyms ...string) types.Resolution {
	return types.Resolution{
		CAS:            cas,
		Synonyms:       synonyms,
		CompoundSource: "https://primary.example/" + cas,
		SynonymSource:  "https://primary.example/syn/" + cas,
	}
}

func TestResolveBatchPrimarySufficient(t *testing.T) {
	primary := &stubResolver{name: "primary", results: map[string]types.Resolution{
		"ethanol": resolutionWithCAS("64-17-5", "ethanol", "ethyl alcohol"),
	}}
	fallback := &stubResolver{name: "fallback"}

	var buf bytes.Buffer
	result := ResolveBatch(context.Background(), primary, fallback, []string{"ethanol"}, &buf)

	if len(fallback.calls) != 0 {
		t.Errorf("fallback consulted for %v, want no calls", fallback.calls)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(result.Rows))
	}
	if result.Rows[0].Synonym != "ethanol" || result.Rows[1].Synonym != "ethyl alcohol" {
		t.Errorf("Rows = %+v, synonym order wrong", result.Rows)
	}
	if result.Rows[0].CAS != "64-17-5" || result.Rows[0].Substance != "ethanol" {
		t.Errorf("Rows[0] = %+v", result.Rows[0])
	}
	if result.ViaPrimary != 1 || result.ViaFallback != 0 || result.Empty != 0 {
		t.Errorf("counters = %d/%d/%d", result.ViaPrimary, result.ViaFallback, result.Empty)
	}
}

func TestResolveBatchFallsBackOnSentinelCAS(t *testing.T) {
	// The primary found synonyms but no CAS-shaped entry: its result is
	// discarded entirely, not merged.
	primary := &stubResolver{name: "primary", results: map[string]types.Resolution{
		"caffeine": {
			CAS:            types.NotAvailable,
			Synonyms:       []string{"primary-only-name"},
			CompoundSource: "https://primary.example/x",
			SynonymSource:  "https://primary.example/y",
		},
	}}
	fallback := &stubResolver{name: "fallback", results: map[string]types.Resolution{
		"caffeine": {
			CAS:            "58-08-2",
			Synonyms:       []string{"1,3,7-Trimethylxanthine", "Theine"},
			CompoundSource: "https://fallback.example/Caffeine",
			SynonymSource:  "https://fallback.example/Caffeine",
		},
	}}

	var buf bytes.Buffer
	result := ResolveBatch(context.Background(), primary, fallback, []string{"caffeine"}, &buf)

	if len(fallback.calls) != 1 {
		t.Fatalf("fallback calls = %v, want one", fallback.calls)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(result.Rows))
	}
	for _, row := range result.Rows {
		if row.Synonym == "primary-only-name" {
			t.Error("discarded primary synonyms leaked into the table")
		}
		if row.CompoundSource != "https://fallback.example/Caffeine" {
			t.Errorf("CompoundSource = %q, want the fallback page", row.CompoundSource)
		}
	}
	if result.ViaFallback != 1 {
		t.Errorf("ViaFallback = %d, want 1", result.ViaFallback)
	}
}

func TestResolveBatchNoSynonymsNoRows(t *testing.T) {
	primary := &stubResolver{name: "primary"}
	fallback := &stubResolver{name: "fallback"}

	var buf bytes.Buffer
	result := ResolveBatch(context.Background(), primary, fallback, []string{"ZZZNOTFOUND"}, &buf)

	if len(result.Rows) != 0 {
		t.Errorf("Rows = %+v, want none", result.Rows)
	}
	if result.Empty != 1 || result.Total() != 1 {
		t.Errorf("Empty = %d, Total = %d", result.Empty, result.Total())
	}
	if !strings.Contains(buf.String(), "unresolved: ZZZNOTFOUND") {
		t.Errorf("progress output = %q, want unresolved line", buf.String())
	}
}

func TestResolveBatchOrderIsStable(t *testing.T) {
	primary := &stubResolver{name: "primary", results: map[string]types.Resolution{
		"a": resolutionWithCAS("1-1-1", "a1", "a2"),
		"b": resolutionWithCAS("2-2-2", "b1"),
		"c": resolutionWithCAS("3-3-3", "c1", "c2", "c3"),
	}}
	fallback := &stubResolver{name: "fallback"}

	var buf bytes.Buffer
	result := ResolveBatch(context.Background(), primary, fallback, []string{"b", "a", "c"}, &buf)

	wantSynonyms := []string{"b1", "a1", "a2", "c1", "c2", "c3"}
	if len(result.Rows) != len(wantSynonyms) {
		t.Fatalf("len(Rows) = %d, want %d", len(result.Rows), len(wantSynonyms))
	}
	for i, want := range wantSynonyms {
		if result.Rows[i].Synonym != want {
			t.Errorf("Rows[%d].Synonym = %q, want %q", i, result.Rows[i].Synonym, want)
		}
	}
	if result.ViaPrimary != 3 {
		t.Errorf("ViaPrimary = %d, want 3", result.ViaPrimary)
	}
}

func TestResolveBatchSummaryLine(t *testing.T) {
	primary := &stubResolver{name: "primary", results: map[string]types.Resolution{
		"a": resolutionWithCAS("1-1-1", "a1"),
	}}
	fallback := &stubResolver{name: "fallback", results: map[string]types.Resolution{
		"b": resolutionWithCAS("2-2-2", "b1"),
	}}

	var buf bytes.Buffer
	ResolveBatch(context.Background(), primary, fallback, []string{"a", "b", "c"}, &buf)

	if !strings.Contains(buf.String(), "1 via primary, 1 via fallback, 1 unresolved (total: 3)") {
		t.Errorf("summary missing from output:\n%s", buf.String())
	}
}
