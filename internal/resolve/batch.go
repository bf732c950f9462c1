// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/chemreg/pkg/types"
)

// BatchResult holds the outcome of a batch resolution run.
type BatchResult struct {
	// Rows is the flattened result table: one row per (substance, synonym)
	// pair, in input order then synonym order. Append-only; substances
	// with no synonyms contribute nothing.
	Rows []types.OutputRow

	// ViaPrimary counts substances whose kept resolution came from the
	// primary source, ViaFallback from the fallback. Empty counts
	// substances that produced no rows at all.
	ViaPrimary  int
	ViaFallback int
	Empty       int
}

// Total returns the number of substances processed.
func (r BatchResult) Total() int {
	return r.ViaPrimary + r.ViaFallback + r.Empty
}

// ResolveBatch resolves each substance in input order, printing per-item
// status to w. The primary resolver is tried first; when it yields no CAS
// number its result is discarded entirely and the fallback resolver is
// consulted instead. Whatever resolution is kept is flattened into one
// output row per synonym. Resolvers never fail, so a run always processes
// every name; substances nothing could resolve simply contribute no rows.
func ResolveBatch(ctx context.Context, primary, fallback Resolver, substances []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, substance := range substances {
		res := primary.Resolve(ctx, substance)
		source := primary.Name()
		usedFallback := false
		if !res.HasCAS() {
			res = fallback.Resolve(ctx, substance)
			source = fallback.Name()
			usedFallback = true
		}

		for _, synonym := range res.Synonyms {
			result.Rows = append(result.Rows, types.OutputRow{
				Substance:      substance,
				CAS:            res.CAS,
				Synonym:        synonym,
				CompoundSource: res.CompoundSource,
				SynonymSource:  res.SynonymSource,
			})
		}

		switch {
		case len(res.Synonyms) == 0:
			result.Empty++
			fmt.Fprintf(w, "unresolved: %s\n", substance)
		case usedFallback:
			result.ViaFallback++
			fmt.Fprintf(w, "resolved: %s via %s (%d synonyms)\n", substance, source, len(res.Synonyms))
		default:
			result.ViaPrimary++
			fmt.Fprintf(w, "resolved: %s via %s (%d synonyms)\n", substance, source, len(res.Synonyms))
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d via primary, %d via fallback, %d unresolved (total: %d)\n",
		result.ViaPrimary, result.ViaFallback, result.Empty, result.Total())
	return result
}
