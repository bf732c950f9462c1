// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NotAvailable is the sentinel recorded wherever a value could not be
// obtained. Every field of a Resolution and an OutputRow is always a
// non-empty string; absence and failure are both expressed as this
// sentinel, never as an empty or missing value. Callers rely on that.
const NotAvailable = "N/A"

// Resolution is the normalized outcome of resolving one substance name
// against one source. It is constructed fresh per query and never mutated
// after construction.
type Resolution struct {
	// CAS is the CAS registry number, or NotAvailable.
	CAS string `json:"cas" yaml:"cas"`

	// Synonyms lists alternate names for the substance, in source order.
	// May be empty.
	Synonyms []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`

	// CompoundSource is a citation URL for the compound record, or NotAvailable.
	CompoundSource string `json:"compound_source" yaml:"compound_source"`

	// SynonymSource is a citation URL for the synonym list, or NotAvailable.
	SynonymSource string `json:"synonym_source" yaml:"synonym_source"`
}

// Unresolved returns the all-sentinel resolution every failure path
// degrades to.
func Unresolved() Resolution {
	return Resolution{
		CAS:            NotAvailable,
		CompoundSource: NotAvailable,
		SynonymSource:  NotAvailable,
	}
}

// HasCAS reports whether the resolution carries a usable CAS number.
// The batch orchestrator falls back to the secondary source when false.
func (r Resolution) HasCAS() bool {
	return r.CAS != NotAvailable
}

// OutputRow is one flattened (substance, synonym) pair in the result table.
type OutputRow struct {
	Substance      string `json:"substance" yaml:"substance"`
	CAS            string `json:"cas" yaml:"cas"`
	Synonym        string `json:"synonym" yaml:"synonym"`
	CompoundSource string `json:"compound_source" yaml:"compound_source"`
	SynonymSource  string `json:"synonym_source" yaml:"synonym_source"`
}
