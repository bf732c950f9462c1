// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/chemreg/pkg/types"
)

// PubChem PUG REST base URLs. Declared as vars so tests can substitute
// httptest servers.
var (
	pubChemPUGBase      = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	pubChemCompoundBase = "https://pubchem.ncbi.nlm.nih.gov/compound/"
)

// pubChemProperties is the fixed property list requested from the
// properties-by-name endpoint. Only the CID is consumed; the properties
// themselves keep the request on the standard lookup path.
const pubChemProperties = "MolecularFormula,MolecularWeight,Title"

// PubChemResolver resolves substance names via the PubChem PUG REST API:
// a properties-by-name lookup yields a compound identifier (CID), a
// synonyms-by-CID lookup yields the synonym list, and the CAS number is
// the first CAS-shaped synonym.
type PubChemResolver struct {
	Client *http.Client
}

// Name returns the source identifier.
func (r *PubChemResolver) Name() string { return "pubchem" }

// Resolve looks up the substance. Every failure — lookup miss, secondary
// request failure, malformed body — degrades to the sentinel resolution.
// A successful synonym fetch with no CAS-shaped entry keeps the synonyms
// and records the CAS as unavailable.
func (r *PubChemResolver) Resolve(ctx context.Context, substance string) types.Resolution {
	cid, err := r.lookupCID(ctx, substance)
	if err != nil {
		return types.Unresolved()
	}

	synonyms, err := r.lookupSynonyms(ctx, cid)
	if err != nil {
		return types.Unresolved()
	}

	cas := FirstCAS(synonyms)
	return types.Resolution{
		CAS:      cas,
		Synonyms: synonyms,
		// Compound page for the CID; the synonym citation link re-enters
		// the by-name endpoint through the extracted CAS number. The link
		// is a citation, it is never fetched.
		CompoundSource: fmt.Sprintf("%s%d", pubChemCompoundBase, cid),
		SynonymSource:  fmt.Sprintf("%s/compound/name/%s/synonyms/JSON", pubChemPUGBase, url.PathEscape(cas)),
	}
}

// lookupCID queries the properties-by-name endpoint and returns the first
// record's compound identifier.
func (r *PubChemResolver) lookupCID(ctx context.Context, substance string) (int64, error) {
	reqURL := fmt.Sprintf("%s/compound/name/%s/property/%s/JSON",
		pubChemPUGBase, url.PathEscape(substance), pubChemProperties)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("PubChem property request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("PubChem returned HTTP %d", resp.StatusCode)
	}

	var pr propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return 0, fmt.Errorf("parsing property response: %w", err)
	}
	if len(pr.PropertyTable.Properties) == 0 {
		return 0, fmt.Errorf("no property records for %q", substance)
	}
	return pr.PropertyTable.Properties[0].CID, nil
}

// lookupSynonyms queries the synonyms-by-CID endpoint and returns the
// first information record's synonym list.
func (r *PubChemResolver) lookupSynonyms(ctx context.Context, cid int64) ([]string, error) {
	reqURL := fmt.Sprintf("%s/compound/cid/%d/synonyms/JSON", pubChemPUGBase, cid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PubChem synonym request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubChem returned HTTP %d", resp.StatusCode)
	}

	var sr synonymResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing synonym response: %w", err)
	}
	if len(sr.InformationList.Information) == 0 {
		return nil, fmt.Errorf("no synonym records for CID %d", cid)
	}
	return sr.InformationList.Information[0].Synonym, nil
}

// PubChem PUG REST JSON structures.
type propertyResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID              int64  `json:"CID"`
			MolecularFormula string `json:"MolecularFormula"`
			Title            string `json:"Title"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymResponse struct {
	InformationList struct {
		Information []struct {
			CID     int64    `json:"CID"`
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}
