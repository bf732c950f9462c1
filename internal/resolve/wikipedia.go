// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/chemreg/pkg/types"
)

// wikipediaArticleBase is the English Wikipedia article path. Declared as
// a var so tests can substitute an httptest server.
var wikipediaArticleBase = "https://en.wikipedia.org/wiki/"

// WikipediaResolver resolves substance names by scraping the infobox
// (chembox) panel of the matching Wikipedia article. It is the fallback
// source: less structured than PubChem, but it covers common substances
// the by-name lookup misses.
type WikipediaResolver struct {
	Client *http.Client
}

// Name returns the source identifier.
func (r *WikipediaResolver) Name() string { return "wikipedia" }

// Resolve fetches the article for the substance (spaces become
// underscores) and scans the first infobox table. A row whose header
// contains "CAS Number" supplies the CAS; a row whose header contains
// "Other names" supplies the synonyms, split on ", ". Later matching rows
// overwrite earlier ones. A missing page or missing infobox yields the
// sentinel resolution; a present infobox with neither row yields the
// article URL as source and sentinel/empty fields.
func (r *WikipediaResolver) Resolve(ctx context.Context, substance string) types.Resolution {
	articleURL := wikipediaArticleBase + strings.ReplaceAll(substance, " ", "_")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return types.Unresolved()
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return types.Unresolved()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Unresolved()
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return types.Unresolved()
	}

	panel := doc.Find("table.infobox").First()
	if panel.Length() == 0 {
		return types.Unresolved()
	}

	cas := types.NotAvailable
	var synonyms []string
	panel.Find("tr").Each(func(_ int, row *goquery.Selection) {
		header := row.Find("th").First().Text()
		cell := strings.TrimSpace(row.Find("td").First().Text())
		if strings.Contains(header, "CAS Number") {
			cas = cell
		}
		if strings.Contains(header, "Other names") {
			synonyms = strings.Split(cell, ", ")
		}
	})

	return types.Resolution{
		CAS:      cas,
		Synonyms: synonyms,
		// The article is the citation for both the identifier and the
		// synonym list.
		CompoundSource: articleURL,
		SynonymSource:  articleURL,
	}
}
