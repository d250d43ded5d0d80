// Package extract turns registry HTML into records: the search listing into
// preliminary records and detail pages into DOB/status fields.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	textutil "github.com/law-makers/locator/internal/utils/text"
	urlutil "github.com/law-makers/locator/internal/utils/url"
	"github.com/law-makers/locator/pkg/models"
	"github.com/rs/zerolog/log"
)

// DefaultDetailMarker identifies anchors that point at a detail view
const DefaultDetailMarker = "method=view"

// SearchExtractor parses a results listing page into preliminary records
type SearchExtractor struct {
	Source       string
	Jurisdiction string
	// BaseURL is the origin detail links are resolved against
	BaseURL      string
	DetailMarker string
	Names        NameSplitter
}

// ExtractHTML parses r and extracts records from it
func (e *SearchExtractor) ExtractHTML(r io.Reader, query models.Query) ([]models.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}
	return e.Extract(doc, query), nil
}

// Extract walks every table row of doc, in document order, and builds one
// record per row that has at least two non-empty cells
func (e *SearchExtractor) Extract(doc *goquery.Document, query models.Query) []models.Record {
	if doc == nil {
		return nil
	}

	names := e.Names
	if names == nil {
		names = LastCommaFirst{}
	}
	anchorSel := fmt.Sprintf("a[href*=%q]", e.marker())
	fallback := Name{First: query.FirstName, Last: query.LastName}

	var records []models.Record
	skipped := 0

	doc.Find("table tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, textutil.NodesText(td.Nodes))
		})
		if len(cells) < 2 || nonEmpty(cells) < 2 {
			skipped++
			return
		}

		display := cells[0]
		docNumber := ""
		if textutil.HasDigit(cells[1]) {
			docNumber = cells[1]
		}

		detailURL := ""
		if href, ok := tr.Find(anchorSel).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			detailURL = urlutil.ResolveURL(e.BaseURL, href)
		}

		name := names.Split(display, fallback)
		records = append(records, models.Record{
			Source:       e.Source,
			FullName:     textutil.Clean(display),
			FirstName:    name.First,
			LastName:     name.Last,
			MiddleName:   name.Middle,
			Jurisdiction: e.Jurisdiction,
			DocNumber:    docNumber,
			DetailURL:    detailURL,
		})
	})

	log.Debug().
		Str("source", e.Source).
		Int("records", len(records)).
		Int("skipped_rows", skipped).
		Msg("Search page extracted")

	return records
}

func (e *SearchExtractor) marker() string {
	if e.DetailMarker == "" {
		return DefaultDetailMarker
	}
	return e.DetailMarker
}

func nonEmpty(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}
