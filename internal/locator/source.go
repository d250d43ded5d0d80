package locator

import (
	"net/url"

	"github.com/law-makers/locator/internal/extract"
	"github.com/law-makers/locator/pkg/models"
)

// Registry defaults for the North Carolina offender search
const (
	NCDOCName         = "NC DOC"
	NCDOCJurisdiction = "NC"
	NCDOCBaseURL      = "https://webapps.doc.state.nc.us"
	NCDOCSearchPath   = "/opi/offendersearch.do"
)

// Source describes one registry: where to search, how to build the query
// and how to read its pages
type Source struct {
	Name         string
	Jurisdiction string
	BaseURL      string
	SearchPath   string
	DetailMarker string
	Params       func(q models.Query) url.Values
	Names        extract.NameSplitter
	Detail       extract.DetailParser
}

// NCDOC returns the North Carolina Department of Adult Correction offender search
func NCDOC() Source {
	return Source{
		Name:         NCDOCName,
		Jurisdiction: NCDOCJurisdiction,
		BaseURL:      NCDOCBaseURL,
		SearchPath:   NCDOCSearchPath,
		DetailMarker: extract.DefaultDetailMarker,
		Params: func(q models.Query) url.Values {
			v := url.Values{}
			v.Set("method", "view")
			v.Set("searchLastName", q.LastName)
			v.Set("searchFirstName", q.FirstName)
			return v
		},
		Names:  extract.LastCommaFirst{},
		Detail: extract.DefaultPatternParser(),
	}
}

// WithBaseURL returns a copy of s that talks to base instead (mirrors, tests)
func (s Source) WithBaseURL(base string) Source {
	if base != "" {
		s.BaseURL = base
	}
	return s
}

// SearchURL is the absolute URL of the search endpoint, without query
func (s Source) SearchURL() string {
	return s.BaseURL + s.SearchPath
}

func (s Source) extractor() *extract.SearchExtractor {
	return &extract.SearchExtractor{
		Source:       s.Name,
		Jurisdiction: s.Jurisdiction,
		BaseURL:      s.BaseURL,
		DetailMarker: s.DetailMarker,
		Names:        s.Names,
	}
}

func (s Source) detailParser() extract.DetailParser {
	if s.Detail == nil {
		return extract.DefaultPatternParser()
	}
	return s.Detail
}

func (s Source) params(q models.Query) url.Values {
	if s.Params == nil {
		return nil
	}
	return s.Params(q)
}
