package models

import "time"

// Columns lists the serialized record fields in output order
var Columns = []string{
	"source",
	"full_name",
	"first_name",
	"last_name",
	"middle_name",
	"dob",
	"jurisdiction",
	"doc_number",
	"status",
	"detail_url",
}

// Record represents one individual located in a registry listing
type Record struct {
	Source       string `json:"source"`
	FullName     string `json:"full_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MiddleName   string `json:"middle_name"`
	DOB          string `json:"dob"`
	Jurisdiction string `json:"jurisdiction"`
	DocNumber    string `json:"doc_number"`
	Status       string `json:"status"`
	DetailURL    string `json:"detail_url"`
}

// RecordKey identifies the listing a record was built from.
// Two records with equal keys are the same physical entry.
type RecordKey struct {
	Source    string
	FullName  string
	DocNumber string
	DetailURL string
}

// Key returns the identity tuple used for deduplication
func (r Record) Key() RecordKey {
	return RecordKey{
		Source:    r.Source,
		FullName:  r.FullName,
		DocNumber: r.DocNumber,
		DetailURL: r.DetailURL,
	}
}

// Row returns the record fields in Columns order
func (r Record) Row() []string {
	return []string{
		r.Source,
		r.FullName,
		r.FirstName,
		r.LastName,
		r.MiddleName,
		r.DOB,
		r.Jurisdiction,
		r.DocNumber,
		r.Status,
		r.DetailURL,
	}
}

// Query holds the (already trimmed) name a search is run for
type Query struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EnrichState describes what happened to a record during enrichment
type EnrichState string

const (
	EnrichStateEnriched EnrichState = "enriched"
	EnrichStateSkipped  EnrichState = "skipped"
)

// SkipReason explains why a record was left unenriched
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipNoDetailURL  SkipReason = "no_detail_url"
	SkipPolicyDenied SkipReason = "policy_denied"
	SkipFetchFailed  SkipReason = "fetch_failed"
	SkipHTTPStatus   SkipReason = "http_status"
	SkipParseFailed  SkipReason = "parse_failed"
)

// EnrichOutcome is the per-record result of the detail enrichment stage
type EnrichOutcome struct {
	Index     int         `json:"index"`
	DetailURL string      `json:"detail_url,omitempty"`
	State     EnrichState `json:"state"`
	Reason    SkipReason  `json:"reason,omitempty"`
	Err       error       `json:"-"`
}

// Enriched reports whether the detail page was fetched and parsed
func (o EnrichOutcome) Enriched() bool {
	return o.State == EnrichStateEnriched
}

// Report is the full result of one pipeline run
type Report struct {
	Query          Query           `json:"query"`
	Source         string          `json:"source"`
	SearchAllowed  bool            `json:"search_allowed"`
	DetailsAllowed bool            `json:"details_allowed"`
	Records        []Record        `json:"records"`
	Outcomes       []EnrichOutcome `json:"outcomes,omitempty"`
	Duplicates     int             `json:"duplicates"`
}

// Page is a fetched document, decoded to UTF-8
type Page struct {
	URL          string    `json:"url"`
	StatusCode   int       `json:"status_code"`
	ContentType  string    `json:"content_type,omitempty"`
	Body         []byte    `json:"-"`
	FetchedAt    time.Time `json:"fetched_at"`
	ResponseTime int64     `json:"response_time_ms"`
}
