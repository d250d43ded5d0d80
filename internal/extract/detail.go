package extract

import (
	"fmt"
	"io"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	textutil "github.com/law-makers/locator/internal/utils/text"
)

// DetailFields holds the values found on a detail page. Empty means not found.
type DetailFields struct {
	DOB    string
	Status string
}

// DetailParser extracts extended fields from a record's detail page.
// Each source phrases its detail pages differently, so every source owns one.
type DetailParser interface {
	Parse(doc *goquery.Document) DetailFields
}

// PatternParser finds fields by running regular expressions over the
// normalized visible text of the page. Each pattern's last submatch is the value.
type PatternParser struct {
	DOB    *regexp.Regexp
	Status *regexp.Regexp
}

var (
	defaultDOBPattern    = regexp.MustCompile(`\bDOB[:\s]+([0-9]{2}/[0-9]{2}/[0-9]{4})\b`)
	defaultStatusPattern = regexp.MustCompile(`\b(Custody Status|Status)[:\s]+([A-Za-z ]{3,})\b`)
)

// DefaultPatternParser matches "DOB: MM/DD/YYYY" and "Status:"/"Custody Status:" markers
func DefaultPatternParser() *PatternParser {
	return &PatternParser{
		DOB:    defaultDOBPattern,
		Status: defaultStatusPattern,
	}
}

// Parse implements DetailParser
func (p *PatternParser) Parse(doc *goquery.Document) DetailFields {
	if doc == nil {
		return DetailFields{}
	}
	return p.ParseText(textutil.NodesText(doc.Nodes))
}

// ParseHTML parses r as HTML and extracts the detail fields
func (p *PatternParser) ParseHTML(r io.Reader) (DetailFields, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return DetailFields{}, fmt.Errorf("failed to parse detail page: %w", err)
	}
	return p.Parse(doc), nil
}

// ParseText extracts the fields from already normalized page text
func (p *PatternParser) ParseText(text string) DetailFields {
	return DetailFields{
		DOB:    lastSubmatch(p.DOB, text),
		Status: textutil.Clean(lastSubmatch(p.Status, text)),
	}
}

func lastSubmatch(re *regexp.Regexp, text string) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[len(m)-1]
}
