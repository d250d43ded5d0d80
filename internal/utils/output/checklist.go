package output

import (
	"bytes"
	"io"
	"net/url"
	"os"

	"github.com/nao1215/markdown"
)

// ChecklistTitle heads the manual checklist document
const ChecklistTitle = "Manual checks (automation disabled to honor ToS)"

// ManualCheck is a source that must be searched by hand
type ManualCheck struct {
	Name string
	URL  string
}

// ManualChecks returns the sources to search by hand for first/last,
// in the order they are listed
func ManualChecks(first, last string) []ManualCheck {
	bop := url.Values{}
	bop.Set("inmate_first", first)
	bop.Set("inmate_last", last)

	return []ManualCheck{
		{Name: "BOP Inmate Locator", URL: "https://www.bop.gov/inmateloc/?" + bop.Encode()},
		{Name: "VINELink", URL: "https://www.vinelink.com/"},
		{Name: "NamUs", URL: "https://www.namus.gov/"},
		{Name: "FOIA", URL: "https://www.foia.gov/"},
	}
}

// WriteChecklist renders the manual checklist for first/last as Markdown
func WriteChecklist(w io.Writer, first, last string) error {
	checks := ManualChecks(first, last)
	items := make([]string, 0, len(checks))
	for _, c := range checks {
		items = append(items, c.Name+": "+c.URL)
	}

	md := markdown.NewMarkdown(w)
	md.H1(ChecklistTitle)
	md.BulletList(items...)
	return md.Build()
}

// SaveChecklist writes the manual checklist to filepath
func SaveChecklist(filepath, first, last string) error {
	var buf bytes.Buffer
	if err := WriteChecklist(&buf, first, last); err != nil {
		return err
	}
	buf.WriteString("\n")
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}
