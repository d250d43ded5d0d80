package extract

import (
	"strings"
	"testing"

	"github.com/law-makers/locator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *SearchExtractor {
	return &SearchExtractor{
		Source:       "NC DOC",
		Jurisdiction: "NC",
		BaseURL:      "https://webapps.doc.state.nc.us",
		DetailMarker: DefaultDetailMarker,
		Names:        LastCommaFirst{},
	}
}

func extract(t *testing.T, html string, q models.Query) []models.Record {
	t.Helper()
	records, err := newTestExtractor().ExtractHTML(strings.NewReader(html), q)
	require.NoError(t, err)
	return records
}

func TestSearchExtractor_SingleRowScenario(t *testing.T) {
	html := `<html><body><table>
		<tr><th>Name</th><th>Offender #</th></tr>
		<tr><td><a href="/opi/viewoffender.do?method=view&amp;offenderID=00123456">Doe, John A</a></td><td>00123456</td></tr>
	</table></body></html>`

	records := extract(t, html, models.Query{FirstName: "John", LastName: "Doe"})
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "NC DOC", r.Source)
	assert.Equal(t, "NC", r.Jurisdiction)
	assert.Equal(t, "Doe, John A", r.FullName)
	assert.Equal(t, "Doe", r.LastName)
	assert.Equal(t, "John", r.FirstName)
	assert.Equal(t, "A", r.MiddleName)
	assert.Equal(t, "00123456", r.DocNumber)
	assert.Equal(t, "https://webapps.doc.state.nc.us/opi/viewoffender.do?method=view&offenderID=00123456", r.DetailURL)
	assert.Empty(t, r.DOB)
	assert.Empty(t, r.Status)
}

func TestSearchExtractor_SkipsShortRows(t *testing.T) {
	html := `<table>
		<tr><td>Only one cell</td></tr>
		<tr><td>Doe, Jane</td><td>   </td></tr>
		<tr><td></td><td>0099</td></tr>
		<tr><th>Header</th><th>Row</th></tr>
		<tr></tr>
	</table>`

	assert.Empty(t, extract(t, html, models.Query{FirstName: "Jane", LastName: "Doe"}))
}

func TestSearchExtractor_DocNumberNeedsDigit(t *testing.T) {
	html := `<table>
		<tr><td>Doe, John</td><td>N/A</td></tr>
		<tr><td>Doe, Jim</td><td>ID 7</td></tr>
	</table>`

	records := extract(t, html, models.Query{FirstName: "John", LastName: "Doe"})
	require.Len(t, records, 2)
	assert.Empty(t, records[0].DocNumber)
	assert.Equal(t, "ID 7", records[1].DocNumber)
}

func TestSearchExtractor_NoCommaUsesQueryNames(t *testing.T) {
	html := `<table><tr><td>JOHN   DOE</td><td>0042</td></tr></table>`

	records := extract(t, html, models.Query{FirstName: "John", LastName: "Doe"})
	require.Len(t, records, 1)
	assert.Equal(t, "JOHN DOE", records[0].FullName)
	assert.Equal(t, "John", records[0].FirstName)
	assert.Equal(t, "Doe", records[0].LastName)
	assert.Empty(t, records[0].MiddleName)
}

func TestSearchExtractor_DetailLinkOnlyWithMarker(t *testing.T) {
	html := `<table>
		<tr><td><a href="/opi/help.do">Doe, John</a></td><td>0001</td></tr>
		<tr><td><a href="viewoffender.do?method=view&amp;id=2">Doe, Jane</a></td><td>0002</td></tr>
		<tr><td><a>Doe, Jim</a></td><td>0003</td></tr>
	</table>`

	records := extract(t, html, models.Query{FirstName: "J", LastName: "Doe"})
	require.Len(t, records, 3)
	assert.Empty(t, records[0].DetailURL)
	assert.Equal(t, "https://webapps.doc.state.nc.us/viewoffender.do?method=view&id=2", records[1].DetailURL)
	assert.Empty(t, records[2].DetailURL)
}

func TestSearchExtractor_PreservesRowOrderAndCleansText(t *testing.T) {
	html := `<table>
		<tr><td>Zed,
			Adam</td><td> 0003 </td><td>extra</td></tr>
		<tr><td>Alpha,<br>Bob   Carl</td><td>0001</td></tr>
	</table>`

	records := extract(t, html, models.Query{})
	require.Len(t, records, 2)
	assert.Equal(t, "Zed, Adam", records[0].FullName)
	assert.Equal(t, "0003", records[0].DocNumber)
	assert.Equal(t, "Alpha, Bob Carl", records[1].FullName)
	assert.Equal(t, "Carl", records[1].MiddleName)
}

func TestSearchExtractor_NoTable(t *testing.T) {
	assert.Empty(t, extract(t, `<html><body><p>No offenders found.</p></body></html>`, models.Query{}))
	assert.Nil(t, newTestExtractor().Extract(nil, models.Query{}))
}
