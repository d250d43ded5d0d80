package extract

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternParser_DOBOnly(t *testing.T) {
	fields, err := DefaultPatternParser().ParseHTML(strings.NewReader(`<html><body>
		<h1>Offender Details</h1>
		<table><tr><th>DOB:</th><td>05/14/1980</td></tr></table>
	</body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "05/14/1980", fields.DOB)
	assert.Empty(t, fields.Status)
}

func TestPatternParser_CustodyStatus(t *testing.T) {
	fields := DefaultPatternParser().ParseText("Name: Doe, John DOB: 01/02/1975 Custody Status: ACTIVE")
	assert.Equal(t, "01/02/1975", fields.DOB)
	assert.Equal(t, "ACTIVE", fields.Status)
}

func TestPatternParser_PlainStatusMarker(t *testing.T) {
	fields := DefaultPatternParser().ParseText("Status: Released 03/04/2019")
	assert.Equal(t, "Released", fields.Status)
	assert.Empty(t, fields.DOB)
}

func TestPatternParser_Misses(t *testing.T) {
	cases := []string{
		"",
		"DOB: 5/14/1980",
		"Birth date 05/14/1980",
		"Status:OK",
		"Status: 42",
	}
	for _, text := range cases {
		fields := DefaultPatternParser().ParseText(text)
		assert.Empty(t, fields.DOB, "text %q", text)
		assert.Empty(t, fields.Status, "text %q", text)
	}
}

func TestPatternParser_IgnoresScripts(t *testing.T) {
	fields, err := DefaultPatternParser().ParseHTML(strings.NewReader(`<html><head>
		<script>var x = "DOB: 01/01/1900";</script></head>
		<body><p>no data here</p></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, fields.DOB)
}

func TestPatternParser_CustomPatterns(t *testing.T) {
	p := &PatternParser{
		DOB:    regexp.MustCompile(`Born (\d{4}-\d{2}-\d{2})`),
		Status: nil,
	}
	fields := p.ParseText("Born 1980-05-14 Status: Active")
	assert.Equal(t, "1980-05-14", fields.DOB)
	assert.Empty(t, fields.Status)
}
