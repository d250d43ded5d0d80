package locator

import (
	"testing"

	"github.com/law-makers/locator/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	first := models.Record{Source: "NC DOC", FullName: "Doe, John", DocNumber: "0001", DetailURL: "u1", Status: "ACTIVE"}
	second := first
	second.Status = "INACTIVE"

	out := Dedupe([]models.Record{first, second})
	assert.Equal(t, []models.Record{first}, out)
}

func TestDedupe_KeyFieldsOnly(t *testing.T) {
	a := models.Record{Source: "NC DOC", FullName: "Doe, John", DocNumber: "0001", DetailURL: "u1"}
	b := a
	b.DOB = "01/01/1970"
	b.MiddleName = "Q"
	c := a
	c.DetailURL = "u2"
	d := a
	d.DocNumber = ""

	out := Dedupe([]models.Record{a, c, b, d, c})
	assert.Equal(t, []models.Record{a, c, d}, out)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.NotNil(t, Dedupe(nil))
}
