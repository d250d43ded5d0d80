package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/law-makers/locator/pkg/models"
)

// WriteJSON writes records as an indented JSON array
func WriteJSON(w io.Writer, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// SaveJSON writes records to filepath as a JSON array.
func SaveJSON(records []models.Record, filepath string) error {
	if records == nil {
		records = []models.Record{}
	}
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}
