package output

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/law-makers/locator/pkg/models"
)

// WriteCSV writes records as CSV with a header row in models.Columns order.
// The header is written even when records is empty.
func WriteCSV(w io.Writer, records []models.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(r.Row()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes records to a CSV file. Returns an error on failure.
func SaveCSV(records []models.Record, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
