package locator

import "github.com/law-makers/locator/pkg/models"

// Dedupe drops records whose identity tuple was already seen, keeping the
// first occurrence and the original order
func Dedupe(records []models.Record) []models.Record {
	seen := make(map[models.RecordKey]struct{}, len(records))
	out := make([]models.Record, 0, len(records))

	for _, r := range records {
		key := r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	return out
}
