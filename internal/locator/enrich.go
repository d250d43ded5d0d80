package locator

import (
	"context"

	"github.com/law-makers/locator/internal/engine"
	"github.com/law-makers/locator/internal/engine/static"
	"github.com/law-makers/locator/internal/extract"
	"github.com/law-makers/locator/internal/reqctx"
	"github.com/law-makers/locator/pkg/models"
)

// ProgressFunc is called after each detail page has been handled
type ProgressFunc func(done, total int)

// enrich fetches the detail page of every record that has one and fills in
// DOB and status. records is updated in place. A failure on one record is
// recorded in its outcome and never stops the loop.
func (l *Locator) enrich(ctx context.Context, records []models.Record) ([]models.EnrichOutcome, bool) {
	logger := reqctx.Logger(ctx)
	outcomes := make([]models.EnrichOutcome, len(records))

	total := 0
	for i, r := range records {
		outcomes[i] = models.EnrichOutcome{Index: i, DetailURL: r.DetailURL}
		if r.DetailURL == "" {
			outcomes[i].State = models.EnrichStateSkipped
			outcomes[i].Reason = models.SkipNoDetailURL
			continue
		}
		total++
	}
	if total == 0 {
		return outcomes, true
	}

	decision := l.gate.Check(ctx, l.source.BaseURL, l.source.SearchPath)
	if !decision.Allowed {
		logger.Warn().
			Str("reason", decision.Reason).
			Int("records", total).
			Msg("Detail pages disallowed by robots policy, skipping enrichment")
		denied := engine.NewEngineError(engine.ErrCodePolicyDenied, "detail pages disallowed", engine.ErrPolicyDenied).
			WithDetail("reason", decision.Reason)
		for i := range outcomes {
			if outcomes[i].Reason == models.SkipNone {
				outcomes[i].State = models.EnrichStateSkipped
				outcomes[i].Reason = models.SkipPolicyDenied
				outcomes[i].Err = denied
			}
		}
		return outcomes, false
	}

	parser := l.source.detailParser()
	done := 0
	for i := range records {
		if records[i].DetailURL == "" {
			continue
		}

		outcomes[i] = l.enrichOne(ctx, &records[i], parser)
		outcomes[i].Index = i
		if !outcomes[i].Enriched() {
			logger.Debug().
				Err(outcomes[i].Err).
				Str("url", records[i].DetailURL).
				Str("reason", string(outcomes[i].Reason)).
				Msg("Record left unenriched")
		}

		done++
		if l.progress != nil {
			l.progress(done, total)
		}
	}

	return outcomes, true
}

func (l *Locator) enrichOne(ctx context.Context, rec *models.Record, parser extract.DetailParser) models.EnrichOutcome {
	outcome := models.EnrichOutcome{DetailURL: rec.DetailURL, State: models.EnrichStateSkipped}

	page, err := l.fetcher.Get(ctx, rec.DetailURL, nil)
	if err != nil {
		outcome.Err = err
		outcome.Reason = models.SkipFetchFailed
		if engine.CodeOf(err) == engine.ErrCodeHTTPStatus {
			outcome.Reason = models.SkipHTTPStatus
		}
		return outcome
	}

	doc, err := static.Document(page)
	if err != nil {
		outcome.Err = err
		outcome.Reason = models.SkipParseFailed
		return outcome
	}

	fields := parser.Parse(doc)
	if fields.DOB != "" {
		rec.DOB = fields.DOB
	}
	if fields.Status != "" {
		rec.Status = fields.Status
	}

	outcome.State = models.EnrichStateEnriched
	return outcome
}
