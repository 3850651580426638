package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"trainerbills/internal/domain"
	"trainerbills/internal/port"
	"trainerbills/internal/record"
)

// PipelineService runs the invoice generation pipeline end to end:
// parse date -> fetch rows -> build records -> filter -> package.
// One synchronous run per call; every failure is terminal for that run.
type PipelineService interface {
	GenerateForDate(ctx context.Context, dateInput string) (*domain.RunResult, error)
}

type pipelineService struct {
	source   port.RecordSource
	packager port.BatchPackager
}

// NewPipelineService creates a new PipelineService implementation.
func NewPipelineService(source port.RecordSource, packager port.BatchPackager) PipelineService {
	return &pipelineService{source: source, packager: packager}
}

func (s *pipelineService) GenerateForDate(ctx context.Context, dateInput string) (*domain.RunResult, error) {
	res := &domain.RunResult{State: domain.StateParsing}

	target, err := record.ParseTargetDate(dateInput)
	if err != nil {
		res.State = domain.StateFailed
		return res, err
	}
	res.TargetDate = target

	res.State = domain.StateFetching
	rows, err := s.source.FetchAll(ctx)
	if err != nil {
		res.State = domain.StateFailed
		return res, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	res.State = domain.StateFiltering
	var matched []domain.BillingRecord
	seenDates := make(map[string]struct{})
	for i, row := range rows {
		rec, err := record.FromRow(row)
		if err != nil {
			res.State = domain.StateFailed
			return res, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !rec.HasBillingDate() {
			// Unparseable billing date: the row can never match; skip it.
			log.Printf("WARN: skipping row %d: unparseable billing date", i+1)
			continue
		}
		seenDates[rec.BillingDate.Format("2006-01-02")] = struct{}{}
		if rec.BillingDate.Equal(target) {
			matched = append(matched, *rec)
		}
	}
	res.AvailableDates = sortedDates(seenDates)
	res.MatchCount = len(matched)

	if len(matched) == 0 {
		res.State = domain.StateNoMatch
		return res, nil
	}

	res.State = domain.StateRendering
	batch, err := s.packager.Package(ctx, matched, target)
	if err != nil {
		res.State = domain.StateFailed
		return res, err
	}

	res.State = domain.StateReady
	res.Invoices = batch.Invoices
	res.ArchivePath = batch.ArchivePath
	res.ArchiveName = batch.ArchiveName
	log.Printf("generated %d invoice(s) for %s -> %s",
		len(batch.Invoices), target.Format("02-01-2006"), batch.ArchivePath)
	return res, nil
}

func sortedDates(set map[string]struct{}) []string {
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
