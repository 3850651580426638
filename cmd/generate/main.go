// Command generate runs one invoice batch for a billing date without the
// HTTP surface.
// Usage: go run ./cmd/generate -date 10-01-2025 [-xlsx path/to/export.xlsx]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"trainerbills/internal/batch"
	"trainerbills/internal/config"
	"trainerbills/internal/domain"
	"trainerbills/internal/port"
	"trainerbills/internal/render/pdf"
	"trainerbills/internal/service"
	sheetsource "trainerbills/internal/source/sheets"
	xlsxsource "trainerbills/internal/source/xlsx"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	date := flag.String("date", "", "billing date (dd-mm-yyyy)")
	xlsxPath := flag.String("xlsx", "", "read from a local workbook instead of Google Sheets")
	flag.Parse()

	if *date == "" {
		return errors.New("usage: generate -date dd-mm-yyyy [-xlsx file]")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := context.Background()

	var source port.RecordSource
	if *xlsxPath != "" {
		source = xlsxsource.New(*xlsxPath)
	} else if domain.SourceKind(cfg.Source.Kind) == domain.SourceXLSX {
		source = xlsxsource.New(cfg.Source.XLSXPath)
	} else {
		source, err = sheetsource.New(ctx, &cfg.Sheets)
		if err != nil {
			return fmt.Errorf("initializing record source: %w", err)
		}
	}

	renderer := pdf.New(&cfg.Invoice)
	packager := batch.New(renderer, &cfg.Output)
	pipeline := service.NewPipelineService(source, packager)

	res, err := pipeline.GenerateForDate(ctx, *date)
	if err != nil {
		return err
	}

	log.Printf("Target date:     %s", res.TargetDate.Format("2006-01-02"))
	log.Printf("Available dates: %v", res.AvailableDates)

	if res.State == domain.StateNoMatch {
		log.Printf("WARN: %v", domain.ErrNoMatchingRecords)
		return nil
	}

	for _, inv := range res.Invoices {
		log.Printf("  %s (%d bytes)", inv.FileName, inv.Size)
	}
	log.Printf("Archived %d invoice(s) in %s", res.MatchCount, res.ArchivePath)
	return nil
}
