package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"trainerbills/internal/batch"
	"trainerbills/internal/config"
	"trainerbills/internal/domain"
	"trainerbills/internal/handler"
	"trainerbills/internal/port"
	"trainerbills/internal/render/pdf"
	"trainerbills/internal/router"
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
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source, err := buildSource(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize record source: %w", err)
	}

	renderer := pdf.New(&cfg.Invoice)
	packager := batch.New(renderer, &cfg.Output)
	pipeline := service.NewPipelineService(source, packager)

	invoiceH := handler.NewInvoiceHandler(pipeline, packager.ArchivePath(), cfg.Output.ArchiveName)
	healthH := handler.NewHealthHandler(cfg.Output.Dir)

	r := router.Setup(invoiceH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func buildSource(ctx context.Context, cfg *config.Config) (port.RecordSource, error) {
	switch domain.SourceKind(cfg.Source.Kind) {
	case domain.SourceXLSX:
		return xlsxsource.New(cfg.Source.XLSXPath), nil
	case domain.SourceSheets:
		return sheetsource.New(ctx, &cfg.Sheets)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
