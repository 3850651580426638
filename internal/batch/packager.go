// Package batch renders all invoices for one target date and publishes them
// as a single ZIP archive.
package batch

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"trainerbills/internal/config"
	"trainerbills/internal/domain"
	"trainerbills/internal/port"
)

// Packager renders a batch into a run-scoped scratch directory and renames
// the finished archive onto the fixed publish path. Each run gets its own
// directory so that a failed or concurrent run can never clobber a published
// archive; latest successful run wins.
type Packager struct {
	renderer    port.InvoiceRenderer
	outputDir   string
	archiveName string
}

// New creates a Packager writing under cfg.Dir.
func New(renderer port.InvoiceRenderer, cfg *config.OutputConfig) *Packager {
	return &Packager{
		renderer:    renderer,
		outputDir:   cfg.Dir,
		archiveName: cfg.ArchiveName,
	}
}

// ArchivePath returns the fixed path the latest archive is published at.
func (p *Packager) ArchivePath() string {
	return filepath.Join(p.outputDir, p.archiveName)
}

// Package renders every record and publishes the archive. An empty batch
// returns domain.ErrNoMatchingRecords and produces nothing. Any render or
// write failure aborts the whole batch: no partial archive is ever published.
func (p *Packager) Package(ctx context.Context, records []domain.BillingRecord, target time.Time) (*domain.InvoiceBatch, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoMatchingRecords
	}

	runDir := filepath.Join(p.outputDir, "run-"+uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}
	defer os.RemoveAll(runDir)

	batch := &domain.InvoiceBatch{
		TargetDate:  target,
		ArchiveName: p.archiveName,
	}

	for i := range records {
		rec := &records[i]
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := p.renderer.Render(rec, target)
		if err != nil {
			return nil, fmt.Errorf("render record %s: %w", rec.SerialNo, err)
		}

		name := "Trainer_Invoice_" + rec.BillNumber(target) + ".pdf"
		if err := os.WriteFile(filepath.Join(runDir, name), doc, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}

		batch.Invoices = append(batch.Invoices, domain.RenderedInvoice{
			BillNumber: rec.BillNumber(target),
			FileName:   name,
			Size:       int64(len(doc)),
		})
	}

	scratchArchive := filepath.Join(runDir, p.archiveName)
	if err := p.writeArchive(scratchArchive, runDir, batch.Invoices); err != nil {
		return nil, err
	}

	// Publish atomically; the scratch archive lives on the same volume.
	published := p.ArchivePath()
	if err := os.Rename(scratchArchive, published); err != nil {
		return nil, fmt.Errorf("publish archive: %w", err)
	}
	batch.ArchivePath = published

	return batch, nil
}

// writeArchive zips the rendered invoices with base-name entries only.
func (p *Packager) writeArchive(archivePath, runDir string, invoices []domain.RenderedInvoice) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	zw := zip.NewWriter(out)
	for _, inv := range invoices {
		entry, err := zw.Create(inv.FileName)
		if err != nil {
			out.Close()
			return fmt.Errorf("add archive entry %s: %w", inv.FileName, err)
		}
		doc, err := os.ReadFile(filepath.Join(runDir, inv.FileName))
		if err != nil {
			out.Close()
			return fmt.Errorf("read %s: %w", inv.FileName, err)
		}
		if _, err := entry.Write(doc); err != nil {
			out.Close()
			return fmt.Errorf("write archive entry %s: %w", inv.FileName, err)
		}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize archive: %w", err)
	}
	return out.Close()
}
