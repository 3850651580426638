package batch_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trainerbills/internal/batch"
	"trainerbills/internal/config"
	"trainerbills/internal/domain"
	"trainerbills/mocks"
)

var target = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func newPackager(t *testing.T) (*batch.Packager, *mocks.MockInvoiceRenderer, string) {
	t.Helper()
	dir := t.TempDir()
	renderer := new(mocks.MockInvoiceRenderer)
	cfg := config.OutputConfig{Dir: dir, ArchiveName: "Trainer_Invoices.zip"}
	return batch.New(renderer, &cfg), renderer, dir
}

func records(serials ...string) []domain.BillingRecord {
	recs := make([]domain.BillingRecord, 0, len(serials))
	for _, s := range serials {
		recs = append(recs, domain.BillingRecord{SerialNo: s, BillingDate: target})
	}
	return recs
}

func TestPackage_EmptyBatchReturnsNoMatch(t *testing.T) {
	p, renderer, dir := newPackager(t)

	result, err := p.Package(context.Background(), nil, target)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoMatchingRecords)

	_, statErr := os.Stat(filepath.Join(dir, "Trainer_Invoices.zip"))
	assert.True(t, os.IsNotExist(statErr), "no archive must be produced")
	renderer.AssertNotCalled(t, "Render")
}

func TestPackage_ArchiveContainsOneEntryPerRecord(t *testing.T) {
	p, renderer, _ := newPackager(t)
	renderer.On("Render", mock.Anything, target).Return([]byte("%PDF-1.3 stub"), nil)

	result, err := p.Package(context.Background(), records("7", "8"), target)
	require.NoError(t, err)
	require.Len(t, result.Invoices, 2)
	assert.Equal(t, "Trainer_Invoice_7_10012025.pdf", result.Invoices[0].FileName)
	assert.Equal(t, "Trainer_Invoice_8_10012025.pdf", result.Invoices[1].FileName)

	zr, err := zip.OpenReader(result.ArchivePath)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	for _, entry := range zr.File {
		assert.Equal(t, filepath.Base(entry.Name), entry.Name, "entries carry no directory structure")
		assert.False(t, names[entry.Name], "duplicate entry %s", entry.Name)
		names[entry.Name] = true
	}
	assert.Len(t, names, 2)
}

func TestPackage_PublishesAtFixedPathAndCleansScratch(t *testing.T) {
	p, renderer, dir := newPackager(t)
	renderer.On("Render", mock.Anything, target).Return([]byte("%PDF-1.3 stub"), nil)

	result, err := p.Package(context.Background(), records("7"), target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Trainer_Invoices.zip"), result.ArchivePath)
	assert.Equal(t, p.ArchivePath(), result.ArchivePath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "scratch run directory must be removed")
	assert.Equal(t, "Trainer_Invoices.zip", entries[0].Name())
}

func TestPackage_LatestRunWins(t *testing.T) {
	p, renderer, _ := newPackager(t)
	renderer.On("Render", mock.Anything, target).Return([]byte("%PDF-1.3 stub"), nil)

	_, err := p.Package(context.Background(), records("7"), target)
	require.NoError(t, err)

	result, err := p.Package(context.Background(), records("7", "8", "9"), target)
	require.NoError(t, err)

	zr, err := zip.OpenReader(result.ArchivePath)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 3)
}

func TestPackage_RenderFailureAbortsWholeBatch(t *testing.T) {
	p, renderer, dir := newPackager(t)
	renderer.On("Render", mock.MatchedBy(func(r *domain.BillingRecord) bool { return r.SerialNo == "7" }), target).
		Return([]byte("%PDF-1.3 stub"), nil)
	renderer.On("Render", mock.MatchedBy(func(r *domain.BillingRecord) bool { return r.SerialNo == "8" }), target).
		Return(nil, errors.New("layout engine failure"))

	result, err := p.Package(context.Background(), records("7", "8"), target)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 8")

	_, statErr := os.Stat(filepath.Join(dir, "Trainer_Invoices.zip"))
	assert.True(t, os.IsNotExist(statErr), "no partial archive may be published")
}

func TestPackage_CancelledContextAborts(t *testing.T) {
	p, renderer, _ := newPackager(t)
	renderer.On("Render", mock.Anything, target).Return([]byte("%PDF-1.3 stub"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Package(ctx, records("7"), target)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
