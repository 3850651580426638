package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trainerbills/internal/domain"
	"trainerbills/internal/record"
	"trainerbills/internal/service"
	"trainerbills/mocks"
)

func sheetRow(serial, billingDate string) domain.RawRow {
	return domain.RawRow{
		record.ColSerialNo:        serial,
		record.ColBillingDate:     billingDate,
		record.ColTrainerName:     "Trainer " + serial,
		record.ColProjectCode:     "GA-10" + serial,
		record.ColDomain:          "Banking",
		record.ColTopic:           "Aptitude",
		record.ColFromDate:        "06-01-2025",
		record.ColToDate:          "09-01-2025",
		record.ColChargesPerHour:  "1500",
		record.ColChargesPerDay:   "9000",
		record.ColHours:           "24",
		record.ColDays:            "4",
		record.ColSessions:        "8",
		record.ColStudents:        "120",
		record.ColFoodAndLodging:  "4000",
		record.ColTravel:          "2500",
		record.ColTDS:             "3600",
		record.ColAdhoc:           "0",
		record.ColTrainingCharges: "36000",
		record.ColTotalCost:       "42500",
		record.ColNetPayment:      "38900",
		record.ColBankName:        "HDFC Bank",
		record.ColAccountNo:       "50100212345678",
		record.ColIFSC:            "HDFC0001234",
		record.ColPAN:             "ABCDE1234F",
		record.ColNameInBank:      "Trainer " + serial,
	}
}

func newPipeline() (service.PipelineService, *mocks.MockRecordSource, *mocks.MockBatchPackager) {
	source := new(mocks.MockRecordSource)
	packager := new(mocks.MockBatchPackager)
	return service.NewPipelineService(source, packager), source, packager
}

func TestGenerateForDate_PackagesMatchingRecords(t *testing.T) {
	pipeline, source, packager := newPipeline()
	target := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{
		sheetRow("1", "10-01-2025"),
		sheetRow("2", "10-01-2025"),
		sheetRow("3", "11-01-2025"),
	}, nil)
	packager.On("Package", mock.Anything, mock.MatchedBy(func(recs []domain.BillingRecord) bool {
		return len(recs) == 2 && recs[0].SerialNo == "1" && recs[1].SerialNo == "2"
	}), target).Return(&domain.InvoiceBatch{
		TargetDate:  target,
		ArchivePath: "invoices/Trainer_Invoices.zip",
		ArchiveName: "Trainer_Invoices.zip",
		Invoices: []domain.RenderedInvoice{
			{BillNumber: "1_10012025", FileName: "Trainer_Invoice_1_10012025.pdf"},
			{BillNumber: "2_10012025", FileName: "Trainer_Invoice_2_10012025.pdf"},
		},
	}, nil)

	res, err := pipeline.GenerateForDate(context.Background(), "10-01-2025")
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, res.State)
	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, []string{"2025-01-10", "2025-01-11"}, res.AvailableDates)
	assert.Len(t, res.Invoices, 2)
	assert.Equal(t, "invoices/Trainer_Invoices.zip", res.ArchivePath)
}

func TestGenerateForDate_SlashSeparatedInput(t *testing.T) {
	pipeline, source, packager := newPipeline()
	target := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{sheetRow("1", "10-01-2025")}, nil)
	packager.On("Package", mock.Anything, mock.Anything, target).
		Return(&domain.InvoiceBatch{TargetDate: target}, nil)

	res, err := pipeline.GenerateForDate(context.Background(), "10/01/2025")
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, res.State)
	assert.True(t, res.TargetDate.Equal(target))
}

func TestGenerateForDate_NoMatchHaltsCleanly(t *testing.T) {
	pipeline, source, packager := newPipeline()

	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{
		sheetRow("1", "10-01-2025"),
	}, nil)

	res, err := pipeline.GenerateForDate(context.Background(), "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, domain.StateNoMatch, res.State)
	assert.Equal(t, 0, res.MatchCount)
	assert.Equal(t, []string{"2025-01-10"}, res.AvailableDates)
	packager.AssertNotCalled(t, "Package", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateForDate_InvalidDateHaltsBeforeFetch(t *testing.T) {
	pipeline, source, _ := newPipeline()

	res, err := pipeline.GenerateForDate(context.Background(), "2025-01-10")
	assert.ErrorIs(t, err, domain.ErrInvalidDateInput)
	assert.Equal(t, domain.StateFailed, res.State)
	source.AssertNotCalled(t, "FetchAll", mock.Anything)
}

func TestGenerateForDate_SourceFailureIsOpaque(t *testing.T) {
	pipeline, source, _ := newPipeline()

	source.On("FetchAll", mock.Anything).Return(nil, errors.New("oauth2: invalid_grant"))

	res, err := pipeline.GenerateForDate(context.Background(), "10-01-2025")
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "invalid_grant")
	assert.Equal(t, domain.StateFailed, res.State)
}

func TestGenerateForDate_MissingColumnAbortsBatch(t *testing.T) {
	pipeline, source, packager := newPipeline()

	bad := sheetRow("2", "10-01-2025")
	delete(bad, record.ColNetPayment)
	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{
		sheetRow("1", "10-01-2025"),
		bad,
	}, nil)

	res, err := pipeline.GenerateForDate(context.Background(), "10-01-2025")
	require.Error(t, err)
	assert.True(t, domain.IsMissingField(err))
	assert.Contains(t, err.Error(), "row 2")
	assert.Equal(t, domain.StateFailed, res.State)
	packager.AssertNotCalled(t, "Package", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateForDate_SkipsRowsWithUnparseableDates(t *testing.T) {
	pipeline, source, packager := newPipeline()
	target := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{
		sheetRow("1", "pending"),
		sheetRow("2", "10-01-2025"),
	}, nil)
	packager.On("Package", mock.Anything, mock.MatchedBy(func(recs []domain.BillingRecord) bool {
		return len(recs) == 1 && recs[0].SerialNo == "2"
	}), target).Return(&domain.InvoiceBatch{TargetDate: target}, nil)

	res, err := pipeline.GenerateForDate(context.Background(), "10-01-2025")
	require.NoError(t, err)
	assert.Equal(t, 1, res.MatchCount)
	assert.Equal(t, []string{"2025-01-10"}, res.AvailableDates)
}

func TestGenerateForDate_PackagerFailurePropagates(t *testing.T) {
	pipeline, source, packager := newPipeline()

	source.On("FetchAll", mock.Anything).Return([]domain.RawRow{sheetRow("1", "10-01-2025")}, nil)
	packager.On("Package", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("disk full"))

	res, err := pipeline.GenerateForDate(context.Background(), "10-01-2025")
	require.Error(t, err)
	assert.Equal(t, domain.StateFailed, res.State)
}
