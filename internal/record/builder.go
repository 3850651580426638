// Package record maps raw spreadsheet rows onto domain.BillingRecord values
// and owns the billing-date parsing rules shared by the pipeline.
package record

import (
	"fmt"
	"strings"
	"time"

	"trainerbills/internal/domain"
)

// Column headers as they appear in the Trainer Bills sheet.
const (
	ColSerialNo        = "Sr No"
	ColBillingDate     = "Billing Date"
	ColTrainerName     = "Name of the Trainer"
	ColProjectCode     = "Project Code"
	ColDomain          = "Domain"
	ColTopic           = "Topic"
	ColFromDate        = "From Date"
	ColToDate          = "End date"
	ColChargesPerHour  = "Charges/ Hour"
	ColChargesPerDay   = "Charges/ Day"
	ColHours           = "No of Hours"
	ColDays            = "No of Days"
	ColSessions        = "No of Sessions"
	ColStudents        = "No of Students"
	ColFoodAndLodging  = "Food and Lodging"
	ColTravel          = "Travel"
	ColTDS             = "TDS Deduction"
	ColAdhoc           = "Adhoc Addition/Deduction"
	ColTrainingCharges = "Total Training Charges"
	ColTotalCost       = "Total"
	ColNetPayment      = "Net Payment"
	ColBankName        = "Bank Name"
	ColAccountNo       = "Account Number"
	ColIFSC            = "IFSC Code"
	ColPAN             = "PAN Card"
	ColNameInBank      = "Name in Bank"
)

// requiredColumns are the columns every row must carry. A row missing any of
// them cannot be turned into a record and aborts the batch.
var requiredColumns = []string{
	ColSerialNo,
	ColBillingDate,
	ColTrainerName,
	ColProjectCode,
	ColDomain,
	ColTopic,
	ColFromDate,
	ColToDate,
	ColChargesPerHour,
	ColChargesPerDay,
	ColHours,
	ColDays,
	ColSessions,
	ColStudents,
	ColFoodAndLodging,
	ColTravel,
	ColTDS,
	ColAdhoc,
	ColTrainingCharges,
	ColTotalCost,
	ColNetPayment,
	ColBankName,
	ColAccountNo,
	ColIFSC,
	ColPAN,
	ColNameInBank,
}

// dateLayout is dd-mm-yyyy after separator normalization.
const dateLayout = "02-01-2006"

// FromRow builds a BillingRecord from one raw row. A required column that is
// absent yields a MissingFieldError naming it. An unparseable billing date is
// not an error: the record keeps a zero date and is excluded from matching.
func FromRow(row domain.RawRow) (*domain.BillingRecord, error) {
	for _, col := range requiredColumns {
		if _, ok := row[col]; !ok {
			return nil, &domain.MissingFieldError{Column: col}
		}
	}

	rec := &domain.BillingRecord{
		SerialNo:        strings.TrimSpace(row[ColSerialNo]),
		TrainerName:     strings.TrimSpace(row[ColTrainerName]),
		ProjectCode:     strings.TrimSpace(row[ColProjectCode]),
		Domain:          strings.TrimSpace(row[ColDomain]),
		Topic:           strings.TrimSpace(row[ColTopic]),
		FromDate:        strings.TrimSpace(row[ColFromDate]),
		ToDate:          strings.TrimSpace(row[ColToDate]),
		Sessions:        strings.TrimSpace(row[ColSessions]),
		Hours:           strings.TrimSpace(row[ColHours]),
		Days:            strings.TrimSpace(row[ColDays]),
		Students:        strings.TrimSpace(row[ColStudents]),
		ChargesPerHour:  strings.TrimSpace(row[ColChargesPerHour]),
		ChargesPerDay:   strings.TrimSpace(row[ColChargesPerDay]),
		FoodAndLodging:  strings.TrimSpace(row[ColFoodAndLodging]),
		Travel:          strings.TrimSpace(row[ColTravel]),
		TDSDeduction:    strings.TrimSpace(row[ColTDS]),
		AdhocAdjustment: strings.TrimSpace(row[ColAdhoc]),
		TrainingCharges: strings.TrimSpace(row[ColTrainingCharges]),
		TotalCost:       strings.TrimSpace(row[ColTotalCost]),
		NetPayment:      strings.TrimSpace(row[ColNetPayment]),
		BankName:        strings.TrimSpace(row[ColBankName]),
		AccountNo:       strings.TrimSpace(row[ColAccountNo]),
		IFSCCode:        strings.TrimSpace(row[ColIFSC]),
		PANCard:         strings.TrimSpace(row[ColPAN]),
		NameInBank:      strings.TrimSpace(row[ColNameInBank]),
	}

	if d, err := parseDayFirst(row[ColBillingDate]); err == nil {
		rec.BillingDate = d
	}

	return rec, nil
}

// ParseTargetDate parses operator input, accepting "-" or "/" separators.
// The normalized form is dd-mm-yyyy.
func ParseTargetDate(input string) (time.Time, error) {
	d, err := parseDayFirst(input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateInput, strings.TrimSpace(input))
	}
	return d, nil
}

func parseDayFirst(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "/", "-"))
	return time.Parse(dateLayout, s)
}
