package domain

import "time"

// RawRow is one spreadsheet row as delivered by a record source,
// keyed by column header.
type RawRow map[string]string

// BillingRecord is one trainer's billing entry for a period.
//
// Money and quantity fields keep the source text verbatim: invoices must
// render exactly what the sheet holds, and the sheet mixes plain numbers
// with annotations like "N/A" or pre-formatted amounts.
type BillingRecord struct {
	SerialNo    string    `json:"serial_no"`
	BillingDate time.Time `json:"billing_date"`

	TrainerName string `json:"trainer_name"`
	BankName    string `json:"bank_name"`
	AccountNo   string `json:"account_no"`
	IFSCCode    string `json:"ifsc_code"`
	PANCard     string `json:"pan_card"`
	NameInBank  string `json:"name_in_bank"`

	ProjectCode string `json:"project_code"`
	Domain      string `json:"domain"`
	Topic       string `json:"topic"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`

	Sessions string `json:"sessions"`
	Hours    string `json:"hours"`
	Days     string `json:"days"`
	Students string `json:"students"`

	ChargesPerHour  string `json:"charges_per_hour"`
	ChargesPerDay   string `json:"charges_per_day"`
	FoodAndLodging  string `json:"food_and_lodging"`
	Travel          string `json:"travel"`
	TDSDeduction    string `json:"tds_deduction"`
	AdhocAdjustment string `json:"adhoc_adjustment"`
	TrainingCharges string `json:"training_charges"`
	TotalCost       string `json:"total_cost"`
	NetPayment      string `json:"net_payment"`
}

// HasBillingDate reports whether the record's billing date parsed cleanly.
// Records without a valid date never match a target date.
func (r *BillingRecord) HasBillingDate() bool {
	return !r.BillingDate.IsZero()
}

// BillNumber derives the document identifier for this record on the given
// target date: {serial}_{ddmmyyyy}. Unique per record per run.
func (r *BillingRecord) BillNumber(target time.Time) string {
	return r.SerialNo + "_" + target.Format("02012006")
}

// RenderedInvoice is the ephemeral output of rendering one record.
// It lives only until its batch archive is published.
type RenderedInvoice struct {
	BillNumber string `json:"bill_number"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
}

// InvoiceBatch is the ordered set of invoices produced for one target date,
// together with the archive that holds them.
type InvoiceBatch struct {
	TargetDate  time.Time         `json:"target_date"`
	Invoices    []RenderedInvoice `json:"invoices"`
	ArchivePath string            `json:"archive_path"`
	ArchiveName string            `json:"archive_name"`
}

// RunResult is the user-visible outcome of one pipeline run.
type RunResult struct {
	State          RunState          `json:"state"`
	TargetDate     time.Time         `json:"target_date"`
	AvailableDates []string          `json:"available_dates"`
	MatchCount     int               `json:"match_count"`
	Invoices       []RenderedInvoice `json:"invoices,omitempty"`
	ArchivePath    string            `json:"-"`
	ArchiveName    string            `json:"archive_name,omitempty"`
}
