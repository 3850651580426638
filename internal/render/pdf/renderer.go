// Package pdf renders trainer invoices as fixed-layout A4 documents.
// The layout is load-bearing: generated invoices must match the ones already
// printed and archived, so cell widths, heights, and ordering are fixed.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"trainerbills/internal/config"
	"trainerbills/internal/domain"
)

const (
	pageWidth  = 210.0
	pageHeight = 297.0

	bottomMargin = 15.0

	// placeholder is rendered where a value cannot be computed.
	placeholder = "-"
)

// creationDate is fixed so that rendering is a pure function of its input:
// the same record always produces byte-identical output.
var creationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Renderer lays out one BillingRecord per document. Safe for reuse across
// records; it holds only the fixed invoice content.
type Renderer struct {
	recipientName string
	recipientAddr string
	currency      string
	logoPath      string
}

// New creates a Renderer from the fixed invoice configuration.
func New(cfg *config.InvoiceConfig) *Renderer {
	return &Renderer{
		recipientName: cfg.RecipientName,
		recipientAddr: cfg.RecipientAddress,
		currency:      cfg.CurrencyPrefix,
		logoPath:      cfg.LogoPath,
	}
}

// Render produces the invoice PDF for rec on the given target date.
// A missing branding asset only drops the logo and watermark placements;
// it never fails the render.
func (r *Renderer) Render(rec *domain.BillingRecord, target time.Time) ([]byte, error) {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetCreationDate(creationDate)
	f.SetCatalogSort(true)
	f.SetAutoPageBreak(true, bottomMargin)
	f.AddPage()

	hasLogo := r.logoPath != "" && fileExists(r.logoPath)

	r.header(f, hasLogo)
	r.addresses(f, rec)
	r.detailsGrid(f, rec, target)
	r.chargesTable(f, rec)
	r.totals(f, rec)
	r.summary(f, rec)
	r.signatureFooter(f)

	if f.Err() {
		return nil, fmt.Errorf("render invoice %s: %w", rec.BillNumber(target), f.Error())
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("write invoice %s: %w", rec.BillNumber(target), err)
	}
	return buf.Bytes(), nil
}

// header draws the centered watermark, the shaded title band, and the logo.
func (r *Renderer) header(f *gofpdf.Fpdf, hasLogo bool) {
	if hasLogo {
		const wmWidth, wmHeight = 70.0, 30.0
		f.Image(r.logoPath, (pageWidth-wmWidth)/2, (pageHeight-wmHeight)/2, wmWidth, wmHeight, false, "", 0, "")
	}

	f.SetFillColor(200, 200, 200)
	f.Rect(0, 10, pageWidth, 15, "F")
	if hasLogo {
		f.Image(r.logoPath, 10, 10, 30, 15, false, "", 0, "")
	}
	f.SetFont("Arial", "B", 16)
	f.SetXY(0, 10)
	f.CellFormat(pageWidth, 15, "Trainer Invoice", "", 1, "C", false, 0, "")
	f.Ln(10)
}

// addresses draws the fixed "To" block and the trainer "From" block.
func (r *Renderer) addresses(f *gofpdf.Fpdf, rec *domain.BillingRecord) {
	f.SetFont("Arial", "", 10)
	f.CellFormat(0, 8, "To", "", 1, "L", false, 0, "")
	f.MultiCell(0, 5, r.recipientName+"\n"+r.recipientAddr, "", "L", false)
	f.Ln(2)
	f.CellFormat(0, 8, "From", "", 1, "L", false, 0, "")
	f.MultiCell(0, 5, rec.TrainerName, "", "L", false)
	f.Ln(3)
}

// detailsGrid draws the paired Bill Details / Account Details boxes.
func (r *Renderer) detailsGrid(f *gofpdf.Fpdf, rec *domain.BillingRecord, target time.Time) {
	f.SetFont("Arial", "B", 10)
	f.CellFormat(90, 8, "Bill Details", "1", 0, "L", false, 0, "")
	f.CellFormat(0, 8, "Account Details of Trainer", "1", 1, "L", false, 0, "")

	f.SetFont("Arial", "", 9)
	pairs := [][2]string{
		{"Bill Number: " + rec.BillNumber(target), "Name in Bank: " + rec.NameInBank},
		{"Project Code: " + rec.ProjectCode, "Bank Name: " + rec.BankName},
		{"Domain: " + rec.Domain, "Bank Account No: " + rec.AccountNo},
		{"Topic: " + rec.Topic, "IFSC Code: " + rec.IFSCCode},
		{"From: " + rec.FromDate, "PAN Card: " + rec.PANCard},
		{"To: " + rec.ToDate, "Billing Date: " + target.Format("02-01-2006")},
	}
	for _, p := range pairs {
		f.CellFormat(90, 6, p[0], "1", 0, "L", false, 0, "")
		f.CellFormat(0, 6, p[1], "1", 1, "L", false, 0, "")
	}
}

// chargesTable draws the four charge rows. The hourly total comes from the
// sheet's precomputed value; the daily total is recomputed as days x rate and
// falls back to a dash when either operand is non-numeric. Flat charges leave
// the rate and quantity cells blank.
func (r *Renderer) chargesTable(f *gofpdf.Fpdf, rec *domain.BillingRecord) {
	f.Ln(5)
	f.SetFont("Arial", "B", 10)
	f.CellFormat(60, 8, "Charges", "1", 0, "L", false, 0, "")
	f.CellFormat(40, 8, "Rate", "1", 0, "L", false, 0, "")
	f.CellFormat(40, 8, "Total Hrs/Days", "1", 0, "L", false, 0, "")
	f.CellFormat(0, 8, "Total Amount", "1", 1, "L", false, 0, "")

	f.SetFont("Arial", "", 9)
	r.chargeRow(f, "Training Charges per Hour", r.currency+rec.ChargesPerHour, rec.Hours, r.currency+rec.TrainingCharges)
	r.chargeRow(f, "Training Charges per Day", r.currency+rec.ChargesPerDay, rec.Days, r.currency+dailyTotal(rec.Days, rec.ChargesPerDay))
	r.chargeRow(f, "Food and Lodging", "", "", r.currency+rec.FoodAndLodging)
	r.chargeRow(f, "Travel", "", "", r.currency+rec.Travel)
}

func (r *Renderer) chargeRow(f *gofpdf.Fpdf, label, rate, qty, total string) {
	f.CellFormat(60, 6, label, "1", 0, "L", false, 0, "")
	f.CellFormat(40, 6, rate, "1", 0, "L", false, 0, "")
	f.CellFormat(40, 6, qty, "1", 0, "L", false, 0, "")
	f.CellFormat(0, 6, total, "1", 1, "L", false, 0, "")
}

// totals draws the four bordered total rows.
func (r *Renderer) totals(f *gofpdf.Fpdf, rec *domain.BillingRecord) {
	f.SetFont("Arial", "B", 10)
	rows := [][2]string{
		{"Total Amount", rec.TotalCost},
		{"Adhoc Addition/Deduction", rec.AdhocAdjustment},
		{"Less (TDS)", rec.TDSDeduction},
		{"Net Payment", rec.NetPayment},
	}
	for _, row := range rows {
		f.CellFormat(140, 6, row[0], "1", 0, "L", false, 0, "")
		f.CellFormat(0, 6, r.currency+row[1], "1", 1, "L", false, 0, "")
	}
}

// summary draws the training summary block. Average Students/Batch is always
// a literal dash; it is never computed from the counts.
func (r *Renderer) summary(f *gofpdf.Fpdf, rec *domain.BillingRecord) {
	f.Ln(5)
	f.SetFont("Arial", "B", 10)
	f.CellFormat(0, 8, "Summary of Training", "1", 1, "L", false, 0, "")

	f.SetFont("Arial", "", 9)
	rows := [][2]string{
		{"No of Sessions", rec.Sessions},
		{"No of Hours", rec.Hours},
		{"No of Attendees", rec.Students},
		{"Average Students/ Batch", placeholder},
	}
	for _, row := range rows {
		f.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		f.CellFormat(0, 6, row[1], "1", 1, "L", false, 0, "")
	}
}

// signatureFooter draws five centered title columns over five taller blank
// signature boxes, centered as a block.
func (r *Renderer) signatureFooter(f *gofpdf.Fpdf) {
	const colWidth = 38.0
	leftMargin := (pageWidth - colWidth*5) / 2

	f.Ln(10)
	f.SetX(leftMargin)
	f.SetFont("Arial", "", 9)
	titles := []string{"L & D Manager", "Co-founder", "Paid By", "Date/Stamp", "Ref. ID"}
	for i, title := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		f.CellFormat(colWidth, 6, title, "1", ln, "C", false, 0, "")
	}

	f.SetX(leftMargin)
	for range titles {
		f.CellFormat(colWidth, 12, "", "1", 0, "C", false, 0, "")
	}
	f.Ln(-1)
}

// dailyTotal recomputes the daily charges total as days x rate, mirroring the
// sheet's int x float coercion. Either operand failing to parse yields the
// placeholder dash; this leniency is deliberately confined to this one cell.
func dailyTotal(days, rate string) string {
	d, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return placeholder
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil {
		return placeholder
	}
	return strconv.FormatFloat(float64(d)*r, 'f', -1, 64)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
