// Package pdf renders printable documents with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/helpers"
)

// RenderPrescription writes an A4 prescription sheet for rx, which must carry
// its patient, prescriber and items.
func RenderPrescription(rx *models.Prescription) ([]byte, error) {
	if rx == nil || rx.Patient == nil || rx.Prescriber == nil {
		return nil, fmt.Errorf("prescription is missing patient or prescriber")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("Prescription #%d", rx.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(20, 60, 120)
	pdf.CellFormat(0, 10, "PharmaLab Teaching Pharmacy", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, "Educational use only - not valid for dispensing", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 9, fmt.Sprintf("Prescription #%d", rx.ID), "1", 1, "C", false, 0, "")

	detail(pdf, tr, "Patient", fmt.Sprintf("%s (%s)", rx.Patient.FullName(), rx.Patient.PatientID))
	detail(pdf, tr, "Prescriber", rx.Prescriber.Username)
	detail(pdf, tr, "Date", rx.DatePrescribed.Format("2006-01-02 15:04"))
	detail(pdf, tr, "Status", strings.ToUpper(string(rx.Status)))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	widths := []float64{70, 35, 45, 30}
	for i, h := range []string{"Medication", "Dosage", "Frequency", "Duration"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if len(rx.Items) == 0 {
		pdf.CellFormat(0, 8, "No items", "1", 1, "C", false, 0, "")
	}
	for _, item := range rx.Items {
		name := fmt.Sprintf("#%d", item.MedicationID)
		if item.Medication != nil {
			name = item.Medication.Name
			if s := helpers.Deref(item.Medication.Strength); s != "" {
				name += " " + s
			}
		}
		pdf.CellFormat(widths[0], 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, tr(item.Dosage), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, tr(item.Frequency), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, tr(helpers.Deref(item.Duration)), "1", 1, "L", false, 0, "")
	}

	if instructions := helpers.Deref(rx.Instructions); instructions != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(instructions), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render prescription pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func detail(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 8, label, "1", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, tr(value), "1", 1, "", false, 0, "")
}
