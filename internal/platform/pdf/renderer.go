// Package pdf renders the filled CS Form No. 6 from the workbook's template
// slots into a printable document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Source exposes the template slot state the renderer draws from.
type Source interface {
	Slot(slot string) (string, error)
	Checked(slot string) (bool, error)
}

type Renderer struct {
	source Source
}

func New(source Source) *Renderer {
	return &Renderer{source: source}
}

type line struct {
	slot    string
	label   string
	heading bool
	text    bool // text slot, printed as "label: value"
	indent  int
}

// The printed form follows the checkbox order of the paper CS Form No. 6.
var leaveTypeLines = []line{
	{heading: true, label: "6.A TYPE OF LEAVE TO BE AVAILED OF"},
	{slot: "B11", label: "Vacation Leave"},
	{slot: "B13", label: "Mandatory/Forced Leave"},
	{slot: "B15", label: "Sick Leave"},
	{slot: "B17", label: "Maternity Leave"},
	{slot: "B19", label: "Paternity Leave"},
	{slot: "B21", label: "Special Privilege Leave"},
	{slot: "B23", label: "Solo Parent Leave"},
	{slot: "B25", label: "Study Leave"},
	{slot: "B27", label: "10-Day VAWC Leave"},
	{slot: "B29", label: "Rehabilitation Privilege"},
	{slot: "B31", label: "Special Leave Benefits for Women"},
	{slot: "B33", label: "Special Emergency (Calamity) Leave"},
	{slot: "B35", label: "Adoption Leave"},
	{slot: "B41", label: "Others", text: true},
}

var detailLines = []line{
	{heading: true, label: "6.B DETAILS OF LEAVE"},
	{label: "In case of Vacation/Special Privilege Leave:", heading: true, indent: 2},
	{slot: "H13", label: "Within the Philippines", indent: 4},
	{slot: "H15", label: "Abroad", indent: 4},
	{slot: "J15", label: "Specify", text: true, indent: 8},
	{label: "In case of Sick Leave:", heading: true, indent: 2},
	{slot: "H19", label: "In Hospital", indent: 4},
	{slot: "J19", label: "Specify Illness", text: true, indent: 8},
	{slot: "H21", label: "Out Patient", indent: 4},
	{slot: "J21", label: "Specify Illness", text: true, indent: 8},
	{label: "In case of Special Leave Benefits for Women:", heading: true, indent: 2},
	{slot: "J27", label: "Specify Illness", text: true, indent: 4},
	{label: "In case of Study Leave:", heading: true, indent: 2},
	{slot: "H33", label: "Completion of Master's Degree", indent: 4},
	{slot: "H35", label: "BAR/Board Examination Review", indent: 4},
	{label: "Other purpose:", heading: true, indent: 2},
	{slot: "H39", label: "Monetization of Leave Credits", indent: 4},
	{slot: "H41", label: "Terminal Leave", indent: 4},
}

// ExportDocument draws the form from the current slot values and returns the
// PDF bytes. The workbook is read slot by slot so a failed read surfaces with
// the slot name attached.
func (r *Renderer) ExportDocument(ctx context.Context) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Application for Leave", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "CS Form No. 6", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, "APPLICATION FOR LEAVE", "", 1, "C", false, 0, "")
	doc.Ln(4)

	if err := r.identity(doc); err != nil {
		return nil, err
	}
	doc.Ln(3)

	if err := r.section(doc, leaveTypeLines); err != nil {
		return nil, err
	}
	doc.Ln(2)
	if err := r.section(doc, detailLines); err != nil {
		return nil, err
	}
	doc.Ln(3)

	if err := r.footer(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) identity(doc *gofpdf.Fpdf) error {
	rows := []struct {
		label string
		slot  string
	}{
		{"1. OFFICE/DEPARTMENT", "B5"},
		{"2. NAME", "E5"},
		{"3. DATE OF FILING", "D6"},
		{"4. POSITION", "F6"},
		{"5. SALARY", "K6"},
	}
	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		value, err := r.source.Slot(row.slot)
		if err != nil {
			return fmt.Errorf("slot %s: %w", row.slot, err)
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(55, 6, row.label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, value, "B", 1, "L", false, 0, "")
	}
	return nil
}

func (r *Renderer) section(doc *gofpdf.Fpdf, lines []line) error {
	for _, ln := range lines {
		switch {
		case ln.heading:
			doc.SetFont("Helvetica", "B", 10)
			doc.CellFormat(0, 6, indentPad(ln.indent)+ln.label, "", 1, "L", false, 0, "")
		case ln.text:
			value, err := r.source.Slot(ln.slot)
			if err != nil {
				return fmt.Errorf("slot %s: %w", ln.slot, err)
			}
			doc.SetFont("Helvetica", "", 10)
			doc.CellFormat(0, 5, fmt.Sprintf("%s%s: %s", indentPad(ln.indent), ln.label, value), "", 1, "L", false, 0, "")
		default:
			on, err := r.source.Checked(ln.slot)
			if err != nil {
				return fmt.Errorf("slot %s: %w", ln.slot, err)
			}
			box := "[   ]"
			if on {
				box = "[ X ]"
			}
			doc.SetFont("Helvetica", "", 10)
			doc.CellFormat(0, 5, fmt.Sprintf("%s%s %s", indentPad(ln.indent), box, ln.label), "", 1, "L", false, 0, "")
		}
	}
	return nil
}

func (r *Renderer) footer(doc *gofpdf.Fpdf) error {
	duration, err := r.source.Slot("C45")
	if err != nil {
		return fmt.Errorf("slot C45: %w", err)
	}
	inclusive, err := r.source.Slot("C48")
	if err != nil {
		return fmt.Errorf("slot C48: %w", err)
	}
	signature, err := r.source.Slot("I48")
	if err != nil {
		return fmt.Errorf("slot I48: %w", err)
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "6.C NUMBER OF WORKING DAYS APPLIED FOR", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, duration, "B", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "INCLUSIVE DATES: "+inclusive, "", 1, "L", false, 0, "")
	doc.Ln(8)
	doc.CellFormat(0, 6, signature, "T", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "I", 8)
	doc.CellFormat(0, 5, "(Signature of Applicant)", "", 1, "C", false, 0, "")
	return nil
}

func indentPad(n int) string {
	return strings.Repeat(" ", n)
}
