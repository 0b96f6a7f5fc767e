// Package sheets keeps the application register and the CS Form No. 6
// template in a single xlsx workbook, mirroring the spreadsheet the HR
// office maintains by hand.
package sheets

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"leaveform/internal/domain/record"
	"leaveform/internal/domain/submission"
)

// CheckMark is the glyph written into a template slot when its checkbox is
// selected. A cleared slot holds the empty string.
const CheckMark = "X"

// Workbook is the xlsx-backed store. One sheet is the append-only register
// of applications, another holds the slot values for the most recently
// exported form. All access is serialized; the submission lock already keeps
// writers single-file, the mutex covers reads from the HTTP side.
type Workbook struct {
	mu            sync.Mutex
	file          *excelize.File
	path          string
	registerSheet string
	templateSheet string
}

// Open loads the workbook at path, creating it with the canonical header row
// when it does not exist yet. Missing sheets are added to an existing file so
// a workbook from an older deployment keeps working.
func Open(path, registerSheet, templateSheet string) (*Workbook, error) {
	var file *excelize.File
	if _, err := os.Stat(path); err == nil {
		file, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
	} else {
		file = excelize.NewFile()
	}

	wb := &Workbook{
		file:          file,
		path:          path,
		registerSheet: registerSheet,
		templateSheet: templateSheet,
	}
	if err := wb.ensureSheets(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return wb, nil
}

func (w *Workbook) ensureSheets() error {
	for _, name := range []string{w.registerSheet, w.templateSheet} {
		if idx, err := w.file.GetSheetIndex(name); err != nil {
			return err
		} else if idx < 0 {
			if _, err := w.file.NewSheet(name); err != nil {
				return fmt.Errorf("create sheet %s: %w", name, err)
			}
		}
	}

	// The default sheet of a fresh file is dead weight once ours exist.
	if idx, err := w.file.GetSheetIndex("Sheet1"); err == nil && idx >= 0 &&
		w.registerSheet != "Sheet1" && w.templateSheet != "Sheet1" {
		_ = w.file.DeleteSheet("Sheet1")
	}

	first, err := w.file.GetCellValue(w.registerSheet, "A1")
	if err != nil {
		return err
	}
	if first == "" {
		headers := submission.Columns()
		cells := make([]interface{}, len(headers))
		for i, h := range headers {
			cells[i] = h
		}
		if err := w.file.SetSheetRow(w.registerSheet, "A1", &cells); err != nil {
			return fmt.Errorf("write header row: %w", err)
		}
		if err := w.file.SaveAs(w.path); err != nil {
			return fmt.Errorf("save workbook: %w", err)
		}
	}
	return nil
}

// AppendRecord writes fields as the next register row and saves the file.
// The returned row number is 1-based, header included.
func (w *Workbook) AppendRecord(ctx context.Context, fields []string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows, err := w.file.GetRows(w.registerSheet)
	if err != nil {
		return 0, fmt.Errorf("read register: %w", err)
	}
	row := len(rows) + 1

	cells := make([]interface{}, len(fields))
	for i, f := range fields {
		cells[i] = f
	}
	anchor, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return 0, err
	}
	if err := w.file.SetSheetRow(w.registerSheet, anchor, &cells); err != nil {
		return 0, fmt.Errorf("append row %d: %w", row, err)
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}
	return row, nil
}

// ReadRecord returns the register row keyed by its live header row, so the
// export side survives header drift in a hand-edited workbook. A row outside
// the register falls back to the most recent entry.
func (w *Workbook) ReadRecord(ctx context.Context, row int) (record.Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows, err := w.file.GetRows(w.registerSheet)
	if err != nil {
		return record.Record{}, fmt.Errorf("read register: %w", err)
	}
	if len(rows) < 2 {
		return record.Record{}, fmt.Errorf("register %s has no applications", w.registerSheet)
	}
	if row < 2 || row > len(rows) {
		row = len(rows)
	}
	return record.FromRow(rows[0], rows[row-1]), nil
}

// SetText writes value into a template slot, clearing it when value is empty.
func (w *Workbook) SetText(ctx context.Context, slot, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.SetCellStr(w.templateSheet, slot, value)
}

// SetCheck marks or clears a checkbox slot.
func (w *Workbook) SetCheck(ctx context.Context, slot string, on bool) error {
	value := ""
	if on {
		value = CheckMark
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.SetCellStr(w.templateSheet, slot, value)
}

// Slot reads the current value of a template slot.
func (w *Workbook) Slot(slot string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.GetCellValue(w.templateSheet, slot)
}

// Checked reports whether a checkbox slot is currently marked.
func (w *Workbook) Checked(slot string) (bool, error) {
	value, err := w.Slot(slot)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// Save flushes any pending template writes to disk.
func (w *Workbook) Save() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.SaveAs(w.path)
}

// Close saves and releases the underlying file.
func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.file.SaveAs(w.path); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
