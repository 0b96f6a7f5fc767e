package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"leaveform/internal/domain/submission"
)

func testRow(t *testing.T) []string {
	t.Helper()
	cols := submission.Columns()
	row := make([]string, len(cols))
	row[0] = "2026-04-01 08:00:00"
	row[1] = "juan.delacruz@lra.gov.ph"
	row[3] = "Dela Cruz"
	row[8] = "Sick Leave"
	row[19] = "Apr 1-3"
	row[20] = "3 Working days"
	return row
}

func openTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leave.xlsx")
	wb, err := Open(path, "Applications", "FormTemplate")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

func TestOpenCreatesHeaderRow(t *testing.T) {
	wb := openTestWorkbook(t)

	first, err := wb.file.GetCellValue(wb.registerSheet, "A1")
	if err != nil {
		t.Fatalf("read A1: %v", err)
	}
	if first != "Timestamp" {
		t.Fatalf("expected header row, got %q", first)
	}
}

func TestAppendAndReadRecord(t *testing.T) {
	wb := openTestWorkbook(t)
	ctx := context.Background()

	row, err := wb.AppendRecord(ctx, testRow(t))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if row != 2 {
		t.Fatalf("expected first application at row 2, got %d", row)
	}

	rec, err := wb.ReadRecord(ctx, row)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := rec.Resolve("Last Name"); got != "Dela Cruz" {
		t.Fatalf("unexpected last name %q", got)
	}
	if got := rec.Resolve("Inclusive Dates", "Smart Date String"); got != "Apr 1-3" {
		t.Fatalf("unexpected range %q", got)
	}
}

func TestReadRecordFallsBackToLatest(t *testing.T) {
	wb := openTestWorkbook(t)
	ctx := context.Background()

	if _, err := wb.AppendRecord(ctx, testRow(t)); err != nil {
		t.Fatalf("append: %v", err)
	}
	second := testRow(t)
	second[3] = "Reyes"
	if _, err := wb.AppendRecord(ctx, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := wb.ReadRecord(ctx, 99)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := rec.Resolve("Last Name"); got != "Reyes" {
		t.Fatalf("expected latest row, got %q", got)
	}
}

func TestReadRecordSurvivesHeaderDrift(t *testing.T) {
	wb := openTestWorkbook(t)
	ctx := context.Background()

	// A hand-edited register often ends up with retitled headers.
	if err := wb.file.SetCellStr(wb.registerSheet, "D1", "LAST NAME:"); err != nil {
		t.Fatalf("retitle header: %v", err)
	}

	row, err := wb.AppendRecord(ctx, testRow(t))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	rec, err := wb.ReadRecord(ctx, row)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := rec.Resolve("Last Name", "LAST NAME"); got != "Dela Cruz" {
		t.Fatalf("expected drift-tolerant resolution, got %q", got)
	}
}

func TestTemplateSlots(t *testing.T) {
	wb := openTestWorkbook(t)
	ctx := context.Background()

	if err := wb.SetText(ctx, "E5", "Dela Cruz Juan Santos"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if got, _ := wb.Slot("E5"); got != "Dela Cruz Juan Santos" {
		t.Fatalf("unexpected slot value %q", got)
	}

	if err := wb.SetCheck(ctx, "B15", true); err != nil {
		t.Fatalf("set check: %v", err)
	}
	if on, _ := wb.Checked("B15"); !on {
		t.Fatal("expected B15 checked")
	}
	if err := wb.SetCheck(ctx, "B15", false); err != nil {
		t.Fatalf("clear check: %v", err)
	}
	if on, _ := wb.Checked("B15"); on {
		t.Fatal("expected B15 cleared")
	}
}

func TestReopenKeepsRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leave.xlsx")
	ctx := context.Background()

	wb, err := Open(path, "Applications", "FormTemplate")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := wb.AppendRecord(ctx, testRow(t)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	wb, err = Open(path, "Applications", "FormTemplate")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer wb.Close()

	row, err := wb.AppendRecord(ctx, testRow(t))
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if row != 3 {
		t.Fatalf("expected second application at row 3, got %d", row)
	}
}
