package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"leaveform/internal/domain/daterange"
	"leaveform/internal/domain/record"
	"leaveform/internal/platform/locker"
)

// Store is the spreadsheet-backed storage collaborator.
type Store interface {
	AppendRecord(ctx context.Context, fields []string) (int, error)
	ReadRecord(ctx context.Context, row int) (record.Record, error)
}

// Exporter runs the best-effort template-fill, render, email, and archive
// pipeline after the authoritative row exists.
type Exporter interface {
	Export(ctx context.Context, rec record.Record) error
}

type Service struct {
	store    Store
	exporter Exporter
	lock     *locker.Locker
	lockWait time.Duration
	now      func() time.Time
}

func NewService(store Store, exporter Exporter, lockWait time.Duration) *Service {
	return &Service{
		store:    store,
		exporter: exporter,
		lock:     locker.New(),
		lockWait: lockWait,
		now:      time.Now,
	}
}

// Submit validates the payload, consolidates the selected dates, persists the
// 21-column row under the exclusive lock, and hands the persisted record to
// the export pipeline. Export failures are logged, never propagated: the row
// is the authoritative outcome of the data-capture step.
func (s *Service) Submit(ctx context.Context, p Payload) (Receipt, error) {
	v := &validator{}
	v.required("email", p.Email)
	v.required("fullName", p.FullName)
	v.required("position", p.Position)
	v.required("typeOfLeave", p.TypeOfLeave)

	dates, dateIssues := collectDates(p)
	v.issues = append(v.issues, dateIssues...)
	if err := v.err(); err != nil {
		return Receipt{}, err
	}

	summary, err := daterange.Summarize(dates)
	if err != nil {
		return Receipt{}, &ValidationError{Issues: []Issue{{Field: "dates", Reason: "no dates selected"}}}
	}

	if !s.lock.TryLock(ctx, s.lockWait) {
		return Receipt{}, ErrBusy
	}
	defer s.lock.Unlock()

	fields := s.buildRow(p, summary)
	row, err := s.store.AppendRecord(ctx, fields)
	if err != nil {
		return Receipt{}, fmt.Errorf("append record: %w", err)
	}

	rec, err := s.store.ReadRecord(ctx, row)
	if err != nil {
		slog.Warn("read-back of persisted row failed, filling from submitted values", "row", row, "err", err)
		rec = record.FromRow(Columns(), fields)
	}

	if err := s.exporter.Export(ctx, rec); err != nil {
		slog.Warn("form export failed after persist", "row", row, "err", err)
	}

	return Receipt{Row: row, RangeText: summary.RangeText(), Duration: summary.DurationLabel()}, nil
}

func (s *Service) buildRow(p Payload, summary daterange.Summary) []string {
	lastName, firstName, middleName := splitFullName(p.FullName)

	office := strings.TrimSpace(p.Office)
	if office == "" || strings.EqualFold(office, "Others") {
		office = strings.TrimSpace(p.OtherOfficeAndPosition)
		if office == "" {
			office = "Not Specified"
		}
	}

	return []string{
		s.now().Format("2006-01-02 15:04:05"),
		strings.TrimSpace(p.Email),
		office,
		lastName,
		firstName,
		middleName,
		strings.TrimSpace(p.Position),
		strings.TrimSpace(p.SalaryGrade),
		strings.TrimSpace(p.TypeOfLeave),
		strings.TrimSpace(p.VacationPrivilegeSpec),
		strings.TrimSpace(p.AbroadSpec),
		strings.TrimSpace(p.SickLeaveSpec),
		strings.TrimSpace(p.InHospitalSpec),
		strings.TrimSpace(p.OutpatientSpec),
		strings.TrimSpace(p.WomenBenefitsSpec),
		strings.TrimSpace(p.StudyLeaveSpec),
		strings.TrimSpace(p.OtherSpec),
		strings.TrimSpace(p.OtherPurposeSpec),
		summary.ISOList(),
		summary.RangeText(),
		summary.DurationLabel(),
	}
}

// splitFullName follows the form's convention: "Last, First, Middle" when a
// comma is present, otherwise the final space-separated word is the last name.
func splitFullName(full string) (lastName, firstName, middleName string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", "", ""
	}
	if strings.Contains(full, ",") {
		parts := strings.Split(full, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		lastName = parts[0]
		if len(parts) > 1 {
			firstName = parts[1]
		}
		if len(parts) > 2 {
			middleName = parts[2]
		}
		return lastName, firstName, middleName
	}
	words := strings.Fields(full)
	lastName = words[len(words)-1]
	firstName = strings.Join(words[:len(words)-1], " ")
	return lastName, firstName, ""
}

func collectDates(p Payload) ([]time.Time, []Issue) {
	var issues []Issue
	var dates []time.Time

	switch strings.ToLower(strings.TrimSpace(p.DateSelectionMode)) {
	case ModeSingle:
		if d, ok := parseDate(p.SingleDate); ok {
			dates = append(dates, d)
		} else if strings.TrimSpace(p.SingleDate) != "" {
			issues = append(issues, Issue{Field: "singleDate", Reason: "must be a valid date"})
		}
	case ModeRange:
		start, okStart := parseDate(p.StartDate)
		end, okEnd := parseDate(p.EndDate)
		if !okStart {
			issues = append(issues, Issue{Field: "startDate", Reason: "must be a valid date"})
		}
		if !okEnd {
			issues = append(issues, Issue{Field: "endDate", Reason: "must be a valid date"})
		}
		if okStart && okEnd {
			if end.Before(start) {
				issues = append(issues, Issue{Field: "endDate", Reason: "must be on or after startDate"})
			} else {
				for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
					dates = append(dates, d)
				}
			}
		}
	case ModeMultiple:
		for _, raw := range p.Dates {
			if d, ok := parseDate(raw); ok {
				dates = append(dates, d)
			} else if strings.TrimSpace(raw) != "" {
				issues = append(issues, Issue{Field: "dates", Reason: fmt.Sprintf("%q is not a valid date", raw)})
			}
		}
	default:
		// Older form builds omit the mode and send a plain dates array.
		for _, raw := range p.Dates {
			if d, ok := parseDate(raw); ok {
				dates = append(dates, d)
			}
		}
	}

	return dates, issues
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}
