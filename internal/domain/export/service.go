// Package export turns a persisted application record into the filled
// CS Form No. 6: template fill, PDF render, email delivery, and archive.
// Everything here is best-effort; the persisted row is already the
// authoritative record when this pipeline runs.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"leaveform/internal/domain/classify"
	"leaveform/internal/domain/daterange"
	"leaveform/internal/domain/record"
	"leaveform/internal/platform/retryutil"
)

// Template exposes the named cell-like slots of the paper-form template.
type Template interface {
	SetText(ctx context.Context, slot, value string) error
	SetCheck(ctx context.Context, slot string, on bool) error
}

// Renderer exports the current template state as a PDF document.
type Renderer interface {
	ExportDocument(ctx context.Context) ([]byte, error)
}

// Mailer delivers the rendered form to the applicant.
type Mailer interface {
	SendWithAttachment(ctx context.Context, to, subject, body, filename string, blob []byte) error
}

// Archive stores the rendered form for the records office.
type Archive interface {
	Store(ctx context.Context, filename string, blob []byte) (string, error)
}

type Service struct {
	taxonomy      *classify.Taxonomy
	template      Template
	renderer      Renderer
	mailer        Mailer
	archive       Archive
	retryAttempts int
	retryBase     time.Duration
	now           func() time.Time
}

func NewService(taxonomy *classify.Taxonomy, template Template, renderer Renderer, mailer Mailer, archive Archive, retryAttempts int, retryBase time.Duration) *Service {
	return &Service{
		taxonomy:      taxonomy,
		template:      template,
		renderer:      renderer,
		mailer:        mailer,
		archive:       archive,
		retryAttempts: retryAttempts,
		retryBase:     retryBase,
		now:           time.Now,
	}
}

// Template slots outside the checkbox universe.
const (
	slotOffice     = "B5"
	slotName       = "E5"
	slotFilingDate = "D6"
	slotPosition   = "F6"
	slotSalary     = "K6"
	slotDuration   = "C45"
	slotInclusive  = "C48"
	slotSignature  = "I48"
)

// Export fills the template from the record, renders the PDF, then archives
// and emails it. Only a render failure is returned; individual slot writes,
// the archive, and the email degrade to logged warnings because a partial
// paper form still beats no paper form.
func (s *Service) Export(ctx context.Context, rec record.Record) error {
	lastName := rec.Resolve("Last Name", "LAST NAME")
	firstName := rec.Resolve("First Name", "FIRST NAME")
	middleName := rec.Resolve("Middle Name", "MIDDLE NAME")
	fullName := joinNonEmpty(" ", lastName, firstName, middleName)

	s.setText(ctx, slotOffice, rec.Resolve("Office/Department", "Office / Department"))
	s.setText(ctx, slotName, fullName)
	s.setText(ctx, slotFilingDate, daterange.FilingDate(rec.Resolve("Timestamp", "Date")))
	s.setText(ctx, slotPosition, rec.Resolve("Position"))
	s.setText(ctx, slotSalary, salaryGradeLabel(rec.Resolve("Salary Grade")))
	s.setText(ctx, slotInclusive, rec.Resolve("Inclusive Dates", "Smart Date String"))
	s.setText(ctx, slotDuration, rec.Resolve("Duration", "Total Duration"))
	s.setText(ctx, slotSignature, fullName)

	s.applyClassification(ctx, rec)

	var blob []byte
	err := retryutil.Do(ctx, s.retryAttempts, s.retryBase, func(ctx context.Context) error {
		rendered, renderErr := s.renderer.ExportDocument(ctx)
		if renderErr != nil {
			return renderErr
		}
		blob = rendered
		return nil
	})
	if err != nil {
		return fmt.Errorf("render form: %w", err)
	}

	filename := FormFilename(lastName, s.now())

	if s.archive != nil {
		if err := retryutil.Do(ctx, s.retryAttempts, s.retryBase, func(ctx context.Context) error {
			_, storeErr := s.archive.Store(ctx, filename, blob)
			return storeErr
		}); err != nil {
			slog.Warn("form archive failed", "filename", filename, "err", err)
		}
	}

	email := strings.TrimSpace(rec.Resolve("Email Address", "Email"))
	if email == "" || !strings.Contains(email, "@") {
		slog.Warn("no valid applicant email, skipping delivery", "email", email)
		return nil
	}
	subject := "CS Form No. 6 - " + firstOr(lastName, "Applicant")
	if err := retryutil.Do(ctx, s.retryAttempts, s.retryBase, func(ctx context.Context) error {
		return s.mailer.SendWithAttachment(ctx, email, subject, deliveryBody, filename, blob)
	}); err != nil {
		slog.Warn("form delivery failed", "to", email, "err", err)
	}

	return nil
}

// applyClassification resets the full checkbox and text-field universe, then
// applies one classification pass over the free-text sources. Repeated exports
// of the same record land on an identical template state.
func (s *Service) applyClassification(ctx context.Context, rec record.Record) {
	sources := []string{
		rec.Resolve("Type of Leave to be Avail of"),
		rec.Resolve("Vacation/Special Privilege Leave Specification"),
		rec.Resolve("Specify if the employee is an In Hospital or Outpatient"),
		rec.Resolve("Specify the reason of study leave within the option given"),
		rec.Resolve("What the purpose of the employee on availing the leave"),
		rec.Resolve("Specify the country if you selected \"Abroad\" from the previous question"),
		rec.Resolve("Specify which type of leave where the employee want to avail"),
		rec.Resolve("Please specify the nature of the illness requiring the employee's inpatient hospitalization"),
		rec.Resolve("Please specify the medical condition for which the employee is receiving outpatient treatment."),
		rec.Resolve("Special Leave Benefits for Women Specification"),
	}

	result := s.taxonomy.Classify(sources)

	for field, on := range result.Active {
		if err := s.template.SetCheck(ctx, field, on); err != nil {
			slog.Warn("checkbox write failed", "slot", field, "err", err)
		}
	}
	for _, field := range s.taxonomy.TextFields() {
		s.setText(ctx, field, "")
	}
	if result.Residue != "" {
		s.setText(ctx, result.TextTarget, result.Residue)
	}
}

func (s *Service) setText(ctx context.Context, slot, value string) {
	if err := s.template.SetText(ctx, slot, value); err != nil {
		slog.Warn("template write failed", "slot", slot, "err", err)
	}
}

// FormFilename builds the archive/attachment name from the applicant's last
// name, with filesystem-hostile characters replaced.
func FormFilename(lastName string, at time.Time) string {
	base := strings.TrimSpace(lastName)
	if base == "" {
		base = "NoLastName"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case strings.ContainsRune(`\/:*?"<>|`, r):
			b.WriteByte('_')
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String() + "_CS_FORM_NO_6_" + at.Format("20060102_150405") + ".pdf"
}

func salaryGradeLabel(sg string) string {
	sg = strings.TrimSpace(sg)
	if sg == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(sg), "sg") {
		return sg
	}
	return "SG" + sg
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func firstOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

const deliveryBody = "Dear Employee,\n\n" +
	"Please be informed that your CS Form No. 6 (Application for Leave) has been successfully generated. " +
	"A copy of the completed form, based on your submitted responses, is attached for your reference.\n\n" +
	"For any questions or clarifications, please contact the Human Resources Department during office hours.\n\n" +
	"Thank you.\n\n" +
	"Respectfully,\n" +
	"Human Resources Department"
