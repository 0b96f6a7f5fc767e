// Package email delivers the rendered CS Form No. 6 to the applicant over
// SMTP. When delivery is disabled the mailer degrades to a no-op so the rest
// of the export pipeline behaves identically in development.
package email

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"leaveform/internal/domain/export"
	"leaveform/internal/platform/config"
)

type noopMailer struct{}

func (noopMailer) SendWithAttachment(ctx context.Context, to, subject, body, filename string, blob []byte) error {
	slog.Info("email disabled, skipping delivery", "to", to, "filename", filename)
	return nil
}

type smtpMailer struct {
	cfg config.Config
}

func New(cfg config.Config) export.Mailer {
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) SendWithAttachment(ctx context.Context, to, subject, body, filename string, blob []byte) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	msg := buildMessage(s.cfg.EmailFrom, to, subject, body, filename, blob)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.cfg.SMTPUseTLS {
		tlsConfig := &tls.Config{ServerName: s.cfg.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return err
		}
	}

	if s.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.cfg.EmailFrom); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

const mimeBoundary = "=_leaveform_mixed_boundary"

// buildMessage assembles a multipart/mixed message: a plain-text body part
// followed by the PDF attachment, base64-encoded in 76-column lines.
func buildMessage(from, to, subject, body, filename string, blob []byte) []byte {
	var b strings.Builder
	write := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	write("From: " + from)
	write("To: " + to)
	write("Subject: " + mime.QEncoding.Encode("UTF-8", subject))
	write("MIME-Version: 1.0")
	write(`Content-Type: multipart/mixed; boundary="` + mimeBoundary + `"`)
	write("")
	write("--" + mimeBoundary)
	write(`Content-Type: text/plain; charset="UTF-8"`)
	write("Content-Transfer-Encoding: 8bit")
	write("")
	write(strings.ReplaceAll(body, "\n", "\r\n"))
	write("--" + mimeBoundary)
	write(fmt.Sprintf(`Content-Type: application/pdf; name="%s"`, filename))
	write("Content-Transfer-Encoding: base64")
	write(fmt.Sprintf(`Content-Disposition: attachment; filename="%s"`, filename))
	write("")

	encoded := base64.StdEncoding.EncodeToString(blob)
	for len(encoded) > 0 {
		n := 76
		if len(encoded) < n {
			n = len(encoded)
		}
		write(encoded[:n])
		encoded = encoded[n:]
	}
	write("--" + mimeBoundary + "--")

	return []byte(b.String())
}
