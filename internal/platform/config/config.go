package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                 string
	Environment          string
	WorkbookPath         string
	ApplicationsSheet    string
	TemplateSheet        string
	ArchiveDir           string
	EmailEnabled         bool
	EmailFrom            string
	SMTPHost             string
	SMTPPort             int
	SMTPUser             string
	SMTPPassword         string
	SMTPUseTLS           bool
	MaxBodyBytes         int64
	RateLimitPerMinute   int
	SubmitLockWait       time.Duration
	ExportRetryAttempts  int
	ExportRetryBaseDelay time.Duration
	MetricsEnabled       bool
}

func Load() Config {
	return Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		Environment:          getEnv("APP_ENV", "development"),
		WorkbookPath:         getEnv("WORKBOOK_PATH", "storage/leave_applications.xlsx"),
		ApplicationsSheet:    getEnv("APPLICATIONS_SHEET", "LRA_Leave_Applications"),
		TemplateSheet:        getEnv("TEMPLATE_SHEET", "LeaveApplicationFormTemplate"),
		ArchiveDir:           getEnv("ARCHIVE_DIR", "storage/forms"),
		EmailEnabled:         getEnvBool("EMAIL_ENABLED", false),
		EmailFrom:            getEnv("EMAIL_FROM", "no-reply@example.com"),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnvInt("SMTP_PORT", 587),
		SMTPUser:             getEnv("SMTP_USER", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:           getEnvBool("SMTP_USE_TLS", true),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:   getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		SubmitLockWait:       getEnvDuration("SUBMIT_LOCK_WAIT", 10*time.Second),
		ExportRetryAttempts:  getEnvInt("EXPORT_RETRY_ATTEMPTS", 4),
		ExportRetryBaseDelay: getEnvDuration("EXPORT_RETRY_BASE_DELAY", 500*time.Millisecond),
		MetricsEnabled:       getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.WorkbookPath) == "" {
		return fmt.Errorf("WORKBOOK_PATH is required")
	}
	if strings.TrimSpace(c.ApplicationsSheet) == "" || strings.TrimSpace(c.TemplateSheet) == "" {
		return fmt.Errorf("APPLICATIONS_SHEET and TEMPLATE_SHEET are required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SubmitLockWait <= 0 {
		return fmt.Errorf("SUBMIT_LOCK_WAIT must be positive")
	}
	if c.ExportRetryAttempts < 1 {
		return fmt.Errorf("EXPORT_RETRY_ATTEMPTS must be at least 1")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}
