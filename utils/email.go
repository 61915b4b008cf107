package utils

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port := 587 // Default SMTP port
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendFormSubmissionEmail notifies the operations inbox about a new form
// submission. label names the form ("Consultation", "RTI Application", ...)
// and fields carries the submitted values.
func SendFormSubmissionEmail(label string, fields map[string]string) error {
	config := loadEmailConfig()
	to := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if config.Host == "" || to == "" {
		return fmt.Errorf("smtp host or admin notify email not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New %s submission", label))

	var rows strings.Builder
	for _, key := range sortedKeys(fields) {
		rows.WriteString(fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>", key, fields[key]))
	}
	body := fmt.Sprintf(`
		<h2>New %s submission</h2>
		<table border="1" cellpadding="6" cellspacing="0">%s</table>
	`, label, rows.String())
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

func sortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
