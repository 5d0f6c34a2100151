package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

// SMTPMailer sends plain-text mail over authenticated SMTP. With no
// host configured it becomes a no-op so local environments work
// without a mail server.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	if m.host == "" {
		return nil
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
