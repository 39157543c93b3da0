// Package mail holds the outbound mail transports behind auth.Mailer.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// SMTPMailer sends plain-text mail over authenticated SMTP.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("EMAIL_USER and EMAIL_PASS are required")
	}
	if from == "" {
		from = username
	}

	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		sendMail: smtp.SendMail,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	msg := []byte(fmt.Sprintf("From: %s\r\n", m.from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := m.sendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		logger.WithCtx(ctx).Error().Err(err).Str("to", to).Str("subject", subject).Msg("smtp send failed")
		return domain.ErrMailSendFailed(err)
	}
	return nil
}
