// Package mail delivers transactional e-mail over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"employeesys/config"
	"employeesys/internal/domain/service"
)

// smtpSender is a concrete implementation of the MailSender interface
// using SMTP over an implicit-TLS connection.
type smtpSender struct {
	host     string
	port     string
	username string
	password string
	logger   *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail config must be provided")
	}
	if cfg.Mail.Host == "" || cfg.Mail.Port == "" {
		return nil, errors.New("mail host and port must be provided")
	}

	return &smtpSender{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		logger:   logger,
	}, nil
}

// Send delivers a single HTML message. The SMTP dialogue runs on the calling
// goroutine; ctx cancellation is honored between dial and send.
func (s *smtpSender) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	addr := net.JoinHostPort(s.host, s.port)

	// Port 465 expects TLS from the first byte.
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "failed to create smtp client")
	}
	defer client.Close()

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp authentication failed")
		}
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	if err := client.Mail(from); err != nil {
		return errors.Wrap(err, "smtp MAIL command failed")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp RCPT command failed")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA command failed")
	}

	if _, err := writer.Write(buildMessage(from, to, subject, htmlBody)); err != nil {
		return errors.Wrap(err, "failed to write mail body")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finish mail body")
	}

	if err := client.Quit(); err != nil {
		s.logger.WarnContext(ctx, "smtp quit failed", slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

// buildMessage assembles an RFC 5322 HTML message.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	return []byte(b.String())
}
