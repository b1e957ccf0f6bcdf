package service

import "context"

// MailSender defines the interface for delivering transactional e-mail.
// The engine decides when mail is sent and with what content; delivery
// mechanics (SMTP, provider APIs) live in the infrastructure layer.
type MailSender interface {
	// Send delivers a single HTML e-mail. It blocks until the message is
	// accepted by the transport or delivery has failed; the caller decides
	// whether a failure aborts the surrounding operation.
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}
