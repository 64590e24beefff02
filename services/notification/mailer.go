// File: services/notification/mailer.go
package notification

import (
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"salonapi/config"
	"salonapi/utils"
)

// Mailer sends transactional email, optionally with a PDF attached.
type Mailer interface {
	Send(to, subject, html string) error
	SendWithAttachment(to, subject, html string, attachment []byte, filename string) error
	Verify() error
}

// SMTPMailer is the production implementation on top of the configured
// SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.EmailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}
	utils.GetLogger().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *SMTPMailer) SendWithAttachment(to, subject, html string, attachment []byte, filename string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	msg.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}
	utils.GetLogger().Info("email with attachment sent", zap.String("to", to), zap.String("file", filename))
	return nil
}

// Verify opens and closes an SMTP connection. Callers should warn on
// failure but keep the API running.
func (m *SMTPMailer) Verify() error {
	conn, err := m.dialer.Dial()
	if err != nil {
		return err
	}
	return conn.Close()
}
