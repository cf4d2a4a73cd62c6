// Package mail sends plaintext notification emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/planetary/planetary-api/internal/core/ports"
)

// Config captures the SMTP transport settings.
type Config struct {
	Server   string
	Port     int
	Username string
	Password string
	Sender   string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers one message per call with net/smtp.SendMail, which
// upgrades to STARTTLS when the server offers it.
type SMTPMailer struct {
	cfg  Config
	send sendFunc
	log  zerolog.Logger
}

func NewSMTPMailer(cfg Config, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, log: log}
}

// Send implements ports.Mailer.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Server == "" {
		return fmt.Errorf("send mail: MAIL_SERVER is not configured")
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("send mail: header contains a line break")
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
	}

	addr := net.JoinHostPort(m.cfg.Server, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.Sender, []string{msg.To}, m.compose(msg)); err != nil {
		m.log.Error().Err(err).Str("to", msg.To).Str("server", addr).Msg("smtp delivery failed")
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	m.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")
	return nil
}

func (m *SMTPMailer) compose(msg ports.Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.cfg.Sender + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
