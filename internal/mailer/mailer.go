package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"wordnote/internal/config"
	"wordnote/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---

// LogMailer は送信せずにログへ出すだけの実装 (開発用)
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SMTPMailer ---

type SMTPMailer struct {
	cfg *config.SMTPConfig
}

func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP",
		"smtp_addr", addr,
		"from", m.cfg.From,
		"to", to,
	)

	// 平文で接続する (開発用の MailHog などを想定)
	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return fmt.Errorf("SMTPMailer.Send: dial: %w", err)
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.From)
		return fmt.Errorf("SMTPMailer.Send: mail: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return fmt.Errorf("SMTPMailer.Send: rcpt: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return fmt.Errorf("SMTPMailer.Send: data: %w", err)
	}

	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		wc.Close()
		logger.Error("Failed to write email data", "error", err)
		return fmt.Errorf("SMTPMailer.Send: write: %w", err)
	}
	if err = wc.Close(); err != nil {
		logger.Error("Failed to finish email data", "error", err)
		return fmt.Errorf("SMTPMailer.Send: close: %w", err)
	}
	if err = c.Quit(); err != nil {
		logger.Warn("SMTP QUIT failed", "error", err)
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// New は mailer.type に応じて実装を選びます
func New(ctx context.Context, cfg *config.Config) (Mailer, error) {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return NewSMTPMailer(&cfg.SMTP), nil
	case "ses":
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(ctx, &cfg.SES)
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}, nil
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}, nil
	}
}
