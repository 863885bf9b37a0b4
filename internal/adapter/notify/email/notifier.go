// Package email provides an SMTP notifier that mails cabin availability alerts.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/timeutil"
)

// DefaultSubject is the subject line of availability alerts.
const DefaultSubject = "Minoan Lines - Cabin Available!"

// defaultDialTimeout bounds connecting to the mail relay when ctx has no deadline.
const defaultDialTimeout = 30 * time.Second

// Config holds the mail relay settings.
type Config struct {
	// Host is the SMTP relay host (e.g., "smtp.gmail.com")
	Host string

	// Port is the implicit TLS submission port (e.g., 465)
	Port int

	// Sender is the From address and the authentication user
	Sender string

	// Password authenticates Sender against the relay
	Password string

	// Recipient receives the alerts
	Recipient string

	// Subject overrides DefaultSubject when set
	Subject string

	// Timezone is used to render departure times
	Timezone string

	// TLSConfig overrides the TLS client configuration (tests use it to trust a local relay)
	TLSConfig *tls.Config
}

// Notifier sends availability alerts over an implicit-TLS SMTP session.
type Notifier struct {
	cfg   Config
	clock timeutil.Clock
	log   *logger.Logger
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg Config, clock timeutil.Clock, log *logger.Logger) *Notifier {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Timezone == "" {
		cfg.Timezone = timeutil.Athens
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{cfg: cfg, clock: clock, log: log}
}

// Notify mails the alert for n to the configured recipient.
func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	msg := message{
		from:    n.cfg.Sender,
		to:      n.cfg.Recipient,
		subject: n.cfg.Subject,
		date:    n.clock.Now(),
		body:    ComposeBody(note, n.cfg.Timezone),
	}

	if err := n.send(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.log.Info().
		Str("recipient", n.cfg.Recipient).
		Int("cabins", len(note.Cabins)).
		Msg("Notification email sent successfully")
	return nil
}

// send delivers msg in a single SMTP session.
func (n *Notifier) send(ctx context.Context, msg message) error {
	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))

	tlsConfig := n.cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	tlsConfig = tlsConfig.Clone()
	if tlsConfig.ServerName == "" {
		tlsConfig.ServerName = n.cfg.Host
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultDialTimeout)
		defer cancel()
	}

	dialer := &tls.Dialer{Config: tlsConfig}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", n.cfg.Sender, n.cfg.Password, n.cfg.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(msg.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(msg.to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg.bytes()); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}

	return client.Quit()
}

// Ensure Notifier implements domain.Notifier at compile time.
var _ domain.Notifier = (*Notifier)(nil)
