package notify

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"mime"
	"net"
	"strconv"
	"strings"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// Secure selects implicit TLS (port 465) instead of STARTTLS.
	Secure bool
	To     string
}

// Mailer emails the artist about new bookings and messages over SMTP.
type Mailer struct {
	cfg  MailConfig
	send func(addr string, a sasl.Client, from string, to []string, msg []byte) error
	now  func() time.Time
}

func NewMailer(cfg MailConfig) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	m := &Mailer{cfg: cfg, now: time.Now}
	m.send = func(addr string, a sasl.Client, from string, to []string, msg []byte) error {
		if cfg.Secure {
			return smtp.SendMailTLS(addr, a, from, to, bytes.NewReader(msg))
		}
		return smtp.SendMail(addr, a, from, to, bytes.NewReader(msg))
	}
	return m
}

func (m *Mailer) BookingCreated(ctx context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("New booking %s: %s on %s", b.BookingID, b.Service, b.Date.Format("02 Jan 2006"))
	body := table([][2]string{
		{"Reference", b.BookingID},
		{"Name", b.Name},
		{"Phone", b.Phone},
		{"Email", b.Email},
		{"Service", b.Service},
		{"Date", b.Date.Format("Monday, 02 Jan 2006")},
		{"Time", b.Time},
		{"Guests", strconv.Itoa(b.Guests)},
		{"Location", b.Location},
		{"Message", b.Message},
	})
	return m.deliver(ctx, subject, "<h2>New booking request</h2>"+body)
}

func (m *Mailer) ContactCreated(ctx context.Context, c *contact.Contact) error {
	subject := fmt.Sprintf("New message from %s", c.Name)
	body := table([][2]string{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Service", c.Service},
		{"Message", c.Message},
	})
	return m.deliver(ctx, subject, "<h2>New contact message</h2>"+body)
}

func (m *Mailer) deliver(ctx context.Context, subject, bodyHTML string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.buildMessage(subject, bodyHTML)
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth sasl.Client
	if m.cfg.Username != "" {
		auth = sasl.NewPlainClient("", m.cfg.Username, m.cfg.Password)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, msg) }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("send mail failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mailer) buildMessage(subject, bodyHTML string) []byte {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", m.cfg.FromName), m.cfg.From)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + m.cfg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + m.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(layout(bodyHTML))
	return []byte(b.String())
}

func table(rows [][2]string) string {
	var b strings.Builder
	b.WriteString(`<table cellpadding="6" style="border-collapse:collapse">`)
	for _, r := range rows {
		if strings.TrimSpace(r[1]) == "" {
			continue
		}
		b.WriteString("<tr><th align=\"left\">" + html.EscapeString(r[0]) + "</th><td>" +
			strings.ReplaceAll(html.EscapeString(r[1]), "\n", "<br>") + "</td></tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func layout(content string) string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="utf-8" /></head>
<body style="font-family: Arial, sans-serif; background-color: #fdf6ee; padding: 30px;">
<div style="max-width: 600px; margin: auto; background: #fff; border-radius: 10px; padding: 25px; color: #333;">
` + strings.TrimSpace(content) + `
</div>
</body>
</html>`
}
