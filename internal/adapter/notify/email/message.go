package email

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/timeutil"
)

// ComposeBody renders the plain-text alert for n.
// Departure timestamps are shown in timezone when they can be parsed.
func ComposeBody(n domain.Notification, timezone string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cabins have become available for your desired date: %s\n", n.Criteria.Date)
	fmt.Fprintf(&b, "Departure time: %s\n\n", timeutil.FormatDeparture(n.DepartureTime, timezone))
	b.WriteString("Available cabins:\n")

	for _, cabin := range n.Cabins {
		fmt.Fprintf(&b, "- %s\n", cabin.Name)
		fmt.Fprintf(&b, "  Price: €%.2f\n", cabin.Price)
		fmt.Fprintf(&b, "  Available berths: %d\n\n", cabin.Availability)
	}

	fmt.Fprintf(&b, "\nBook now at: %s", n.BookingURL)
	return b.String()
}

// message is an RFC 5322 plain-text email.
type message struct {
	from    string
	to      string
	subject string
	date    time.Time
	body    string
}

// bytes renders the message with CRLF line endings.
func (m message) bytes() []byte {
	var b strings.Builder

	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	header("From", m.from)
	header("To", m.to)
	header("Subject", mime.QEncoding.Encode("utf-8", m.subject))
	header("Date", m.date.Format(time.RFC1123Z))
	header("Message-ID", messageID(m.from))
	header("MIME-Version", "1.0")
	header("Content-Type", "text/plain; charset=UTF-8")
	header("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(m.body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

// messageID returns a unique Message-ID in the sender's domain.
func messageID(from string) string {
	domainPart := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domainPart = from[at+1:]
	}
	return "<" + uuid.NewString() + "@" + domainPart + ">"
}
