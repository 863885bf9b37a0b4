package email

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeRelay is a minimal implicit-TLS SMTP server that records one session per connection.
type fakeRelay struct {
	listener   net.Listener
	clientTLS  *tls.Config
	rejectAuth bool

	mu       sync.Mutex
	auth     string
	mailFrom string
	rcptTo   string
	data     string
	done     chan struct{}
}

// newFakeRelay starts a relay on 127.0.0.1 using the httptest certificate.
// With rejectAuth set, every AUTH attempt fails.
func newFakeRelay(t *testing.T, rejectAuth bool) *fakeRelay {
	t.Helper()

	certSrv := httptest.NewTLSServer(http.NotFoundHandler())
	t.Cleanup(certSrv.Close)

	pool := x509.NewCertPool()
	pool.AddCert(certSrv.Certificate())

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: certSrv.TLS.Certificates,
	})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	r := &fakeRelay{
		listener:   ln,
		clientTLS:  &tls.Config{RootCAs: pool},
		rejectAuth: rejectAuth,
		done:       make(chan struct{}),
	}
	go r.serve()
	return r
}

// hostPort returns the relay address split for Config.
func (r *fakeRelay) hostPort(t *testing.T) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(r.listener.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return host, port
}

func (r *fakeRelay) serve() {
	conn, err := r.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	defer close(r.done)

	tc := textproto.NewConn(conn)
	_ = tc.PrintfLine("220 relay.test ESMTP")

	for {
		line, err := tc.ReadLine()
		if err != nil {
			return
		}
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])

		switch verb {
		case "EHLO", "HELO":
			_ = tc.PrintfLine("250-relay.test")
			_ = tc.PrintfLine("250 AUTH PLAIN")
		case "AUTH":
			r.mu.Lock()
			r.auth = strings.TrimPrefix(line, "AUTH PLAIN ")
			r.mu.Unlock()
			if r.rejectAuth {
				_ = tc.PrintfLine("535 5.7.8 Username and Password not accepted")
				continue
			}
			_ = tc.PrintfLine("235 2.7.0 Accepted")
		case "MAIL":
			r.mu.Lock()
			r.mailFrom = line
			r.mu.Unlock()
			_ = tc.PrintfLine("250 OK")
		case "RCPT":
			r.mu.Lock()
			r.rcptTo = line
			r.mu.Unlock()
			_ = tc.PrintfLine("250 OK")
		case "DATA":
			_ = tc.PrintfLine("354 Go ahead")
			lines, err := tc.ReadDotLines()
			if err != nil {
				return
			}
			r.mu.Lock()
			r.data = strings.Join(lines, "\n")
			r.mu.Unlock()
			_ = tc.PrintfLine("250 Queued")
		case "QUIT":
			_ = tc.PrintfLine("221 Bye")
			return
		default:
			_ = tc.PrintfLine("502 Unrecognized command")
		}
	}
}

// session waits for the connection to finish and returns what was recorded.
func (r *fakeRelay) session() (auth, mailFrom, rcptTo, data string) {
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auth, r.mailFrom, r.rcptTo, r.data
}

// decodePlainAuth decodes an AUTH PLAIN initial response into its parts.
func decodePlainAuth(t *testing.T, encoded string) []string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode auth: %v", err)
	}
	return strings.Split(string(raw), "\x00")
}
