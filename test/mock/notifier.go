package mock

import (
	"context"
	"sync"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// Notifier is a domain.Notifier recording every notification it receives.
type Notifier struct {
	mu   sync.Mutex
	err  error
	sent []domain.Notification
}

// NewNotifier creates a recording notifier that accepts every message.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// WithError makes every Notify call fail with err. The notification is still recorded.
func (n *Notifier) WithError(err error) *Notifier {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = err
	return n
}

// Notify implements domain.Notifier.
func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, note)
	return n.err
}

// Sent returns a copy of the recorded notifications.
func (n *Notifier) Sent() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.sent))
	copy(out, n.sent)
	return out
}

// Count returns the number of recorded notifications.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
