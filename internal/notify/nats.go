package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSNotifier publishes submission events to a NATS subject so downstream
// consumers (mail relays, CRM sync) can react without coupling to this
// service.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
}

// NewNATSNotifier dials the NATS server and returns a publishing notifier.
// Events are published to "<subject>.<kind>".
func NewNATSNotifier(url, subject string) (*NATSNotifier, error) {
	conn, err := nats.Connect(url, nats.Name("intake-go-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &NATSNotifier{conn: conn, subject: subject}, nil
}

// Notify publishes the event as JSON.
func (n *NATSNotifier) Notify(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return n.conn.Publish(fmt.Sprintf("%s.%s", n.subject, event.Kind), payload)
}

// Close drains the underlying connection.
func (n *NATSNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}
