package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Producer handles publishing messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer connects to the NATS server at url
func NewProducer(url string) (*Producer, error) {
	if url == "" {
		return nil, errors.New("failed to connect to NATS server: empty url")
	}
	conn, err := nats.Connect(url, nats.Name("pioneer-funding"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Producer{conn: conn}, nil
}

// Publish marshals message as JSON and publishes it to subject
func (p *Producer) Publish(ctx context.Context, subject string, message interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Ping reports whether the connection is up
func (p *Producer) Ping(ctx context.Context) error {
	if p.conn == nil || !p.conn.IsConnected() {
		return errors.New("nats not connected")
	}
	return nil
}

// Stop drains and closes the NATS connection
func (p *Producer) Stop() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
