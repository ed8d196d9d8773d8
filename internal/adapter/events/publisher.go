package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"comparee/internal/metrics"
)

// jetStream is the part of nats.JetStreamContext the publisher needs.
type jetStream interface {
	PublishMsg(msg *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// Publisher publishes JSON encoded domain events to NATS JetStream.
type Publisher struct {
	nc      *nats.Conn
	js      jetStream
	prefix  string
	service string
	logger  *slog.Logger
}

// Connect dials url and returns a JetStream publisher. prefix is prepended
// to every subject as its first token.
func Connect(url, clientName, prefix string, logger *slog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	p := newPublisher(js, prefix, clientName, logger)
	p.nc = nc
	return p, nil
}

func newPublisher(js jetStream, prefix, service string, logger *slog.Logger) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return &Publisher{js: js, prefix: prefix, service: service, logger: logger}
}

// Publish marshals payload and publishes it on prefix+subject.
func (p *Publisher) Publish(ctx context.Context, subject string, payload any) error {
	subject = p.prefix + subject
	data, err := json.Marshal(payload)
	if err != nil {
		metrics.IncEvent(subject, err)
		return fmt.Errorf("marshal %s: %w", subject, err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header: nats.Header{
			"event_id":     []string{uuid.NewString()},
			"source":       []string{p.service},
			"content_type": []string{"application/json"},
		},
	}
	// Deduplicates redeliveries of the same message within the stream window.
	msg.Header.Set(nats.MsgIdHdr, msg.Header.Get("event_id"))

	_, err = p.js.PublishMsg(msg, nats.Context(ctx))
	metrics.IncEvent(subject, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("event published", slog.String("subject", subject))
	return nil
}

// Close drains and closes the underlying connection.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		_ = p.nc.Drain()
	}
}

// Noop discards events. It is used when NATS is not configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
