// Package mq mirrors order events onto a RabbitMQ fanout exchange so
// back-office consumers see the same stream as websocket clients.
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Techkepper/PoskepperApi/pkg/events"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
	log      logrus.FieldLogger
}

// Dial connects and declares the durable fanout exchange.
func Dial(url, exchange string, log logrus.FieldLogger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	p, err := newPublisher(ch, exchange, log)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, log logrus.FieldLogger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, timeout: 5 * time.Second, log: log}, nil
}

// Publish sends the event envelope. Failures are logged and dropped.
func (p *Publisher) Publish(event string, payload any) {
	body, err := json.Marshal(events.Envelope{Event: event, Data: payload})
	if err != nil {
		p.log.WithError(err).WithField("event", event).Error("encode event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Type:         event,
		Body:         body,
	})
	if err != nil {
		p.log.WithError(err).WithField("event", event).Warn("amqp publish failed")
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
