package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Techkepper/PoskepperApi/pkg/events"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	published  []amqp.Publishing
	exchanges  []string
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, _ string, _, _ bool, msg amqp.Publishing) error {
	f.exchanges = append(f.exchanges, exchange)
	f.published = append(f.published, msg)
	return f.publishErr
}

func (f *fakeChannel) Close() error { f.closed = true; return nil }

func TestPublishWritesEnvelope(t *testing.T) {
	ch := &fakeChannel{}
	logger, _ := test.NewNullLogger()
	p, err := newPublisher(ch, "ordenes_fanout", logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"ordenes_fanout:fanout"}, ch.declared)

	p.Publish(events.OrderUpdated, map[string]any{"idOrden": 42})

	require.Len(t, ch.published, 1)
	assert.Equal(t, "ordenes_fanout", ch.exchanges[0])
	assert.Equal(t, events.OrderUpdated, ch.published[0].Type)

	var env struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &env))
	assert.Equal(t, "ordenActualizada", env.Event)
	assert.Equal(t, 42, env.Data["idOrden"])
}

func TestPublishFailureIsLoggedNotReturned(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	logger, hook := test.NewNullLogger()
	p, err := newPublisher(ch, "ordenes_fanout", logger)
	require.NoError(t, err)

	p.Publish(events.NewOrder, []int{1})

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "amqp publish failed", hook.LastEntry().Message)
}

func TestDeclareFailureClosesChannel(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	logger, _ := test.NewNullLogger()

	_, err := newPublisher(ch, "ordenes_fanout", logger)
	assert.Error(t, err)
	assert.True(t, ch.closed)
}
