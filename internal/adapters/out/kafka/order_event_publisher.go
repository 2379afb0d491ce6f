// Package kafka publishes order state changes to a Kafka topic. Messages are
// keyed by order id so every change of one order lands on the same partition
// and consumers see them in order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// EventTypeHeader names the message header carrying the event type.
const (
	EventTypeHeader       = "event-type"
	OrderStateChangedType = "order.state_changed"
)

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// NewWriter returns a writer for topic that hashes message keys to partitions.
func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of Kafka.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(writer messageWriter) (*OrderEventPublisher, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	return &OrderEventPublisher{writer: writer}, nil
}

// Publish writes all events in one batch as JSON.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.StateChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		msg, err := toMessage(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event order.StateChanged) (kafkago.Message, error) {
	if event.OrderID <= 0 {
		return kafkago.Message{}, errors.New("order event has no order id")
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, err
	}

	return kafkago.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: EventTypeHeader, Value: []byte(OrderStateChangedType)},
		},
	}, nil
}
