package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookshelf-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Publisher delivers domain events. Publish never fails the caller; delivery
// problems are logged.
type Publisher interface {
	Publish(ctx context.Context, event kafka.EventBook)
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(100, time.Second, 0.2, 2),
		log:      log.Named("publisher"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event kafka.EventBook) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := p.cb.Call(func() error { return p.send(event) }); err != nil {
		p.log.Warn("publish event",
			zap.String("type", string(event.EventType)),
			zap.Stringer("bookId", event.BookID),
			zap.Error(err))
	}
}

func (p *kafkaPublisher) send(event kafka.EventBook) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookID.String()),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "producer.SendMessage")
	}
	return nil
}

type nopPublisher struct{}

// NewNopPublisher drops every event. Used when no brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, kafka.EventBook) {}
