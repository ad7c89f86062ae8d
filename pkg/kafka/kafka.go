package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	BookshelfTopic = "bookshelf.events"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventBookCreated   EventType = "BOOK_CREATED"
	EventBookUpdated   EventType = "BOOK_UPDATED"
	EventBookDeleted   EventType = "BOOK_DELETED"
	EventReviewAdded   EventType = "REVIEW_ADDED"
	EventReviewEdited  EventType = "REVIEW_EDITED"
	EventReviewDeleted EventType = "REVIEW_DELETED"
)

type EventBook struct {
	Timestamp time.Time  `json:"timestamp"`
	UserID    uuid.UUID  `json:"userId"`
	BookID    uuid.UUID  `json:"bookId"`
	ReviewID  *uuid.UUID `json:"reviewId,omitempty"`
	EventType EventType  `json:"eventType"`
	Rating    int        `json:"rating,omitempty"`
}
