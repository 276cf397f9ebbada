package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	// EventSource identifies this service in published events.
	EventSource = "roadmap-service"

	// EventsTopic is the single topic all domain events are published to.
	EventsTopic = "roadmap-service.events"
)

// Domain event types.
const (
	EventUserRegistered  = "user.registered"
	EventProgressUpdated = "progress.updated"
)

// Event is the envelope for every published domain event.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// EventPublisher publishes domain events. Publishing is best-effort:
// callers log failures but do not fail the originating request.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}

// UserRegisteredEvent is the payload of a user.registered event.
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ProgressUpdatedEvent is the payload of a progress.updated event.
type ProgressUpdatedEvent struct {
	UserID     string  `json:"user_id"`
	RoadmapID  string  `json:"career_id"`
	StepID     string  `json:"step_id"`
	Completed  bool    `json:"completed"`
	Percentage float64 `json:"progress_percentage"`
}

// KafkaEventPublisher publishes events to Kafka via Watermill.
type KafkaEventPublisher struct {
	publisher message.Publisher
}

func NewKafkaEventPublisher(brokers []string, logger *slog.Logger) (*KafkaEventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &KafkaEventPublisher{publisher: publisher}, nil
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	event := Event{
		ID:         watermill.NewUUID(),
		Type:       eventType,
		Source:     EventSource,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", eventType)

	return p.publisher.Publish(EventsTopic, msg)
}

func (p *KafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

// NopEventPublisher discards events; used when no brokers are configured.
type NopEventPublisher struct{}

func NewNopEventPublisher() *NopEventPublisher { return &NopEventPublisher{} }

func (*NopEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	return nil
}

func (*NopEventPublisher) Close() error { return nil }
