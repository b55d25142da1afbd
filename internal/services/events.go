package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a user event to Kafka. A nil writer disables publishing.
func publishEvent(ctx context.Context, w KafkaWriter, eventType, userID string, details map[string]string) {
	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
		Details:   details,
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(userID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", userID)
	}
}
