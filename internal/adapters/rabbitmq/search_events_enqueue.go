package rabbitmq

import (
	"context"
	"encoding/json"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/contracts"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// MessagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EventValidator проверяет тело события по контракту
type EventValidator interface {
	ValidateEvent(eventType, eventVersion string, body []byte) error
}

// SearchEventsAdapter публикует SearchPerformedEvent в брокер
type SearchEventsAdapter struct {
	producer   MessagePublisher
	validator  EventValidator
	routingKey string
}

func NewSearchEventsAdapter(producer MessagePublisher, validator EventValidator, routingKey string) (*SearchEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("routingKey cannot be empty")
	}
	return &SearchEventsAdapter{
		producer:   producer,
		validator:  validator,
		routingKey: routingKey,
	}, nil
}

func (a *SearchEventsAdapter) PublishSearchPerformed(ctx context.Context, event domain.SearchPerformedEvent) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SearchEventsAdapter",
		"routing_key": a.routingKey,
		"event_id":    event.EventID.String(),
	})

	body, err := json.Marshal(toSearchPerformedDTO(event))
	if err != nil {
		logger.Error("Failed to marshal search event", err, nil)
		return fmt.Errorf("marshal search event: %w", err)
	}

	if a.validator != nil {
		if err := a.validator.ValidateEvent(contracts.SearchPerformedEventType, contracts.SearchPerformedEventVersion, body); err != nil {
			logger.Error("Search event violates its contract", err, nil)
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.EventID.String(),
		Headers: amqp.Table{
			"event-type":    contracts.SearchPerformedEventType,
			"event-version": contracts.SearchPerformedEventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		logger.Error("Failed to publish search event", err, nil)
		return err
	}

	logger.Debug("Search event published", port.Fields{"status": event.Status.String()})
	return nil
}
