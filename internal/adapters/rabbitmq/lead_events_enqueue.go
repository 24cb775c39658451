package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// MessagePublisher - то, что нужно адаптеру от rabbitmq_producer.Publisher.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

type schemaValidator interface {
	ValidateJSON(name string, body []byte) error
}

// LeadEventsAdapter - реализация LeadEventsPort поверх RabbitMQ.
type LeadEventsAdapter struct {
	producer   MessagePublisher
	validator  schemaValidator
	instanceID string
}

func NewLeadEventsAdapter(producer MessagePublisher, validator schemaValidator, instanceID string) (*LeadEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if validator == nil {
		return nil, fmt.Errorf("rabbitmq adapter: validator cannot be nil")
	}
	return &LeadEventsAdapter{producer: producer, validator: validator, instanceID: instanceID}, nil
}

func (a *LeadEventsAdapter) PublishStatusChanged(ctx context.Context, event domain.LeadStatusChangedEvent) error {
	return a.publish(ctx, constants.RoutingKeyLeadStatusChanged, contracts.LeadStatusChangedEvent, event)
}

func (a *LeadEventsAdapter) PublishSubmitted(ctx context.Context, event domain.LeadSubmittedEvent) error {
	return a.publish(ctx, constants.RoutingKeyLeadSubmitted, contracts.LeadSubmittedEvent, event)
}

func (a *LeadEventsAdapter) publish(ctx context.Context, routingKey, schemaName string, event interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "LeadEventsAdapter",
		"routing_key": routingKey,
	})

	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal event", err, nil)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// событие не уходит в брокер, если не соответствует контракту
	if err := a.validator.ValidateJSON(schemaName, body); err != nil {
		adapterLogger.Error("Event does not match its contract", err, port.Fields{"schema": schemaName})
		return fmt.Errorf("event %s rejected: %w", schemaName, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         schemaName,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}
	if a.instanceID != "" {
		msg.Headers[constants.HeaderOriginInstance] = a.instanceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Info("Publishing lead event", nil)
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish lead event", err, nil)
		return fmt.Errorf("failed to publish lead event: %w", err)
	}
	return nil
}
