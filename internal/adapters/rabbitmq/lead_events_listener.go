package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_common"
	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_consumer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEventsListener получает lead.status_changed от других экземпляров BFF
// и пересылает их открытым вкладкам пользователя через нотификатор.
type LeadEventsListener struct {
	consumer   *rabbitmq_consumer.Consumer
	notifier   port.NotifierPort
	validator  schemaValidator
	instanceID string
	logger     port.LoggerPort
}

func NewLeadEventsListener(
	connManager *rabbitmq_common.ConnectionManager,
	amqpURL string,
	notifier port.NotifierPort,
	validator schemaValidator,
	instanceID string,
	baseLogger port.LoggerPort,
) (*LeadEventsListener, error) {
	if notifier == nil {
		return nil, fmt.Errorf("rabbitmq adapter: notifier cannot be nil")
	}

	l := &LeadEventsListener{
		notifier:   notifier,
		validator:  validator,
		instanceID: instanceID,
		logger:     baseLogger.WithFields(port.Fields{"component": "LeadEventsListener"}),
	}

	consumer, err := rabbitmq_consumer.NewConsumer(rabbitmq_consumer.ConsumerConfig{
		Config:        rabbitmq_common.Config{URL: amqpURL},
		ExchangeName:  constants.ExchangeName,
		ExchangeType:  constants.ExchangeType,
		RoutingKeys:   []string{constants.RoutingKeyLeadStatusChanged},
		PrefetchCount: 20,
		ConsumerTag:   constants.ConsumerTagLeadEvents + "-" + instanceID,
		Logger:        NewPkgLoggerBridge(l.logger),
	}, l.handle, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead events consumer: %w", err)
	}
	l.consumer = consumer
	return l, nil
}

func (l *LeadEventsListener) Start(ctx context.Context) error {
	return l.consumer.StartConsuming(ctx)
}

func (l *LeadEventsListener) Close() error {
	return l.consumer.Close()
}

func (l *LeadEventsListener) handle(ctx context.Context, d amqp.Delivery) error {
	return l.relay(ctx, d.Headers, d.Body)
}

// relay отделен от amqp.Delivery, чтобы проверять без брокера.
func (l *LeadEventsListener) relay(ctx context.Context, headers amqp.Table, body []byte) error {
	traceID, _ := headers[constants.HeaderTraceID].(string)
	msgLogger := l.logger.WithFields(port.Fields{"trace_id": traceID})
	ctx = contextkeys.ContextWithLogger(contextkeys.ContextWithTraceID(ctx, traceID), msgLogger)

	if origin, _ := headers[constants.HeaderOriginInstance].(string); origin != "" && origin == l.instanceID {
		msgLogger.Debug("Skipping own lead event", nil)
		return nil
	}

	if l.validator != nil {
		if err := l.validator.ValidateJSON(contracts.LeadStatusChangedEvent, body); err != nil {
			return fmt.Errorf("invalid lead event: %w", err)
		}
	}

	var event domain.LeadStatusChangedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode lead event: %w", err)
	}

	msgLogger.Info("Relaying lead event from another instance", port.Fields{"lead_id": event.LeadID, "to_status": string(event.ToStatus)})
	l.notifier.Notify(ctx, port.UserEvent{Type: port.EventLeadUpdated, UserID: event.ActorID, Data: event})
	return nil
}
