package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	routingKey string
	msg        amqp.Publishing
}

type fakePublisher struct {
	sent []published
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	f.sent = append(f.sent, published{routingKey: routingKey, msg: msg})
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []port.UserEvent
}

func (f *fakeNotifier) Notify(ctx context.Context, event port.UserEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func newValidator(t *testing.T) *contracts.Validator {
	t.Helper()
	v, err := contracts.NewValidator()
	require.NoError(t, err)
	return v
}

func statusEvent() domain.LeadStatusChangedEvent {
	return domain.LeadStatusChangedEvent{
		LeadID:     5,
		PropertyID: 9,
		FromStatus: domain.LeadStatusVerified,
		ToStatus:   domain.LeadStatusAssigned,
		ActorID:    "42",
		OccurredAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishStatusChanged(t *testing.T) {
	producer := &fakePublisher{}
	adapter, err := NewLeadEventsAdapter(producer, newValidator(t), "instance-a")
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	require.NoError(t, adapter.PublishStatusChanged(ctx, statusEvent()))

	require.Len(t, producer.sent, 1)
	sent := producer.sent[0]
	assert.Equal(t, constants.RoutingKeyLeadStatusChanged, sent.routingKey)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "trace-1", sent.msg.Headers[constants.HeaderTraceID])
	assert.Equal(t, "instance-a", sent.msg.Headers[constants.HeaderOriginInstance])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(sent.msg.Body, &body))
	assert.Equal(t, "ASSIGNED", body["toStatus"])
}

func TestPublish_RejectsEventOutsideContract(t *testing.T) {
	producer := &fakePublisher{}
	adapter, err := NewLeadEventsAdapter(producer, newValidator(t), "instance-a")
	require.NoError(t, err)

	event := statusEvent()
	event.ToStatus = "ARCHIVED"
	assert.Error(t, adapter.PublishStatusChanged(context.Background(), event))

	assert.Error(t, adapter.PublishSubmitted(context.Background(), domain.LeadSubmittedEvent{LeadID: 1, LeadType: domain.LeadTypeInquiry, SubmittedAt: time.Now()}))
	assert.Empty(t, producer.sent)
}

func TestRelay_ForwardsForeignEventsOnly(t *testing.T) {
	notifier := &fakeNotifier{}
	listener := &LeadEventsListener{
		notifier:   notifier,
		validator:  newValidator(t),
		instanceID: "instance-a",
		logger:     contextkeys.LoggerFromContext(context.Background()),
	}

	body, err := json.Marshal(statusEvent())
	require.NoError(t, err)

	require.NoError(t, listener.relay(context.Background(), amqp.Table{constants.HeaderOriginInstance: "instance-a"}, body))
	assert.Empty(t, notifier.events)

	require.NoError(t, listener.relay(context.Background(), amqp.Table{constants.HeaderOriginInstance: "instance-b"}, body))
	require.Len(t, notifier.events, 1)
	assert.Equal(t, port.EventLeadUpdated, notifier.events[0].Type)
	assert.Equal(t, "42", notifier.events[0].UserID)

	assert.Error(t, listener.relay(context.Background(), amqp.Table{}, []byte(`{"leadId":0}`)))
}

func TestPairsToFields(t *testing.T) {
	assert.Nil(t, pairsToFields(nil))
	assert.Equal(t, port.Fields{"queue": "q1", "7": true, "extra": "tail"},
		pairsToFields([]interface{}{"queue", "q1", 7, true, "tail"}))
}
