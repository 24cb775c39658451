package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadFixture struct {
	api      *fakeLeadAPI
	board    *LeadBoard
	journal  *fakeJournal
	events   *fakeEvents
	notifier *fakeNotifier
	uc       *UpdateLeadStatusUseCase
}

func newLeadFixture(status domain.LeadStatus) *leadFixture {
	f := &leadFixture{
		api: &fakeLeadAPI{leads: []domain.Lead{
			{ID: 1, PropertyID: 10, InquirerName: "Alice", Status: status, CreatedAt: time.Now()},
		}},
		board:    NewLeadBoard(time.Hour),
		journal:  &fakeJournal{},
		events:   &fakeEvents{},
		notifier: &fakeNotifier{},
	}
	f.uc = NewUpdateLeadStatusUseCase(f.api, f.board, f.journal, f.events, f.notifier)
	return f
}

func TestUpdateLeadStatus_EndpointByTarget(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.LeadStatus
		to       domain.LeadStatus
		expected string
	}{
		{name: "verify", from: domain.LeadStatusPendingVerification, to: domain.LeadStatusVerified, expected: "verify"},
		{name: "assign", from: domain.LeadStatusVerified, to: domain.LeadStatusAssigned, expected: "assign"},
		{name: "lost", from: domain.LeadStatusAssigned, to: domain.LeadStatusLost, expected: "update:LOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLeadFixture(tt.from)

			lead, err := f.uc.Execute(context.Background(), agentSession(), 1, tt.to, "")

			require.NoError(t, err)
			assert.Equal(t, tt.to, lead.Status)
			assert.Equal(t, []string{tt.expected}, f.api.calls)

			stored, ok := f.board.Get("sess-1", 1)
			require.True(t, ok)
			assert.Equal(t, tt.to, stored.Status)

			require.Len(t, f.events.changed, 1)
			assert.Equal(t, tt.from, f.events.changed[0].FromStatus)
			assert.Equal(t, tt.to, f.events.changed[0].ToStatus)
			require.Len(t, f.journal.records, 1)
			assert.False(t, f.journal.records[0].Reverted)
		})
	}
}

func TestUpdateLeadStatus_IllegalTransitionHasNoEffects(t *testing.T) {
	f := newLeadFixture(domain.LeadStatusPendingVerification)

	_, err := f.uc.Execute(context.Background(), agentSession(), 1, domain.LeadStatusAssigned, "")

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Empty(t, f.api.calls)
	assert.Empty(t, f.notifier.types())
	assert.Empty(t, f.journal.records)
}

func TestUpdateLeadStatus_PaidOnlyThroughBilling(t *testing.T) {
	f := newLeadFixture(domain.LeadStatusAssigned)

	_, err := f.uc.Execute(context.Background(), agentSession(), 1, domain.LeadStatusPaid, "")

	assert.ErrorIs(t, err, domain.ErrPaymentRequired)
	assert.Empty(t, f.api.calls)
	stored, _ := f.board.Get("sess-1", 1)
	assert.Equal(t, domain.LeadStatusAssigned, stored.Status)
}

func TestUpdateLeadStatus_SameStatusIsNoop(t *testing.T) {
	f := newLeadFixture(domain.LeadStatusVerified)

	lead, err := f.uc.Execute(context.Background(), agentSession(), 1, domain.LeadStatusVerified, "")

	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusVerified, lead.Status)
	assert.Empty(t, f.api.calls)
}

func TestUpdateLeadStatus_RemoteFailureReverts(t *testing.T) {
	f := newLeadFixture(domain.LeadStatusPendingVerification)
	f.api.updateErr = errors.New("backend down")

	_, err := f.uc.Execute(context.Background(), agentSession(), 1, domain.LeadStatusVerified, "")

	require.Error(t, err)
	stored, ok := f.board.Get("sess-1", 1)
	require.True(t, ok)
	assert.Equal(t, domain.LeadStatusPendingVerification, stored.Status)

	require.Len(t, f.journal.records, 1)
	assert.True(t, f.journal.records[0].Reverted)
	assert.Equal(t, "backend down", f.journal.records[0].Reason)
	assert.Empty(t, f.events.changed)
	assert.Equal(t, []string{port.EventLeadUpdated, port.EventLeadReverted}, f.notifier.types())
}

func TestUpdateLeadStatus_UnknownLead(t *testing.T) {
	f := newLeadFixture(domain.LeadStatusPendingVerification)

	_, err := f.uc.Execute(context.Background(), agentSession(), 99, domain.LeadStatusVerified, "")

	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestLeadBoard_RevertIfKeepsNewerTransition(t *testing.T) {
	board := NewLeadBoard(time.Hour)
	board.Put("s", domain.Lead{ID: 1, Status: domain.LeadStatusPendingVerification})

	before, _, err := board.Transition("s", 1, domain.LeadStatusVerified)
	require.NoError(t, err)
	_, _, err = board.Transition("s", 1, domain.LeadStatusAssigned)
	require.NoError(t, err)

	assert.False(t, board.RevertIf("s", before, domain.LeadStatusVerified))
	current, _ := board.Get("s", 1)
	assert.Equal(t, domain.LeadStatusAssigned, current.Status)
}

func TestPayForLead(t *testing.T) {
	t.Run("assigned lead starts checkout without local change", func(t *testing.T) {
		api := &fakeLeadAPI{leads: []domain.Lead{{ID: 3, Status: domain.LeadStatusAssigned}}}
		billing := &fakeBilling{}
		board := NewLeadBoard(time.Hour)
		uc := NewPayForLeadUseCase(api, billing, board)

		checkout, err := uc.Execute(context.Background(), agentSession(), 3, domain.CheckoutRequest{SuccessURL: "s", CancelURL: "c"})

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/cs_test", checkout.PaymentURL)
		require.Len(t, billing.got, 1)
		assert.Equal(t, domain.PaymentTypeLeadCharge, billing.got[0].PaymentType)
		assert.Equal(t, "3", billing.got[0].ItemID)

		lead, _ := board.Get("sess-1", 3)
		assert.Equal(t, domain.LeadStatusAssigned, lead.Status)
	})

	t.Run("not offered for other statuses", func(t *testing.T) {
		api := &fakeLeadAPI{leads: []domain.Lead{{ID: 3, Status: domain.LeadStatusVerified}}}
		billing := &fakeBilling{}
		uc := NewPayForLeadUseCase(api, billing, NewLeadBoard(time.Hour))

		_, err := uc.Execute(context.Background(), agentSession(), 3, domain.CheckoutRequest{})

		assert.ErrorIs(t, err, domain.ErrPayNotOffered)
		assert.Empty(t, billing.got)
	})
}

func TestConfirmPayment_PaidVisibleAfterRefresh(t *testing.T) {
	api := &fakeLeadAPI{leads: []domain.Lead{{ID: 3, Status: domain.LeadStatusAssigned}}}
	board := NewLeadBoard(time.Hour)
	board.Replace("sess-1", api.leads)
	api.leads[0].Status = domain.LeadStatusPaid

	store := newFakeStore()
	session := agentSession()
	require.NoError(t, store.Save(context.Background(), &session))
	users := &fakeUserAPI{dashboard: &domain.Dashboard{Usage: domain.Usage{BilledAmountLastMonth: 25}}}
	notifier := &fakeNotifier{}
	sessions := NewSessionService(store, nil, users, notifier, time.Hour)
	uc := NewConfirmPaymentUseCase(api, sessions, board, notifier)

	t.Run("missing session id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), session, "")
		assert.ErrorIs(t, err, domain.ErrInvalidPaymentAccess)
	})

	t.Run("refresh brings paid status", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), session, "cs_test")

		require.NoError(t, err)
		require.NotNil(t, result.Dashboard)
		assert.Equal(t, 25.0, result.Dashboard.Usage.BilledAmountLastMonth)
		require.Len(t, result.Leads, 1)
		assert.Equal(t, domain.LeadStatusPaid, result.Leads[0].Status)

		lead, _ := board.Get("sess-1", 3)
		assert.Equal(t, domain.LeadStatusPaid, lead.Status)
		assert.Contains(t, notifier.types(), port.EventLeadUpdated)
		assert.Contains(t, notifier.types(), port.EventDashboardUpdated)
	})
}
