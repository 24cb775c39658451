package usecase

import (
	"context"
	"sync"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type fakeLeadAPI struct {
	mu        sync.Mutex
	leads     []domain.Lead
	listErr   error
	updateErr error
	submitErr error
	// block - если задан, SubmitLead ждет закрытия канала
	block     chan struct{}
	submitted []domain.LeadSubmission
	calls     []string
}

func (f *fakeLeadAPI) SubmitLead(_ context.Context, _ string, s domain.LeadSubmission) (*domain.Lead, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, s)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Lead{ID: int64(len(f.submitted)), Status: domain.LeadStatusPendingVerification}, nil
}

func (f *fakeLeadAPI) GetMyLeads(_ context.Context, _ string) ([]domain.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Lead, len(f.leads))
	copy(out, f.leads)
	return out, nil
}

func (f *fakeLeadAPI) UpdateLeadStatus(_ context.Context, _ string, change domain.LeadStatusChange) (*domain.Lead, error) {
	return f.record("update:"+string(change.Status), change.LeadID, change.Status)
}

func (f *fakeLeadAPI) VerifyLead(_ context.Context, _ string, leadID int64, _ string) (*domain.Lead, error) {
	return f.record("verify", leadID, domain.LeadStatusVerified)
}

func (f *fakeLeadAPI) AssignLead(_ context.Context, _ string, leadID, _ int64) (*domain.Lead, error) {
	return f.record("assign", leadID, domain.LeadStatusAssigned)
}

func (f *fakeLeadAPI) record(call string, leadID int64, status domain.LeadStatus) (*domain.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.leads {
		if f.leads[i].ID == leadID {
			f.leads[i].Status = status
			lead := f.leads[i]
			return &lead, nil
		}
	}
	return nil, nil
}

type fakeBilling struct {
	got []domain.CheckoutRequest
	err error
}

func (f *fakeBilling) InitiateCheckout(_ context.Context, _ string, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	f.got = append(f.got, req)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CheckoutSession{SessionID: "cs_test", PaymentURL: "https://pay.example/cs_test"}, nil
}

type fakeUserAPI struct {
	dashboard *domain.Dashboard
	dashErr   error
	tiers     []domain.AgentTier
	user      *domain.User
}

func (f *fakeUserAPI) GetMe(_ context.Context, _ string) (*domain.User, error) { return f.user, nil }

func (f *fakeUserAPI) UpdateMe(_ context.Context, _ string, u domain.ProfileUpdate) (*domain.User, error) {
	user := *f.user
	if u.Username != "" {
		user.Username = u.Username
	}
	return &user, nil
}

func (f *fakeUserAPI) GetDashboard(_ context.Context, _ string) (*domain.Dashboard, error) {
	if f.dashErr != nil {
		return nil, f.dashErr
	}
	d := *f.dashboard
	return &d, nil
}

func (f *fakeUserAPI) GetAgentTiers(_ context.Context) ([]domain.AgentTier, error) { return f.tiers, nil }

func (f *fakeUserAPI) SubscribeToTier(_ context.Context, _ string, tierID int64) (*domain.Subscription, error) {
	for _, t := range f.tiers {
		if t.ID == tierID {
			tier := t
			f.dashboard = &domain.Dashboard{Tier: &tier, Usage: f.dashboard.Usage}
			return &domain.Subscription{ID: 1, TierID: tierID, Status: domain.SubscriptionActive}, nil
		}
	}
	return nil, domain.ErrTierNotFound
}

type fakeAuthAPI struct {
	result *domain.AuthResult
	err    error
}

func (f *fakeAuthAPI) Login(_ context.Context, _ domain.Credentials) (*domain.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, _ domain.Registration) (*domain.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

type fakePropertyAPI struct {
	mu      sync.Mutex
	items   []domain.PropertySummary
	total   int
	err     error
	created []domain.PropertyInput
	// release - если задан, SearchProperties ждет его или отмены контекста
	release chan struct{}
}

func (f *fakePropertyAPI) SearchProperties(ctx context.Context, _ domain.PropertyQueryFilter, _, _ int) ([]domain.PropertySummary, int, error) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	return f.items, f.total, f.err
}

func (f *fakePropertyAPI) GetAllProperties(_ context.Context) ([]domain.PropertySummary, error) {
	return f.items, f.err
}

func (f *fakePropertyAPI) GetProperty(_ context.Context, id string) (*domain.PropertyDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PropertyDetail{PropertySummary: domain.PropertySummary{ID: id}}, nil
}

func (f *fakePropertyAPI) GetMyProperties(_ context.Context, _ string) ([]domain.PropertySummary, error) {
	return f.items, f.err
}

func (f *fakePropertyAPI) CreateProperty(_ context.Context, _ string, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	return &domain.PropertyDetail{PropertySummary: domain.PropertySummary{ID: "100", Title: input.Title}}, nil
}

func (f *fakePropertyAPI) UpdateProperty(_ context.Context, _, id string, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	return &domain.PropertyDetail{PropertySummary: domain.PropertySummary{ID: id, Title: input.Title}}, nil
}

func (f *fakePropertyAPI) DeleteProperty(_ context.Context, _, _ string) error { return f.err }

func (f *fakePropertyAPI) CreateFSBOListing(_ context.Context, _ string, input domain.FSBOListingInput) (*domain.PropertyDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PropertyDetail{PropertySummary: domain.PropertySummary{ID: "200", Title: input.Title, Price: input.Price}}, nil
}

type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]domain.Session)}
}

func (s *fakeStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *fakeStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []port.UserEvent
}

func (n *fakeNotifier) Notify(_ context.Context, event port.UserEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *fakeNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	for i, e := range n.events {
		out[i] = e.Type
	}
	return out
}

type fakeEvents struct {
	changed   []domain.LeadStatusChangedEvent
	submitted []domain.LeadSubmittedEvent
}

func (e *fakeEvents) PublishStatusChanged(_ context.Context, event domain.LeadStatusChangedEvent) error {
	e.changed = append(e.changed, event)
	return nil
}

func (e *fakeEvents) PublishSubmitted(_ context.Context, event domain.LeadSubmittedEvent) error {
	e.submitted = append(e.submitted, event)
	return nil
}

type fakeJournal struct {
	records []domain.LeadTransitionRecord
}

func (j *fakeJournal) Record(_ context.Context, r domain.LeadTransitionRecord) error {
	j.records = append(j.records, r)
	return nil
}

func (j *fakeJournal) History(_ context.Context, leadID int64) ([]domain.LeadTransitionRecord, error) {
	var out []domain.LeadTransitionRecord
	for _, r := range j.records {
		if r.LeadID == leadID {
			out = append(out, r)
		}
	}
	return out, nil
}

func agentSession() domain.Session {
	return domain.Session{ID: "sess-1", Token: "jwt", User: domain.User{ID: "7", UserType: domain.UserTypeAgent}}
}
