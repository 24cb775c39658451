package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/adapters/notifier"
	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- фейки use case ---

type fakeResolve struct{ sessions map[string]domain.Session }

func (f *fakeResolve) Execute(_ context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

type fakeLogin struct {
	session *domain.Session
	err     error
	got     domain.Credentials
}

func (f *fakeLogin) Execute(_ context.Context, creds domain.Credentials) (*domain.Session, error) {
	f.got = creds
	return f.session, f.err
}

type fakeRegister struct{ session *domain.Session }

func (f *fakeRegister) Execute(_ context.Context, _ domain.Registration) (*domain.Session, error) {
	return f.session, nil
}

type fakeLogout struct{ closed []string }

func (f *fakeLogout) Execute(_ context.Context, id string) error {
	f.closed = append(f.closed, id)
	return nil
}

type fakeSearch struct {
	result    domain.ListResult
	gotKey    string
	gotFilter domain.PropertyQueryFilter
}

func (f *fakeSearch) Execute(_ context.Context, key string, filter domain.PropertyQueryFilter) domain.ListResult {
	f.gotKey, f.gotFilter = key, filter
	return f.result
}

type fakeSubmitLead struct {
	gotToken string
	gotKey   string
	got      domain.LeadSubmission
	err      error
}

func (f *fakeSubmitLead) Execute(_ context.Context, key, token string, s domain.LeadSubmission) (*domain.Lead, error) {
	f.gotKey, f.gotToken, f.got = key, token, s
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Lead{ID: 77}, nil
}

type fakeListLeads struct{ view *domain.LeadListView }

func (f *fakeListLeads) Execute(_ context.Context, _ domain.Session, q domain.LeadListQuery) (*domain.LeadListView, error) {
	view := domain.FilterLeads(f.view.Leads, q)
	return &view, nil
}

type fakeUpdateStatus struct {
	lead *domain.Lead
	err  error
}

func (f *fakeUpdateStatus) Execute(_ context.Context, _ domain.Session, _ int64, proposed domain.LeadStatus, _ string) (*domain.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	lead := *f.lead
	lead.Status = proposed
	return &lead, nil
}

type fakePay struct{ got domain.CheckoutRequest }

func (f *fakePay) Execute(_ context.Context, _ domain.Session, _ int64, urls domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	f.got = urls
	return &domain.CheckoutSession{SessionID: "cs_1", PaymentURL: "https://pay.example/cs_1"}, nil
}

type fakeConfirm struct{}

func (f *fakeConfirm) Execute(_ context.Context, _ domain.Session, id string) (*domain.PaymentConfirmation, error) {
	if id == "" {
		return nil, domain.ErrInvalidPaymentAccess
	}
	return &domain.PaymentConfirmation{SessionID: id}, nil
}

type fakeFSBO struct{ checkoutErr error }

func (f *fakeFSBO) Execute(_ context.Context, _ domain.Session, input domain.FSBOListingInput, _ domain.CheckoutRequest) (*domain.PropertyDetail, *domain.CheckoutSession, error) {
	detail := &domain.PropertyDetail{PropertySummary: domain.PropertySummary{ID: "9", Title: input.Title}}
	if f.checkoutErr != nil {
		return detail, nil, f.checkoutErr
	}
	return detail, &domain.CheckoutSession{SessionID: "cs_2", PaymentURL: "https://pay.example/cs_2"}, nil
}

type fakeTiers struct{ gotSession *domain.Session }

func (f *fakeTiers) Execute(_ context.Context, s *domain.Session) ([]domain.TierOption, error) {
	f.gotSession = s
	return []domain.TierOption{{
		Tier:      domain.AgentTier{ID: 1, Name: "Pro", MaxActiveListings: domain.UnlimitedLimit(), MaxLeadsPerMonth: domain.LimitOf(50), MonthlyFee: 99},
		Action:    domain.TierActionSubscribe,
		IsUpgrade: true,
	}}, nil
}

type fakeEvents struct{}

func (fakeEvents) AddClient(string) notifier.ClientChannel     { return make(notifier.ClientChannel) }
func (fakeEvents) RemoveClient(string, notifier.ClientChannel) {}

// --- окружение ---

const (
	agentCookie = "agent-session"
	ownerCookie = "owner-session"
)

type testEnv struct {
	router http.Handler
	uc     *UseCases
}

func newTestEnv(t *testing.T, uc UseCases) *testEnv {
	t.Helper()
	return newTestEnvWithEvents(t, uc, fakeEvents{})
}

func newTestEnvWithEvents(t *testing.T, uc UseCases, events EventStream) *testEnv {
	t.Helper()
	resolve := &fakeResolve{sessions: map[string]domain.Session{
		agentCookie: {ID: agentCookie, Token: "agent-jwt", User: domain.User{ID: "1", UserType: domain.UserTypeAgent}},
		ownerCookie: {ID: ownerCookie, Token: "owner-jwt", User: domain.User{ID: "2", UserType: domain.UserTypeOwner}},
	}}
	uc.ResolveSession = resolve
	handlers := NewHandlers(uc, events, CookieSettings{}, "https://app.example")
	logger := contextkeys.LoggerFromContext(context.Background())
	return &testEnv{
		router: NewRouter(handlers, resolve, []string{"https://app.example"}, CookieSettings{}, logger),
		uc:     &uc,
	}
}

func (e *testEnv) do(method, target, body, sessionCookie string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionCookie})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- тесты ---

func TestLogin_SetsSessionCookie(t *testing.T) {
	login := &fakeLogin{session: &domain.Session{
		ID:        "s-1",
		User:      domain.User{ID: "1", Username: "agent", UserType: domain.UserTypeAgent},
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	env := newTestEnv(t, UseCases{Login: login})

	rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.sg","password":"secret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.sg", login.got.Email)
	cookie := findCookie(rec, constants.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "s-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.NotNil(t, findCookie(rec, constants.ClientCookieName))
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := newTestEnv(t, UseCases{Login: &fakeLogin{err: domain.ErrUnauthorized}})

	rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.sg","password":"bad"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, constants.SessionCookieName))
}

func TestRegister_WithoutTokenRequiresLogin(t *testing.T) {
	env := newTestEnv(t, UseCases{Register: &fakeRegister{}})

	rec := env.do(http.MethodPost, "/api/auth/register", `{"username":"newbie"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["requiresLogin"])
}

func TestLogout_IsIdempotent(t *testing.T) {
	logout := &fakeLogout{}
	env := newTestEnv(t, UseCases{Logout: logout})

	rec := env.do(http.MethodPost, "/api/auth/logout", "", agentCookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookie := findCookie(rec, constants.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)

	rec = env.do(http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{agentCookie}, logout.closed)
}

func TestUnknownSessionCookieIsCleared(t *testing.T) {
	env := newTestEnv(t, UseCases{})

	rec := env.do(http.MethodGet, "/api/auth/me", "", "expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cookie := findCookie(rec, constants.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
}

func TestSearch_ParsesFilterFromQuery(t *testing.T) {
	search := &fakeSearch{result: domain.ListResult{
		Items:      []domain.PropertySummary{{ID: "1", Title: "Condo", Price: 1250000, Amenities: []string{"swimming_pool"}}},
		Total:      7,
		Page:       1,
		PageSize:   domain.PageSize,
		TotalPages: 2,
	}}
	env := newTestEnv(t, UseCases{SearchProperties: search})

	rec := env.do(http.MethodGet, "/api/properties/search?location=Bishan&minPrice=500000&page=1", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bishan", search.gotFilter.Location)
	require.NotNil(t, search.gotFilter.MinPrice)
	assert.Equal(t, 500000.0, *search.gotFilter.MinPrice)
	assert.NotEmpty(t, search.gotKey)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["totalPages"])
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	card := items[0].(map[string]interface{})
	assert.Equal(t, "SGD 1,250,000", card["priceLabel"])
	assert.Equal(t, []interface{}{"Swimming Pool"}, card["amenityLabels"])
}

func TestSearch_FailureRendersEmptyListWithBanner(t *testing.T) {
	search := &fakeSearch{result: domain.ListResult{
		Items: []domain.PropertySummary{},
		Err:   &domain.APIError{StatusCode: http.StatusInternalServerError},
	}}
	env := newTestEnv(t, UseCases{SearchProperties: search})

	rec := env.do(http.MethodGet, "/api/properties/search", "", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, body["items"])
}

func TestSearch_StaleResultIsDiscarded(t *testing.T) {
	env := newTestEnv(t, UseCases{SearchProperties: &fakeSearch{result: domain.ListResult{Stale: true}}})

	rec := env.do(http.MethodGet, "/api/properties/search", "", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApplyFilters_RedirectsToFirstPage(t *testing.T) {
	env := newTestEnv(t, UseCases{})

	form := url.Values{"bedrooms": {"3"}, "location": {""}}
	req := httptest.NewRequest(http.MethodPost, "/api/properties/search/filters?location=Bishan&page=4&sortBy=price_asc", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/api/properties/search", location.Path)
	q := location.Query()
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "3", q.Get("bedrooms"))
	assert.Equal(t, "price_asc", q.Get("sortBy"))
	assert.False(t, q.Has("location"))
}

func TestSubmitInquiry_AnonymousUsesClientKey(t *testing.T) {
	submit := &fakeSubmitLead{}
	env := newTestEnv(t, UseCases{SubmitLead: submit})

	rec := env.do(http.MethodPost, "/api/properties/12/inquiries", `{"name":"Tan","email":"tan@example.sg","phone":"91234567"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "12", submit.got.PropertyID)
	assert.Empty(t, submit.gotToken)
	assert.NotEmpty(t, submit.gotKey)
	assert.Equal(t, "submitted", decodeBody(t, rec)["status"])
}

func TestSubmitInquiry_SignedInForwardsToken(t *testing.T) {
	submit := &fakeSubmitLead{}
	env := newTestEnv(t, UseCases{SubmitLead: submit})

	rec := env.do(http.MethodPost, "/api/properties/12/inquiries", `{"name":"Tan","email":"tan@example.sg","phone":"91234567"}`, ownerCookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "owner-jwt", submit.gotToken)
}

func TestSubmitInquiry_InFlight(t *testing.T) {
	env := newTestEnv(t, UseCases{SubmitLead: &fakeSubmitLead{err: domain.ErrSubmissionInFlight}})

	rec := env.do(http.MethodPost, "/api/properties/12/inquiries", `{"name":"Tan"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeads_AccessByUserType(t *testing.T) {
	leads := &fakeListLeads{view: &domain.LeadListView{Leads: []domain.Lead{
		{ID: 1, InquirerName: "Alice", Status: domain.LeadStatusAssigned},
		{ID: 2, InquirerName: "Bob", Status: domain.LeadStatusLost},
	}}}
	env := newTestEnv(t, UseCases{ListLeads: leads})

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/leads", "", "").Code)
	assert.Equal(t, http.StatusForbidden, env.do(http.MethodGet, "/api/leads", "", ownerCookie).Code)

	rec := env.do(http.MethodGet, "/api/leads?status=ASSIGNED", "", agentCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp leadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "Showing 1 of 2 leads", resp.Summary)
	assert.True(t, resp.Leads[0].CanPay)
	require.NotEmpty(t, resp.Leads[0].SelectableStatuses)
	assert.Equal(t, "ASSIGNED", resp.Leads[0].SelectableStatuses[0].Value)
}

func TestUpdateLeadStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		expected int
	}{
		{name: "unknown status", body: `{"status":"WON"}`, expected: http.StatusUnprocessableEntity},
		{name: "illegal transition", body: `{"status":"PENDING_VERIFICATION"}`, err: domain.ErrIllegalTransition, expected: http.StatusConflict},
		{name: "paid only via billing", body: `{"status":"PAID"}`, err: domain.ErrPaymentRequired, expected: http.StatusPaymentRequired},
		{name: "lead not found", body: `{"status":"LOST"}`, err: domain.ErrLeadNotFound, expected: http.StatusNotFound},
		{name: "ok", body: `{"status":"VERIFIED"}`, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &fakeUpdateStatus{lead: &domain.Lead{ID: 5, Status: domain.LeadStatusPendingVerification}, err: tt.err}
			env := newTestEnv(t, UseCases{UpdateLeadStatus: update})

			rec := env.do(http.MethodPatch, "/api/leads/5/status", tt.body, agentCookie)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestPayForLead_UsesPublicReturnURLs(t *testing.T) {
	pay := &fakePay{}
	env := newTestEnv(t, UseCases{PayForLead: pay})

	rec := env.do(http.MethodPost, "/api/leads/5/pay", "", agentCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://pay.example/cs_1", decodeBody(t, rec)["paymentUrl"])
	assert.Equal(t, "https://app.example/payment-success?session_id={CHECKOUT_SESSION_ID}", pay.got.SuccessURL)
	assert.Equal(t, "https://app.example/payment-cancel", pay.got.CancelURL)
}

func TestPaymentSuccess_RequiresSessionID(t *testing.T) {
	env := newTestEnv(t, UseCases{ConfirmPayment: &fakeConfirm{}})

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/payments/success", "", agentCookie).Code)

	rec := env.do(http.MethodGet, "/api/payments/success?session_id=cs_1", "", agentCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cs_1", decodeBody(t, rec)["sessionId"])
}

func TestCreateFSBOListing_CheckoutFailureKeepsListing(t *testing.T) {
	env := newTestEnv(t, UseCases{CreateFSBOListing: &fakeFSBO{checkoutErr: errors.New("billing down")}})

	rec := env.do(http.MethodPost, "/api/listings/fsbo", `{"title":"HDB flat"}`, ownerCookie)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp fsboResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "9", resp.Property.ID)
	assert.Nil(t, resp.Checkout)
	assert.NotEmpty(t, resp.Error)
}

func TestCreateFSBOListing_AgentNotAllowed(t *testing.T) {
	env := newTestEnv(t, UseCases{CreateFSBOListing: &fakeFSBO{}})

	rec := env.do(http.MethodPost, "/api/listings/fsbo", `{"title":"HDB flat"}`, agentCookie)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListTiers_AnonymousAllowed(t *testing.T) {
	tiers := &fakeTiers{}
	env := newTestEnv(t, UseCases{ListTiers: tiers})

	rec := env.do(http.MethodGet, "/api/tiers", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, tiers.gotSession)

	var resp []tierOptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Unlimited", resp[0].MaxActiveListings)
	assert.Equal(t, "50", resp[0].MaxLeadsPerMonth)
	assert.Equal(t, "Subscribe", resp[0].Action)
}

func TestHealthAndTraceHeader(t *testing.T) {
	env := newTestEnv(t, UseCases{})
	incoming := "0b6f5d1e-7c1a-4b5e-9d3f-2a8c6e4b1f00"

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constants.HeaderTraceIDHTTP, incoming)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, incoming, rec.Header().Get(constants.HeaderTraceIDHTTP))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constants.HeaderTraceIDHTTP, "not a uuid")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	replaced := rec.Header().Get(constants.HeaderTraceIDHTTP)
	assert.NotEqual(t, "not a uuid", replaced)
	assert.Len(t, replaced, 36)
}
