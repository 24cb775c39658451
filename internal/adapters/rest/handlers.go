package rest

import (
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/adapters/notifier"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/internal/core/port/usecases_port"
)

// UseCases - все сценарии, которые обслуживает HTTP-слой.
type UseCases struct {
	Login          usecases_port.LoginUseCase
	Register       usecases_port.RegisterUseCase
	Logout         usecases_port.LogoutUseCase
	ResolveSession usecases_port.ResolveSessionUseCase
	UpdateProfile  usecases_port.UpdateProfileUseCase

	SearchProperties  usecases_port.SearchPropertiesUseCase
	PropertyDetails   usecases_port.GetPropertyDetailsUseCase
	ListMyProperties  usecases_port.ListMyPropertiesUseCase
	CreateProperty    usecases_port.CreatePropertyUseCase
	UpdateProperty    usecases_port.UpdatePropertyUseCase
	DeleteProperty    usecases_port.DeletePropertyUseCase
	CreateFSBOListing usecases_port.CreateFSBOListingUseCase

	SubmitLead       usecases_port.SubmitLeadUseCase
	ListLeads        usecases_port.ListLeadsUseCase
	UpdateLeadStatus usecases_port.UpdateLeadStatusUseCase
	PayForLead       usecases_port.PayForLeadUseCase
	ConfirmPayment   usecases_port.ConfirmPaymentUseCase
	LeadHistory      usecases_port.GetLeadHistoryUseCase

	Dashboard       usecases_port.GetDashboardUseCase
	ListTiers       usecases_port.ListTiersUseCase
	SubscribeToTier usecases_port.SubscribeToTierUseCase

	ListPartners   usecases_port.ListPartnersUseCase
	ReferToPartner usecases_port.ReferToPartnerUseCase
}

// EventStream - подписка вкладки на события пользователя.
type EventStream interface {
	AddClient(userID string) notifier.ClientChannel
	RemoveClient(userID string, ch notifier.ClientChannel)
}

type Handlers struct {
	uc      UseCases
	events  EventStream
	cookies CookieSettings
	// publicBaseURL - адрес фронтенда для ссылок возврата с оплаты
	publicBaseURL string
}

func NewHandlers(uc UseCases, events EventStream, cookies CookieSettings, publicBaseURL string) *Handlers {
	return &Handlers{uc: uc, events: events, cookies: cookies, publicBaseURL: publicBaseURL}
}

// handlerContext - логгер хендлера и снимок сессии (ok=false для анонима).
func handlerContext(r *http.Request, name string) (port.LoggerPort, domain.Session, bool) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": name})
	session, ok := contextkeys.SessionFromContext(r.Context())
	return logger, session, ok
}

// returnURLs - ссылки, на которые платежная страница вернет пользователя.
func (h *Handlers) returnURLs() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		SuccessURL: h.publicBaseURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  h.publicBaseURL + "/payment-cancel",
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
