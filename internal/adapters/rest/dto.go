package rest

import (
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// --- запросы ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	UserType        string `json:"userType"`
}

type profileRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type inquiryRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Message              string `json:"message"`
	LeadType             string `json:"leadType"`
	PreferredContactTime string `json:"preferredContactTime"`
	Urgency              string `json:"urgency"`
}

type leadStatusRequest struct {
	Status              string `json:"status"`
	VerificationDetails string `json:"verificationDetails"`
}

type referralRequest struct {
	ReferredUserID int64 `json:"referredUserId"`
}

// --- ответы ---

type sessionResponse struct {
	User      domain.User        `json:"user"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Dashboard *dashboardResponse `json:"dashboard,omitempty"`
}

type registerResponse struct {
	Session       *sessionResponse `json:"session,omitempty"`
	RequiresLogin bool             `json:"requiresLogin"`
}

type propertyCardResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Price         float64    `json:"price"`
	PriceLabel    string     `json:"priceLabel"`
	Location      string     `json:"location"`
	PropertyType  string     `json:"propertyType"`
	ListingType   string     `json:"listingType"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	AreaSqFt      float64    `json:"areaSqFt"`
	MainImageURL  string     `json:"mainImageUrl"`
	DateAdded     *time.Time `json:"dateAdded,omitempty"`
	Amenities     []string   `json:"amenities"`
	AmenityLabels []string   `json:"amenityLabels"`
	Status        string     `json:"status,omitempty"`
}

type listerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Agency   string `json:"agency,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type propertyDetailResponse struct {
	propertyCardResponse
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Geohash     string         `json:"geohash,omitempty"`
	ImageURLs   []string       `json:"imageUrls"`
	Lister      listerResponse `json:"lister"`
}

type searchResponse struct {
	Items      []propertyCardResponse `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
	Query      string                 `json:"query"`
	Summary    string                 `json:"summary"`
	Error      string                 `json:"error,omitempty"`
}

type statusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type leadRowResponse struct {
	ID                 int64          `json:"id"`
	PropertyID         int64          `json:"propertyId"`
	InquirerName       string         `json:"inquirerName"`
	InquirerEmail      string         `json:"inquirerEmail"`
	InquirerPhone      string         `json:"inquirerPhone"`
	Message            string         `json:"message"`
	Status             string         `json:"status"`
	StatusLabel        string         `json:"statusLabel"`
	SelectableStatuses []statusOption `json:"selectableStatuses"`
	CanPay             bool           `json:"canPay"`
	AssignedAgentID    *int64         `json:"assignedAgentId,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

type leadListResponse struct {
	Leads   []leadRowResponse `json:"leads"`
	Shown   int               `json:"shown"`
	Total   int               `json:"total"`
	Summary string            `json:"summary"`
}

type leadTransitionResponse struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ActorID    string    `json:"actorId"`
	Reverted   bool      `json:"reverted"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type checkoutResponse struct {
	SessionID  string `json:"sessionId"`
	PaymentURL string `json:"paymentUrl"`
}

type fsboResponse struct {
	Property propertyDetailResponse `json:"property"`
	Checkout *checkoutResponse      `json:"checkout,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

type tierResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	MaxActiveListings string  `json:"maxActiveListings"`
	MaxLeadsPerMonth  string  `json:"maxLeadsPerMonth"`
	PricePerLead      float64 `json:"pricePerLead"`
	PricePerLeadLabel string  `json:"pricePerLeadLabel"`
	MonthlyFee        float64 `json:"monthlyFee"`
	MonthlyFeeLabel   string  `json:"monthlyFeeLabel"`
}

type tierOptionResponse struct {
	tierResponse
	Action    string `json:"action"`
	IsUpgrade bool   `json:"isUpgrade"`
}

type gateResponse struct {
	ListingsDisplay   string `json:"listingsDisplay"`
	LeadsDisplay      string `json:"leadsDisplay"`
	ListingsNearLimit bool   `json:"listingsNearLimit"`
	ListingsAtLimit   bool   `json:"listingsAtLimit"`
	LeadsNearLimit    bool   `json:"leadsNearLimit"`
	LeadsAtLimit      bool   `json:"leadsAtLimit"`
	CanAddListing     bool   `json:"canAddListing"`
	ShowUpgradePrompt bool   `json:"showUpgradePrompt"`
}

type dashboardResponse struct {
	Tier                       *tierResponse         `json:"tier,omitempty"`
	Subscription               *subscriptionResponse `json:"subscription,omitempty"`
	ActiveListingsCount        int                   `json:"activeListingsCount"`
	LeadsThisMonthCount        int                   `json:"leadsThisMonthCount"`
	BilledAmountLastMonth      float64               `json:"billedAmountLastMonth"`
	BilledAmountLastMonthLabel string                `json:"billedAmountLastMonthLabel"`
	Gate                       gateResponse          `json:"gate"`
}

type subscriptionResponse struct {
	ID        int64      `json:"id"`
	TierID    int64      `json:"tierId"`
	Status    string     `json:"status"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type paymentConfirmationResponse struct {
	SessionID string             `json:"sessionId"`
	Dashboard *dashboardResponse `json:"dashboard,omitempty"`
	Leads     []leadRowResponse  `json:"leads,omitempty"`
}

type partnerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
	Active      bool   `json:"active"`
}

// --- маппинг ---

func toPropertyCard(p domain.PropertySummary) propertyCardResponse {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return propertyCardResponse{
		ID:            p.ID,
		Title:         p.Title,
		Price:         p.Price,
		PriceLabel:    formatPrice(p.Price),
		Location:      p.Location,
		PropertyType:  p.PropertyType,
		ListingType:   p.ListingType,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		AreaSqFt:      p.AreaSqFt,
		MainImageURL:  p.MainImageURL,
		DateAdded:     p.DateAdded,
		Amenities:     amenities,
		AmenityLabels: amenityLabels(amenities),
		Status:        p.Status,
	}
}

func toPropertyCards(items []domain.PropertySummary) []propertyCardResponse {
	out := make([]propertyCardResponse, len(items))
	for i, item := range items {
		out[i] = toPropertyCard(item)
	}
	return out
}

func toPropertyDetail(d *domain.PropertyDetail) propertyDetailResponse {
	images := d.ImageURLs
	if images == nil {
		images = []string{}
	}
	return propertyDetailResponse{
		propertyCardResponse: toPropertyCard(d.PropertySummary),
		Description:          d.Description,
		Address:              d.Address,
		Latitude:             d.Latitude,
		Longitude:            d.Longitude,
		Geohash:              d.Geohash,
		ImageURLs:            images,
		Lister: listerResponse{
			ID:       d.Lister.ID,
			Username: d.Lister.Username,
			Avatar:   d.Lister.Avatar,
			Agency:   d.Lister.Agency,
			Phone:    d.Lister.Phone,
		},
	}
}

func toLeadRow(l domain.Lead) leadRowResponse {
	selectable := domain.SelectableStatuses(l.Status)
	options := make([]statusOption, len(selectable))
	for i, s := range selectable {
		options[i] = statusOption{Value: string(s), Label: s.Label()}
	}
	return leadRowResponse{
		ID:                 l.ID,
		PropertyID:         l.PropertyID,
		InquirerName:       l.InquirerName,
		InquirerEmail:      l.InquirerEmail,
		InquirerPhone:      l.InquirerPhone,
		Message:            l.Message,
		Status:             string(l.Status),
		StatusLabel:        l.Status.Label(),
		SelectableStatuses: options,
		CanPay:             l.CanPay(),
		AssignedAgentID:    l.AssignedAgentID,
		CreatedAt:          l.CreatedAt,
	}
}

func toLeadRows(leads []domain.Lead) []leadRowResponse {
	out := make([]leadRowResponse, len(leads))
	for i, l := range leads {
		out[i] = toLeadRow(l)
	}
	return out
}

func limitLabel(l domain.Limit) string {
	if l.Unlimited {
		return "Unlimited"
	}
	return formatCount(l.Max)
}

func toTier(t domain.AgentTier) tierResponse {
	return tierResponse{
		ID:                t.ID,
		Name:              t.Name,
		MaxActiveListings: limitLabel(t.MaxActiveListings),
		MaxLeadsPerMonth:  limitLabel(t.MaxLeadsPerMonth),
		PricePerLead:      t.PricePerLead,
		PricePerLeadLabel: formatPrice(t.PricePerLead),
		MonthlyFee:        t.MonthlyFee,
		MonthlyFeeLabel:   formatPrice(t.MonthlyFee),
	}
}

func toGate(g domain.TierGate) gateResponse {
	return gateResponse{
		ListingsDisplay:   g.ListingsDisplay,
		LeadsDisplay:      g.LeadsDisplay,
		ListingsNearLimit: g.ListingsNearLimit,
		ListingsAtLimit:   g.ListingsAtLimit,
		LeadsNearLimit:    g.LeadsNearLimit,
		LeadsAtLimit:      g.LeadsAtLimit,
		CanAddListing:     g.CanAddListing(),
		ShowUpgradePrompt: g.ShowUpgradePrompt(),
	}
}

func toDashboard(d *domain.Dashboard) *dashboardResponse {
	if d == nil {
		return nil
	}
	resp := &dashboardResponse{
		ActiveListingsCount:        d.Usage.ActiveListingsCount,
		LeadsThisMonthCount:        d.Usage.LeadsThisMonthCount,
		BilledAmountLastMonth:      d.Usage.BilledAmountLastMonth,
		BilledAmountLastMonthLabel: formatPrice(d.Usage.BilledAmountLastMonth),
		Gate:                       toGate(domain.EvaluateGate(*d)),
	}
	if d.Tier != nil {
		tier := toTier(*d.Tier)
		resp.Tier = &tier
	}
	if d.Subscription != nil {
		resp.Subscription = &subscriptionResponse{
			ID:        d.Subscription.ID,
			TierID:    d.Subscription.TierID,
			Status:    string(d.Subscription.Status),
			StartDate: d.Subscription.StartDate,
			EndDate:   d.Subscription.EndDate,
		}
	}
	return resp
}

func toSession(s *domain.Session) *sessionResponse {
	return &sessionResponse{User: s.User, ExpiresAt: s.ExpiresAt, Dashboard: toDashboard(s.Dashboard)}
}
