package marketplace_api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// flexID принимает идентификатор и строкой, и числом.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// --- auth ---

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registrationRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	UserType  string `json:"userType,omitempty"`
}

type userResponse struct {
	ID        flexID `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	UserType  string `json:"userType"`
}

// authResponse - бэкенд отдает либо плоские поля, либо вложенный user.
type authResponse struct {
	JwtToken string        `json:"jwtToken"`
	UserID   flexID        `json:"userId"`
	Username string        `json:"username"`
	Role     string        `json:"role"`
	User     *userResponse `json:"user"`
}

func (u userResponse) toDomain() domain.User {
	userType := domain.UserType(strings.ToUpper(u.UserType))
	if userType == "" {
		userType = userTypeFromRole(u.Role)
	}
	return domain.User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		UserType:  userType,
	}
}

func (a authResponse) toDomain() *domain.AuthResult {
	user := domain.User{ID: string(a.UserID), Username: a.Username, Role: a.Role, UserType: userTypeFromRole(a.Role)}
	if a.User != nil {
		user = a.User.toDomain()
		if user.ID == "" {
			user.ID = string(a.UserID)
		}
	}
	return &domain.AuthResult{Token: a.JwtToken, User: user}
}

func userTypeFromRole(role string) domain.UserType {
	switch ut := domain.UserType(strings.ToUpper(strings.TrimPrefix(role, "ROLE_"))); ut {
	case domain.UserTypeUser, domain.UserTypeAgent, domain.UserTypeOwner, domain.UserTypeAdmin:
		return ut
	}
	return ""
}

type profileRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// --- properties ---

type listerResponse struct {
	ID       flexID `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Agency   string `json:"agency"`
	Phone    string `json:"phone"`
}

type propertyResponse struct {
	ID           flexID         `json:"id"`
	Title        string         `json:"title"`
	Price        float64        `json:"price"`
	Location     string         `json:"location"`
	PropertyType string         `json:"propertyType"`
	ListingType  string         `json:"listingType"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	AreaSqFt     float64        `json:"areaSqFt"`
	MainImageURL string         `json:"mainImageUrl"`
	DateAdded    string         `json:"dateAdded"`
	Amenities    []string       `json:"amenities"`
	Status       string         `json:"status"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	ImageURLs    []string       `json:"imageUrls"`
	Lister       listerResponse `json:"lister"`
}

type propertyPageResponse struct {
	Content       []propertyResponse `json:"content"`
	Total         *int               `json:"total"`
	TotalElements *int               `json:"totalElements"`
}

func (p propertyPageResponse) total() int {
	switch {
	case p.Total != nil:
		return *p.Total
	case p.TotalElements != nil:
		return *p.TotalElements
	}
	return len(p.Content)
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func (p propertyResponse) toSummary() domain.PropertySummary {
	mainImage := p.MainImageURL
	if mainImage == "" && len(p.ImageURLs) > 0 {
		mainImage = p.ImageURLs[0]
	}
	return domain.PropertySummary{
		ID:           string(p.ID),
		Title:        p.Title,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		AreaSqFt:     p.AreaSqFt,
		MainImageURL: mainImage,
		DateAdded:    parseDate(p.DateAdded),
		Amenities:    p.Amenities,
		Status:       p.Status,
	}
}

func (p propertyResponse) toDetail() *domain.PropertyDetail {
	username := p.Lister.Username
	if username == "" {
		username = p.Lister.FullName
	}
	return &domain.PropertyDetail{
		PropertySummary: p.toSummary(),
		Description:     p.Description,
		Address:         p.Address,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		ImageURLs:       p.ImageURLs,
		Lister: domain.Lister{
			ID:       string(p.Lister.ID),
			Username: username,
			Avatar:   p.Lister.Avatar,
			Agency:   p.Lister.Agency,
			Phone:    p.Lister.Phone,
		},
	}
}

func toSummaries(items []propertyResponse) []domain.PropertySummary {
	out := make([]domain.PropertySummary, len(items))
	for i, item := range items {
		out[i] = item.toSummary()
	}
	return out
}

// --- leads ---

type leadSubmissionRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Message              string `json:"message,omitempty"`
	LeadType             string `json:"leadType"`
	PreferredContactTime string `json:"preferredContactTime,omitempty"`
	Urgency              string `json:"urgency"`
}

type leadResponse struct {
	ID              int64  `json:"id"`
	PropertyID      int64  `json:"propertyId"`
	InquirerName    string `json:"inquirerName"`
	InquirerEmail   string `json:"inquirerEmail"`
	InquirerPhone   string `json:"inquirerPhone"`
	Message         string `json:"message"`
	Status          string `json:"status"`
	AssignedAgentID *int64 `json:"assignedAgentId"`
	CreatedAt       string `json:"createdAt"`
}

func (l leadResponse) toDomain() domain.Lead {
	lead := domain.Lead{
		ID:              l.ID,
		PropertyID:      l.PropertyID,
		InquirerName:    l.InquirerName,
		InquirerEmail:   l.InquirerEmail,
		InquirerPhone:   l.InquirerPhone,
		Message:         l.Message,
		Status:          domain.LeadStatus(strings.ToUpper(l.Status)),
		AssignedAgentID: l.AssignedAgentID,
	}
	if t := parseDate(l.CreatedAt); t != nil {
		lead.CreatedAt = *t
	}
	return lead
}

type leadStatusRequest struct {
	Status string `json:"status"`
}

type verifyLeadRequest struct {
	VerificationDetails string `json:"verificationDetails"`
}

type assignLeadRequest struct {
	AgentID int64 `json:"agentId"`
}

// --- users / tiers ---

type tierResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	MaxActiveListings int     `json:"maxActiveListings"`
	MaxLeadsPerMonth  int     `json:"maxLeadsPerMonth"`
	PricePerLead      float64 `json:"pricePerLead"`
	MonthlyFee        float64 `json:"monthlyFee"`
}

// limitFromWire - на проводе безлимит передается нулем.
func limitFromWire(max int) domain.Limit {
	if max <= 0 {
		return domain.UnlimitedLimit()
	}
	return domain.LimitOf(max)
}

func (t tierResponse) toDomain() domain.AgentTier {
	return domain.AgentTier{
		ID:                t.ID,
		Name:              t.Name,
		MaxActiveListings: limitFromWire(t.MaxActiveListings),
		MaxLeadsPerMonth:  limitFromWire(t.MaxLeadsPerMonth),
		PricePerLead:      t.PricePerLead,
		MonthlyFee:        t.MonthlyFee,
	}
}

type subscriptionResponse struct {
	ID        int64  `json:"id"`
	TierID    int64  `json:"tierId"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (s subscriptionResponse) toDomain() *domain.Subscription {
	sub := &domain.Subscription{
		ID:      s.ID,
		TierID:  s.TierID,
		Status:  domain.SubscriptionStatus(strings.ToUpper(s.Status)),
		EndDate: parseDate(s.EndDate),
	}
	if t := parseDate(s.StartDate); t != nil {
		sub.StartDate = *t
	}
	return sub
}

type dashboardResponse struct {
	Tier                  *tierResponse         `json:"tier"`
	Subscription          *subscriptionResponse `json:"subscription"`
	ActiveListingsCount   int                   `json:"activeListingsCount"`
	LeadsThisMonth        int                   `json:"leadsThisMonth"`
	BilledAmountLastMonth float64               `json:"billedAmountLastMonth"`
}

func (d dashboardResponse) toDomain() *domain.Dashboard {
	dashboard := &domain.Dashboard{
		Usage: domain.Usage{
			ActiveListingsCount:   d.ActiveListingsCount,
			LeadsThisMonthCount:   d.LeadsThisMonth,
			BilledAmountLastMonth: d.BilledAmountLastMonth,
		},
	}
	if d.Tier != nil {
		tier := d.Tier.toDomain()
		dashboard.Tier = &tier
	}
	if d.Subscription != nil {
		dashboard.Subscription = d.Subscription.toDomain()
	}
	return dashboard
}

// --- billing / partners ---

type checkoutRequest struct {
	PaymentType string  `json:"paymentType"`
	ItemID      string  `json:"itemId"`
	Amount      float64 `json:"amount,omitempty"`
	SuccessURL  string  `json:"successUrl,omitempty"`
	CancelURL   string  `json:"cancelUrl,omitempty"`
}

type checkoutResponse struct {
	SessionID  string `json:"sessionId"`
	PaymentURL string `json:"paymentUrl"`
}

type partnerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
	Active      bool   `json:"active"`
}

type referralRequest struct {
	ReferredUserID int64 `json:"referredUserId"`
}

type referralResponse struct {
	ID              int64   `json:"id"`
	PartnerID       int64   `json:"partnerId"`
	ReferringUserID int64   `json:"referringUserId"`
	ReferredUserID  int64   `json:"referredUserId"`
	Status          string  `json:"status"`
	ReferralFee     float64 `json:"referralFee"`
	CreatedAt       string  `json:"createdAt"`
}

func (r referralResponse) toDomain() *domain.ReferralTransaction {
	tx := &domain.ReferralTransaction{
		ID:              r.ID,
		PartnerID:       r.PartnerID,
		ReferringUserID: r.ReferringUserID,
		ReferredUserID:  r.ReferredUserID,
		Status:          domain.ReferralStatus(strings.ToUpper(r.Status)),
		ReferralFee:     r.ReferralFee,
	}
	if t := parseDate(r.CreatedAt); t != nil {
		tx.CreatedAt = *t
	}
	return tx
}

func idPath(prefix string, id int64, suffix string) string {
	return prefix + "/" + strconv.FormatInt(id, 10) + suffix
}
