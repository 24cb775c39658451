package domain

import (
	"strconv"
	"time"
)

// NearLimitThreshold - доля лимита, с которой показывается предупреждение.
const NearLimitThreshold = 0.8

// Limit - максимум тарифа. Unlimited задается явно, а не нулем.
type Limit struct {
	Max       int
	Unlimited bool
}

func LimitOf(max int) Limit {
	return Limit{Max: max}
}

func UnlimitedLimit() Limit {
	return Limit{Unlimited: true}
}

// Display - "Unlimited" либо "3/5".
func (l Limit) Display(usage int) string {
	if l.Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(usage) + "/" + strconv.Itoa(l.Max)
}

// IsNearLimit - usage >= 80% от максимума. Для безлимита всегда false.
func IsNearLimit(usage int, max Limit) bool {
	if max.Unlimited {
		return false
	}
	return float64(usage) >= NearLimitThreshold*float64(max.Max)
}

// IsAtLimit - usage >= максимума. Для безлимита всегда false.
func IsAtLimit(usage int, max Limit) bool {
	if max.Unlimited {
		return false
	}
	return usage >= max.Max
}

type AgentTier struct {
	ID                int64
	Name              string
	MaxActiveListings Limit
	MaxLeadsPerMonth  Limit
	PricePerLead      float64
	MonthlyFee        float64
}

// IsUpgrade - тариф дороже текущего.
func IsUpgrade(candidate AgentTier, current *AgentTier) bool {
	if current == nil {
		return true
	}
	return candidate.MonthlyFee > current.MonthlyFee
}

type TierAction string

const (
	TierActionCurrent   TierAction = "Current Plan"
	TierActionDowngrade TierAction = "Downgrade"
	TierActionSubscribe TierAction = "Subscribe"
)

// TierActionFor - подпись кнопки в карточке тарифа.
func TierActionFor(candidate AgentTier, current *AgentTier) TierAction {
	if current != nil && candidate.ID == current.ID {
		return TierActionCurrent
	}
	if current != nil && !IsUpgrade(candidate, current) {
		return TierActionDowngrade
	}
	return TierActionSubscribe
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

type Subscription struct {
	ID        int64
	TierID    int64
	Status    SubscriptionStatus
	StartDate time.Time
	EndDate   *time.Time
}

type Usage struct {
	ActiveListingsCount   int
	LeadsThisMonthCount   int
	BilledAmountLastMonth float64
}

// Dashboard - данные кабинета текущего пользователя.
type Dashboard struct {
	Tier         *AgentTier
	Subscription *Subscription
	Usage        Usage
}

// TierGate - рекомендательные флаги для кабинета агента.
type TierGate struct {
	ListingsNearLimit bool
	ListingsAtLimit   bool
	LeadsNearLimit    bool
	LeadsAtLimit      bool
	ListingsDisplay   string
	LeadsDisplay      string
}

func (g TierGate) CanAddListing() bool     { return !g.ListingsAtLimit }
func (g TierGate) ShowUpgradePrompt() bool { return g.ListingsNearLimit || g.LeadsNearLimit }

// EvaluateGate считает флаги по тарифу и использованию. Без тарифа ограничений нет.
func EvaluateGate(d Dashboard) TierGate {
	listings, leads := UnlimitedLimit(), UnlimitedLimit()
	if d.Tier != nil {
		listings, leads = d.Tier.MaxActiveListings, d.Tier.MaxLeadsPerMonth
	}
	return TierGate{
		ListingsNearLimit: IsNearLimit(d.Usage.ActiveListingsCount, listings),
		ListingsAtLimit:   IsAtLimit(d.Usage.ActiveListingsCount, listings),
		LeadsNearLimit:    IsNearLimit(d.Usage.LeadsThisMonthCount, leads),
		LeadsAtLimit:      IsAtLimit(d.Usage.LeadsThisMonthCount, leads),
		ListingsDisplay:   listings.Display(d.Usage.ActiveListingsCount),
		LeadsDisplay:      leads.Display(d.Usage.LeadsThisMonthCount),
	}
}

// TierOption - карточка тарифа на странице цен.
type TierOption struct {
	Tier      AgentTier
	Action    TierAction
	IsUpgrade bool
}
