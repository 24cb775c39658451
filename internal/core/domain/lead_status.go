package domain

import (
	"fmt"
	"strings"
)

// leadTransitions - фиксированный граф переходов. PAID и LOST терминальные.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusPendingVerification: {LeadStatusVerified, LeadStatusLost},
	LeadStatusVerified:            {LeadStatusAssigned, LeadStatusLost},
	LeadStatusAssigned:            {LeadStatusPaid, LeadStatusLost},
	LeadStatusPaid:                {},
	LeadStatusLost:                {},
}

func (s LeadStatus) IsValid() bool {
	_, ok := leadTransitions[s]
	return ok
}

func (s LeadStatus) IsTerminal() bool {
	return len(leadTransitions[s]) == 0
}

// Label - подпись для таблицы: PENDING_VERIFICATION -> "PENDING VERIFICATION".
func (s LeadStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func ParseLeadStatus(raw string) (LeadStatus, error) {
	s := LeadStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown lead status %q", ErrValidation, raw)
	}
	return s, nil
}

// CanTransition - чистая функция, true только для ребер графа.
func CanTransition(current, proposed LeadStatus) bool {
	for _, next := range leadTransitions[current] {
		if next == proposed {
			return true
		}
	}
	return false
}

// AllowedNext возвращает допустимые следующие статусы в порядке объявления.
func AllowedNext(current LeadStatus) []LeadStatus {
	next := leadTransitions[current]
	out := make([]LeadStatus, len(next))
	copy(out, next)
	return out
}

// SelectableStatuses - текущий статус и допустимые следующие.
func SelectableStatuses(current LeadStatus) []LeadStatus {
	out := []LeadStatus{current}
	for _, s := range AllLeadStatuses {
		if CanTransition(current, s) {
			out = append(out, s)
		}
	}
	return out
}

// ApplyTransition меняет статус, если переход разрешен.
func (l *Lead) ApplyTransition(proposed LeadStatus) error {
	if !CanTransition(l.Status, proposed) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, l.Status, proposed)
	}
	l.Status = proposed
	return nil
}

// CanPay - кнопка оплаты показывается только для ASSIGNED.
func (l Lead) CanPay() bool {
	return l.Status == LeadStatusAssigned
}
