package domain

import (
	"fmt"
	"sort"
	"strings"
)

type LeadSortKey string

const (
	LeadSortByDate   LeadSortKey = "date"
	LeadSortByStatus LeadSortKey = "status"
	LeadSortByName   LeadSortKey = "name"
)

// LeadListQuery - параметры клиентской фильтрации таблицы лидов.
type LeadListQuery struct {
	// Status пустой или "all" - без фильтра.
	Status string
	Search string
	SortBy LeadSortKey
}

type LeadListView struct {
	Leads []Lead
	Shown int
	Total int
}

// Summary - подпись под таблицей.
func (v LeadListView) Summary() string {
	return fmt.Sprintf("Showing %d of %d leads", v.Shown, v.Total)
}

// FilterLeads фильтрует и сортирует копию списка, исходный срез не меняется.
func FilterLeads(leads []Lead, q LeadListQuery) LeadListView {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.ToUpper(strings.TrimSpace(q.Status))

	filtered := make([]Lead, 0, len(leads))
	for _, lead := range leads {
		if status != "" && status != "ALL" && string(lead.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(lead.InquirerName), search) &&
			!strings.Contains(strings.ToLower(lead.InquirerEmail), search) {
			continue
		}
		filtered = append(filtered, lead)
	}

	switch q.SortBy {
	case LeadSortByStatus:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Status < filtered[j].Status })
	case LeadSortByName:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].InquirerName < filtered[j].InquirerName })
	case LeadSortByDate, "":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	}

	return LeadListView{Leads: filtered, Shown: len(filtered), Total: len(leads)}
}
