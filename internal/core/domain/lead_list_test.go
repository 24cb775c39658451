package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleLeads() []Lead {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []Lead{
		{ID: 1, InquirerName: "Charlie", InquirerEmail: "c@x.sg", Status: LeadStatusVerified, CreatedAt: base},
		{ID: 2, InquirerName: "alice", InquirerEmail: "alice@x.sg", Status: LeadStatusAssigned, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, InquirerName: "Bob", InquirerEmail: "bob@corp.sg", Status: LeadStatusAssigned, CreatedAt: base.Add(time.Hour)},
	}
}

func ids(leads []Lead) []int64 {
	out := make([]int64, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}

func TestFilterLeads_DefaultNewestFirst(t *testing.T) {
	view := FilterLeads(sampleLeads(), LeadListQuery{})

	assert.Equal(t, []int64{2, 3, 1}, ids(view.Leads))
	assert.Equal(t, "Showing 3 of 3 leads", view.Summary())
}

func TestFilterLeads_StatusAndSearch(t *testing.T) {
	leads := sampleLeads()

	view := FilterLeads(leads, LeadListQuery{Status: "assigned", Search: "CORP"})

	assert.Equal(t, []int64{3}, ids(view.Leads))
	assert.Equal(t, 1, view.Shown)
	assert.Equal(t, 3, view.Total)
	// исходный порядок не меняется
	assert.Equal(t, []int64{1, 2, 3}, ids(leads))

	all := FilterLeads(leads, LeadListQuery{Status: "all"})
	assert.Equal(t, 3, all.Shown)
}

func TestFilterLeads_SortByName(t *testing.T) {
	view := FilterLeads(sampleLeads(), LeadListQuery{SortBy: LeadSortByName})

	// сравнение с учетом регистра
	assert.Equal(t, []int64{3, 1, 2}, ids(view.Leads))
}
