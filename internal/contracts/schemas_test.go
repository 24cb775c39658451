package contracts

import (
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "LeadStatusChangedEvent/1.0.0", generateKeyFromPath("events/lead-status-changed/v1.json"))
	assert.Equal(t, "FsboListingPayload/2.0.0", generateKeyFromPath("payloads/fsbo-listing/v2.json"))
	assert.Empty(t, generateKeyFromPath("other/thing/v1.json"))
	assert.Empty(t, generateKeyFromPath("events/v1.json"))
}

func TestValidatorRegistersEmbeddedSchemas(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, name := range []string{LeadStatusChangedEvent, LeadSubmittedEvent, PropertyListingPayload, FsboListingPayload} {
		assert.True(t, v.Has(name), name)
	}
}

func validListing() domain.PropertyInput {
	return domain.PropertyInput{
		Title:        "Sunny condo",
		Description:  "Three rooms near MRT",
		Price:        1250000,
		Location:     "Bishan",
		Address:      "1 Bishan St",
		PropertyType: "Condo",
		ListingType:  "For Sale",
		Bedrooms:     3,
		Bathrooms:    2,
		AreaSqFt:     1100,
		Amenities:    []string{"pool", "gym"},
		ImageURLs:    []string{"https://cdn.example.com/a.jpg"},
	}
}

func TestValidateListingPayload(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	require.NoError(t, v.Validate(PropertyListingPayload, validListing()))

	bad := validListing()
	bad.Price = 0
	assert.Error(t, v.Validate(PropertyListingPayload, bad))

	dup := validListing()
	dup.Amenities = []string{"pool", "pool"}
	assert.Error(t, v.Validate(PropertyListingPayload, dup))
}

func TestValidateFSBOPayload(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	fsbo := domain.FSBOListingInput{
		PropertyInput: validListing(),
		ContactName:   "Owner",
		ContactPhone:  "+65 9000 0000",
		ContactEmail:  "owner@example.com",
	}
	require.NoError(t, v.Validate(FsboListingPayload, fsbo))

	fsbo.ContactEmail = "not-an-email"
	assert.Error(t, v.Validate(FsboListingPayload, fsbo))
}

func TestValidateLeadEvent(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	event := domain.LeadStatusChangedEvent{
		LeadID:     7,
		PropertyID: 101,
		FromStatus: domain.LeadStatusVerified,
		ToStatus:   domain.LeadStatusAssigned,
		ActorID:    "agent-1",
		OccurredAt: time.Date(2024, 6, 8, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, v.Validate(LeadStatusChangedEvent, event))

	event.ToStatus = "SOLD"
	assert.Error(t, v.Validate(LeadStatusChangedEvent, event))
}

func TestValidateUnknownSchema(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.Error(t, v.ValidateJSON("Missing/1.0.0", []byte(`{}`)))
	assert.Error(t, v.ValidateJSON(LeadSubmittedEvent, []byte(`not json`)))
}
