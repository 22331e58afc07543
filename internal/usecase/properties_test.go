package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/hubspot-contact-upsert/internal/entity"
)

func TestContactPropertiesOrder(t *testing.T) {
	props := ContactProperties(entity.Lead{})

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{
		PropFirstName, PropLastName, PropUTMCampaign, PropUTMSource, PropUTMMedium,
		PropUTMContent, PropUTMTerm, PropGoogleClickID, PropFacebookClickID,
	}, names)
}

func TestCreatePropertiesMapsEveryField(t *testing.T) {
	lead := entity.Lead{
		Email:       "lead@example.com",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		UTMCampaign: "launch",
		UTMSource:   "google",
		UTMMedium:   "cpc",
		UTMContent:  "banner",
		UTMTerm:     "crm",
		GCLID:       "g-123",
		FBCLID:      "fb-456",
	}

	assert.Equal(t, map[string]string{
		"email":                "lead@example.com",
		"firstname":            "Ada",
		"lastname":             "Lovelace",
		"utm_campaign":         "launch",
		"utm_source":           "google",
		"utm_medium":           "cpc",
		"utm_content":          "banner",
		"utm_term":             "crm",
		"hs_google_click_id":   "g-123",
		"hs_facebook_click_id": "fb-456",
	}, CreateProperties(lead))
}

func TestCreatePropertiesKeepsEmptyValues(t *testing.T) {
	props := CreateProperties(entity.Lead{Email: "a@x.com"})

	assert.Len(t, props, 10)
	assert.Equal(t, "", props[PropFacebookClickID])
	assert.Equal(t, "a@x.com", props[PropEmail])
}

func TestUpdatePropertiesOmitsEmptyOptionalFields(t *testing.T) {
	props := UpdateProperties(entity.Lead{Email: "a@x.com"})

	assert.Equal(t, map[string]string{
		"firstname":    "",
		"lastname":     "",
		"utm_campaign": "",
		"utm_source":   "",
		"utm_medium":   "",
	}, props)
	assert.NotContains(t, props, PropEmail)
}

func TestUpdatePropertiesIncludesPresentOptionalFields(t *testing.T) {
	props := UpdateProperties(entity.Lead{
		Email:      "a@x.com",
		UTMContent: "hero",
		GCLID:      "g-1",
		FBCLID:     "fb-1",
	})

	assert.Equal(t, "hero", props[PropUTMContent])
	assert.Equal(t, "g-1", props[PropGoogleClickID])
	assert.Equal(t, "fb-1", props[PropFacebookClickID])
	assert.NotContains(t, props, PropUTMTerm)
	assert.Len(t, props, 8)
}
