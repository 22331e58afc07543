package usecase

import "github.com/xavierca1/hubspot-contact-upsert/internal/entity"

// HubSpot contact property names.
const (
	PropEmail           = "email"
	PropFirstName       = "firstname"
	PropLastName        = "lastname"
	PropUTMCampaign     = "utm_campaign"
	PropUTMSource       = "utm_source"
	PropUTMMedium       = "utm_medium"
	PropUTMContent      = "utm_content"
	PropUTMTerm         = "utm_term"
	PropGoogleClickID   = "hs_google_click_id"
	PropFacebookClickID = "hs_facebook_click_id"
)

// InclusionRule decides whether a property goes into a partial update.
type InclusionRule int

const (
	// Always sends the value even when empty, overwriting the stored one.
	Always InclusionRule = iota
	// WhenPresent skips empty values so existing attribution survives.
	WhenPresent
)

type ContactProperty struct {
	Name  string
	Value string
	Rule  InclusionRule
}

// ContactProperties lists the mutable contact fields in a fixed order.
// Email is not part of it: it is the lookup key and never updated.
func ContactProperties(lead entity.Lead) []ContactProperty {
	return []ContactProperty{
		{PropFirstName, lead.FirstName, Always},
		{PropLastName, lead.LastName, Always},
		{PropUTMCampaign, lead.UTMCampaign, Always},
		{PropUTMSource, lead.UTMSource, Always},
		{PropUTMMedium, lead.UTMMedium, Always},
		{PropUTMContent, lead.UTMContent, WhenPresent},
		{PropUTMTerm, lead.UTMTerm, WhenPresent},
		{PropGoogleClickID, lead.GCLID, WhenPresent},
		{PropFacebookClickID, lead.FBCLID, WhenPresent},
	}
}

// CreateProperties maps every field of the lead, empty ones included.
func CreateProperties(lead entity.Lead) map[string]string {
	props := ContactProperties(lead)
	out := make(map[string]string, len(props)+1)
	out[PropEmail] = lead.Email
	for _, p := range props {
		out[p.Name] = p.Value
	}
	return out
}

// UpdateProperties applies the inclusion rules for a partial update.
func UpdateProperties(lead entity.Lead) map[string]string {
	props := ContactProperties(lead)
	out := make(map[string]string, len(props))
	for _, p := range props {
		if p.Rule == WhenPresent && p.Value == "" {
			continue
		}
		out[p.Name] = p.Value
	}
	return out
}
