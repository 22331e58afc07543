package entity

import (
	"context"
)

// Lead is the payload posted by the landing page form.
type Lead struct {
	Email       string `json:"email" validate:"required"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMContent  string `json:"utm_content,omitempty"`
	UTMTerm     string `json:"utm_term,omitempty"`
	GCLID       string `json:"gclid,omitempty"`  // Google Ads
	FBCLID      string `json:"fbclid,omitempty"` // Facebook Ads
}

// ContactDirectory is the remote CRM the leads are pushed to.
type ContactDirectory interface {
	// FindContactIDByEmail returns the id of the first contact whose email
	// matches, and false when there is none.
	FindContactIDByEmail(ctx context.Context, email string) (string, bool, error)
	CreateContact(ctx context.Context, properties map[string]string) (string, error)
	UpdateContact(ctx context.Context, contactID string, properties map[string]string) error
}
