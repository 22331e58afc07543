package hubspot

// Filter operators accepted by the CRM search endpoint.
const (
	OperatorEQ = "EQ"
)

type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value,omitempty"`
}

type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

// SearchResponse leaves Total nil when the body carries no total.
type SearchResponse struct {
	Total   *int      `json:"total"`
	Results []Contact `json:"results"`
}

type Contact struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
	Archived   bool              `json:"archived,omitempty"`
}

// ContactInput is the body of both create and partial update calls.
type ContactInput struct {
	Properties map[string]string `json:"properties"`
}
