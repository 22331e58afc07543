package lambda_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/hubspot-contact-upsert/internal/config"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/router"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/lambda"
)

// fakeContacts answers searches with no match and records created contacts.
type fakeContacts struct {
	mu      sync.Mutex
	created []map[string]string
}

func (f *fakeContacts) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/crm/v3/objects/contacts/search":
		_, _ = io.WriteString(w, `{"total":0,"results":[]}`)
	case "/crm/v3/objects/contacts":
		var in struct {
			Properties map[string]string `json:"properties"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.created = append(f.created, in.Properties)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"900"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeContacts) Created() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.created...)
}

func setupAdapter(t *testing.T, fake *fakeContacts) *lambda.Adapter {
	t.Helper()
	hub := httptest.NewServer(fake)
	t.Cleanup(hub.Close)

	cfg := &config.Config{
		HubSpot: config.HubSpotConfig{APIKey: "pat-test", BaseURL: hub.URL},
		CORS:    config.CORSConfig{AllowedOrigin: "https://adoutreach.com"},
	}
	log, _ := test.NewNullLogger()
	return lambda.NewAdapter(router.Build(cfg, log))
}

func TestAdapterReplaysProxyEventThroughRouter(t *testing.T) {
	fake := &fakeContacts{}
	a := setupAdapter(t, fake)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       router.UpsertPath,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"email":"a@x.com","first_name":"A"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "🚀 Contact created: a@x.com", resp.Body)
	require.Len(t, fake.Created(), 1)
	assert.Equal(t, "a@x.com", fake.Created()[0]["email"])
	assert.Equal(t, "A", fake.Created()[0]["firstname"])
}

func TestAdapterDecodesBase64Body(t *testing.T) {
	fake := &fakeContacts{}
	a := setupAdapter(t, fake)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            router.UpsertPath,
		Headers:         map[string]string{"Content-Type": "application/json"},
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"email":"b@x.com"}`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, fake.Created(), 1)
	assert.Equal(t, "b@x.com", fake.Created()[0]["email"])
}

func TestAdapterMissingEmail(t *testing.T) {
	fake := &fakeContacts{}
	a := setupAdapter(t, fake)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       router.UpsertPath,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"first_name":"A"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, fake.Created())
}

func TestAdapterForwardsGatewayRequestID(t *testing.T) {
	var got string
	a := lambda.NewAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
	}))

	_, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           router.UpsertPath,
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-req-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gw-req-1", got)

	_, err = a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           router.UpsertPath,
		Headers:        map[string]string{"X-Request-ID": "client-1"},
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-req-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "client-1", got)
}
