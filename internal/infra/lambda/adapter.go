package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/middleware"
)

// Adapter replays API Gateway proxy events through the HTTP router, so the
// Lambda and the HTTP server share routing, CORS and middleware.
type Adapter struct {
	proxy *httpadapter.HandlerAdapter
}

func NewAdapter(h http.Handler) *Adapter {
	return &Adapter{proxy: httpadapter.New(gatewayRequestID(h))}
}

func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return a.proxy.ProxyWithContext(ctx, event)
}

// gatewayRequestID adopts the API Gateway request id unless the caller sent one.
func gatewayRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			if gw, ok := core.GetAPIGatewayContextFromContext(r.Context()); ok && gw.RequestID != "" {
				r.Header.Set(middleware.RequestIDHeader, gw.RequestID)
			}
		}
		next.ServeHTTP(w, r)
	})
}
