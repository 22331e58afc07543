package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/xavierca1/hubspot-contact-upsert/internal/config"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/router"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/lambda"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/logger"
)

var adapter *lambda.Adapter

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	adapter = lambda.NewAdapter(router.Build(cfg, log))
}

func main() {
	awslambda.Start(adapter.Handle)
}
