package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/hubspot-contact-upsert/internal/config"
	"github.com/xavierca1/hubspot-contact-upsert/internal/entity"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/integration/hubspot"
	"github.com/xavierca1/hubspot-contact-upsert/internal/usecase"
)

// Runs one upsert against the HubSpot account configured in .env.
func main() {
	lead := entity.Lead{}
	flag.StringVar(&lead.Email, "email", "joao.teste@email.com", "lead email")
	flag.StringVar(&lead.FirstName, "first-name", "Joao", "first name")
	flag.StringVar(&lead.LastName, "last-name", "Teste", "last name")
	flag.StringVar(&lead.UTMSource, "utm-source", "manual", "utm_source")
	flag.StringVar(&lead.UTMCampaign, "utm-campaign", "integration-test", "utm_campaign")
	flag.StringVar(&lead.UTMTerm, "utm-term", "", "utm_term")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v (set it in .env)", err)
	}

	client := hubspot.NewClient(cfg.HubSpot.APIKey, cfg.HubSpot.BaseURL, cfg.HubSpot.Timeout)
	uc := usecase.NewUpsertContactUseCase(client)

	fmt.Println("🔄 Enviando lead para o HubSpot...")
	fmt.Printf("   Email: %s\n", lead.Email)
	fmt.Printf("   Nome: %s %s\n", lead.FirstName, lead.LastName)
	fmt.Printf("   Origem: %s / %s\n\n", lead.UTMSource, lead.UTMCampaign)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := uc.Execute(ctx, lead)
	if err != nil {
		if apiErr, ok := hubspot.AsAPIError(err); ok {
			log.Fatalf("Erro no HubSpot (status %d, correlationId %s): %v", apiErr.StatusCode, apiErr.CorrelationID, err)
		}
		log.Fatalf("Erro ao enviar lead: %v", err)
	}

	fmt.Printf("Contato %s com sucesso!\n", out.Outcome)
	fmt.Printf(" ID do contato: %s\n", out.ContactID)
}
