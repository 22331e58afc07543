package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/hubspot-contact-upsert/internal/entity"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/middleware"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/integration/hubspot"
	"github.com/xavierca1/hubspot-contact-upsert/internal/usecase"
)

const (
	MsgInvalidRequest = "⚠️ Invalid request. Email is required."
	MsgProcessingFail = "😭 Error processing request."

	maxBodyBytes = 1 << 20
)

type ContactHandler struct {
	UpsertContactUC *usecase.UpsertContactUseCase
	Log             logrus.FieldLogger
}

func NewContactHandler(uc *usecase.UpsertContactUseCase, log logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{UpsertContactUC: uc, Log: log}
}

// Handle serves POST /update-hubspot-crm: 201 created, 200 updated,
// 400 without email, 500 for anything that went wrong upstream.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("request_id", middleware.RequestIDFromContext(r.Context()))

	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", fmt.Sprint(rec)).Error("😭 Error: unexpected fault")
			middleware.RecordUpsert("failed")
			writeText(w, http.StatusInternalServerError, MsgProcessingFail)
		}
	}()

	var lead entity.Lead
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&lead); err != nil {
		log.WithError(err).Warn("⚠️ Invalid request body")
		middleware.RecordUpsert("invalid")
		writeText(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	log = log.WithField("email", lead.Email)

	output, err := h.UpsertContactUC.Execute(r.Context(), lead)
	if err != nil {
		if usecase.IsValidationError(err) {
			log.WithError(err).Warn("⚠️ Invalid request")
			middleware.RecordUpsert("invalid")
			writeText(w, http.StatusBadRequest, MsgInvalidRequest)
			return
		}

		fields := logrus.Fields{}
		if remoteErr, ok := usecase.AsRemoteError(err); ok {
			fields["stage"] = string(remoteErr.Stage)
			middleware.RecordIntegrationError(string(remoteErr.Stage))
		}
		if apiErr, ok := hubspot.AsAPIError(err); ok {
			fields["hubspot_status"] = apiErr.StatusCode
			fields["correlation_id"] = apiErr.CorrelationID
		}
		log.WithFields(fields).WithError(err).Error("😭 Error processing request")
		middleware.RecordUpsert("failed")
		writeText(w, http.StatusInternalServerError, MsgProcessingFail)
		return
	}

	log = log.WithFields(logrus.Fields{
		"outcome":    string(output.Outcome),
		"contact_id": output.ContactID,
	})
	middleware.RecordUpsert(string(output.Outcome))

	if output.Outcome == usecase.OutcomeCreated {
		log.Info("🚀 Contact created")
		writeText(w, http.StatusCreated, fmt.Sprintf("🚀 Contact created: %s", lead.Email))
		return
	}

	log.Info("🔁 Contact updated")
	writeText(w, http.StatusOK, fmt.Sprintf("🔁 Contact updated: %s", lead.Email))
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
