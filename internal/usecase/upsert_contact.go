package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/xavierca1/hubspot-contact-upsert/internal/entity"
)

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

type UpsertContactOutput struct {
	Outcome   Outcome
	ContactID string
}

type UpsertContactUseCase struct {
	Directory entity.ContactDirectory
	validate  *validator.Validate
}

func NewUpsertContactUseCase(directory entity.ContactDirectory) *UpsertContactUseCase {
	return &UpsertContactUseCase{
		Directory: directory,
		validate:  validator.New(),
	}
}

// Execute creates the contact when no record carries the lead's email,
// otherwise patches the first match. Calls are sequential and never retried.
func (uc *UpsertContactUseCase) Execute(ctx context.Context, lead entity.Lead) (UpsertContactOutput, error) {
	if err := uc.validate.Struct(lead); err != nil {
		return UpsertContactOutput{}, &ValidationError{Field: "email", Message: "is required"}
	}

	contactID, found, err := uc.Directory.FindContactIDByEmail(ctx, lead.Email)
	if err != nil {
		return UpsertContactOutput{}, &RemoteError{Stage: StageSearch, Err: err}
	}

	if !found {
		newID, err := uc.Directory.CreateContact(ctx, CreateProperties(lead))
		if err != nil {
			return UpsertContactOutput{}, &RemoteError{Stage: StageCreate, Err: err}
		}
		return UpsertContactOutput{Outcome: OutcomeCreated, ContactID: newID}, nil
	}

	if err := uc.Directory.UpdateContact(ctx, contactID, UpdateProperties(lead)); err != nil {
		return UpsertContactOutput{}, &RemoteError{Stage: StageUpdate, Err: err}
	}

	return UpsertContactOutput{Outcome: OutcomeUpdated, ContactID: contactID}, nil
}
