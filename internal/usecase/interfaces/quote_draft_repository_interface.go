package interfaces

import (
	"context"

	"hvacworks/internal/domain/entities"
)

// IQuoteDraftRepository abstracts DynamoDB persistence for working quotes.
//
// Drafts are whole-document writes: the builder use case loads a draft,
// mutates it in memory and saves it back. Each draft is owned by a single
// editing session, so last-write-wins is acceptable.

type IQuoteDraftRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
