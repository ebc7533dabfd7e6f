package interfaces

import (
	"context"

	"hvacworks/internal/domain/entities"
)

// IQuoteSnapshotRepository abstracts DynamoDB persistence for saved quotes.
//
// Snapshots are immutable apart from status: Create must refuse to overwrite
// an existing id, and UpdateStatusByID is the only mutation.

type IQuoteSnapshotRepository interface {
	Create(ctx context.Context, s entities.QuoteSnapshot) (entities.QuoteSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSnapshot, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.SnapshotStatus) (entities.QuoteSnapshot, error)
}
