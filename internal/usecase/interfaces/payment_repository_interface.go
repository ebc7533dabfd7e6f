package interfaces

import (
	"context"

	"hvacworks/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListBySnapshotID(ctx context.Context, snapshotID string) ([]entities.Payment, error)
}
