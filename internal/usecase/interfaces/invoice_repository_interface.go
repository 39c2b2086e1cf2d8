package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"fieldserve_costing/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB access to invoices.
//
// Snapshot computation only reads paid invoices; MarkPaid exists for the
// gateway-backed payment flow, which persists the provider response payload
// alongside the status change for traceability.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListPaidByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time, gatewayPayload json.RawMessage) (entities.Invoice, error)
}
