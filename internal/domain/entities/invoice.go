package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents an invoice's payment state.
//
// Only paid invoices contribute to a job's total invoiced figure; partial
// and overdue states exist for completeness and portal display.

type PaymentStatus string

const (
	PaymentStatusDraft   PaymentStatus = "draft"
	PaymentStatusSent    PaymentStatus = "sent"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Invoice is the billed-amount reference read from DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the payment provider's original response
//     (JSON) for traceability/audit when a payment is recorded through
//     the gateway.
//
type Invoice struct {
	ID            string        `json:"id"`
	JobID         string        `json:"job_id"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
}
