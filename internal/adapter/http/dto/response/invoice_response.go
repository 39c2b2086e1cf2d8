package response

import (
	"time"

	"fieldserve_costing/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	GatewayPayloadRaw string `json:"gateway_payload_raw,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		JobID:             inv.JobID,
		TotalAmount:       round2(inv.TotalAmount),
		PaymentStatus:     string(inv.PaymentStatus),
		PaidAt:            inv.PaidAt,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
		GatewayPayloadRaw: string(inv.GatewayPayloadRaw),
	}
}
