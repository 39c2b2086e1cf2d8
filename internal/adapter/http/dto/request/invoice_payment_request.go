package request

import "encoding/json"

// InvoicePaymentRequest carries the payment provider payload for an invoice
// payment.
//
// `gateway_payload` is stored as-is (raw JSON) because provider schemas vary
// by payment method.

type InvoicePaymentRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
