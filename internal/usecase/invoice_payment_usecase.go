package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid    = errors.New("invoice already paid")
	ErrInvalidGatewayPayload = errors.New("invalid payment gateway payload")
	ErrPaymentNotApproved    = errors.New("payment not approved by gateway")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// IInvoicePaymentUseCase records a client payment against an invoice through
// the external payment gateway and marks the invoice paid on approval.
type IInvoicePaymentUseCase interface {
	RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
}

type InvoicePaymentUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{invoiceRepo: invoiceRepo, gateway: gateway}
}

func (u *InvoicePaymentUseCase) RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.Invoice{}, ErrInvalidGatewayPayload
	}
	if u.gateway == nil {
		return entities.Invoice{}, ErrGatewayNotConfigured
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	// The invoice record is the source of truth for the charged amount;
	// external_reference ties the provider event back to the invoice.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = invoiceID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", invoiceID)
		}
		reqMap["transaction_amount"] = inv.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payments][usecase] gateway create failed invoice_id=%s err=%v", invoiceID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[payments][usecase] gateway responded invoice_id=%s provider_payment_id=%s status=%s", invoiceID, providerPaymentID, providerStatus)

	if !strings.EqualFold(providerStatus, "approved") {
		return entities.Invoice{}, ErrPaymentNotApproved
	}

	paid, err := u.invoiceRepo.MarkPaid(ctx, invoiceID, time.Now().UTC(), providerResp)
	if err != nil {
		return entities.Invoice{}, err
	}
	if paid.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return paid, nil
}
