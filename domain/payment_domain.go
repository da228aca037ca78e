package domain

import (
	"errors"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusSettled = "Settled"
	PaymentStatusFailed  = "Failed"
)

var (
	MessageSuccessCreatePayment = "payment created successfully"
	MessageSuccessWebhook       = "payment notification processed"

	MessageFailedCreatePayment = "failed to create payment"
	MessageFailedWebhook       = "failed to process payment notification"

	ErrPaymentNotFound = errors.New("payment not found")
)

type (
	// MidtransNotification is the subset of the Midtrans HTTP notification
	// payload the webhook cares about.
	MidtransNotification struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status,omitempty"`
	}

	PaymentResponse struct {
		ID            string  `json:"id"`
		TransactionID string  `json:"transaction_id"`
		OrderID       string  `json:"order_id"`
		GrossAmount   float64 `json:"gross_amount"`
		SnapURL       string  `json:"snap_url,omitempty"`
		Status        string  `json:"status"`
	}
)
