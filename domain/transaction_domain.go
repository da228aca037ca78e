package domain

import (
	"errors"
	"time"
)

const (
	TransactionTypeDonation = "donation"
	TransactionTypeOrder    = "order"

	TransactionStatusPending   = "Pending"
	TransactionStatusDelivered = "Delivered"

	// Reward points granted to the serving party once both sides confirm.
	RewardDonationServed = 10
	RewardOrderServed    = 5
)

var (
	MessageSuccessCreateTransaction  = "transaction created successfully"
	MessageSuccessGetTransaction     = "transaction retrieved successfully"
	MessageSuccessConfirmTransaction = "confirmation received"

	MessageFailedCreateTransaction  = "failed to create transaction"
	MessageFailedGetTransaction     = "failed to retrieve transaction"
	MessageFailedConfirmTransaction = "failed to confirm transaction"

	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id format")
	ErrSelfTransaction      = errors.New("cannot transact on your own listing")
	ErrNotTransactionParty  = errors.New("user not authorized for this transaction")
)

type (
	CreateTransactionRequest struct {
		ListingID string `json:"listing_id" validate:"required,uuid"`
	}

	Transaction struct {
		ID                string     `json:"id"`
		ServerUserID      string     `json:"server_user_id"`
		ServerUserKind    string     `json:"server_user_kind"`
		ServerUserName    string     `json:"server_user_name"`
		ReceiverUserID    string     `json:"receiver_user_id"`
		ReceiverUserKind  string     `json:"receiver_user_kind"`
		ReceiverUserName  string     `json:"receiver_user_name"`
		ListingID         string     `json:"listing_id"`
		Listing           *Listing   `json:"listing,omitempty"`
		Type              string     `json:"type"`
		Status            string     `json:"status"`
		ServerConfirmed   bool       `json:"server_confirmed"`
		ReceiverConfirmed bool       `json:"receiver_confirmed"`
		CompletedAt       *time.Time `json:"completed_at,omitempty"`
		PaymentURL        string     `json:"payment_url,omitempty"`
		CreatedAt         time.Time  `json:"created_at"`
	}
)
