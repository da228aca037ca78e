package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "signed up successfully"
	MessageSuccessLogin         = "logged in successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessGetHistory    = "transaction history retrieved successfully"

	MessageFailedRegister      = "failed to sign up"
	MessageFailedLogin         = "failed to log in"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedGetHistory    = "failed to retrieve transaction history"

	ErrPartyNotFound      = errors.New("party not found")
	ErrInvalidPartyKind   = errors.New("invalid party kind")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFssaiIDRequired    = errors.New("fssai id is required for kitchens")
	ErrNgoIDRequired      = errors.New("ngo registration id is required for ngos")
)

type (
	RegisterRequest struct {
		Role     string `json:"role" validate:"required,oneof=Individual Kitchen Ngo"`
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Contact  string `json:"contact" validate:"required"`
		Location string `json:"location" validate:"required"`
		FssaiID  string `json:"fssai_id,omitempty" validate:"omitempty"`
		NgoID    string `json:"ngo_id,omitempty" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=Individual Kitchen Ngo"`
	}

	AuthResponse struct {
		Token    string `json:"token"`
		UserType string `json:"user_type"`
	}

	UpdateProfileRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Email    string `json:"email" validate:"omitempty,email"`
		Contact  string `json:"contact" validate:"omitempty"`
		Location string `json:"location" validate:"omitempty"`
	}

	// Party is the polymorphic view over the three party tables. Kind
	// discriminates which table the record came from.
	Party struct {
		ID              string  `json:"id"`
		Kind            string  `json:"kind"`
		Name            string  `json:"name"`
		Email           string  `json:"email"`
		Contact         string  `json:"contact"`
		Location        string  `json:"location"`
		FssaiID         string  `json:"fssai_id,omitempty"`
		NgoID           string  `json:"ngo_id,omitempty"`
		OrdersServed    int     `json:"orders_served"`
		OrdersReceived  int     `json:"orders_received"`
		DonationsServed int     `json:"donations_served"`
		Rewards         int     `json:"rewards"`
		Rating          float64 `json:"rating"`
	}

	TransactionHistoryEntry struct {
		TransactionID string    `json:"transaction_id"`
		Type          string    `json:"type"`
		Status        string    `json:"status"`
		PartnerID     string    `json:"partner_id"`
		PartnerKind   string    `json:"partner_kind"`
		RecordedAt    time.Time `json:"recorded_at"`
	}
)
