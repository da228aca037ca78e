package entities

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	ServerUserID   uuid.UUID `gorm:"index" json:"server_user_id"`
	ServerUserKind string    `json:"server_user_kind"`
	ServerUserName string    `json:"server_user_name"`

	ReceiverUserID   uuid.UUID `gorm:"index" json:"receiver_user_id"`
	ReceiverUserKind string    `json:"receiver_user_kind"`
	ReceiverUserName string    `json:"receiver_user_name"`

	ListingID uuid.UUID `json:"listing_id"`

	Type              string     `json:"type"`   // donation, order
	Status            string     `json:"status"` // Pending, Delivered
	ServerConfirmed   bool       `json:"server_confirmed"`
	ReceiverConfirmed bool       `json:"receiver_confirmed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Timestamp
}

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TransactionID uuid.UUID `gorm:"index" json:"transaction_id"`
	OrderID       string    `gorm:"uniqueIndex" json:"order_id"`
	GrossAmount   float64   `json:"gross_amount"`
	SnapURL       string    `json:"snap_url,omitempty"`
	Status        string    `json:"status"` // Pending, Settled, Failed

	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	Timestamp
}
