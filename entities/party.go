package entities

import (
	"time"

	"github.com/google/uuid"
)

type Individual struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	Contact         string    `json:"contact"`
	Location        string    `json:"location"`
	OrdersServed    int       `json:"orders_served"`
	OrdersReceived  int       `json:"orders_received"`
	DonationsServed int       `json:"donations_served"`
	Rewards         int       `json:"rewards"`
	Rating          float64   `gorm:"default:3" json:"rating"` // 1-5

	Timestamp
}

type Kitchen struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	FssaiID         string    `gorm:"uniqueIndex" json:"fssai_id"` // food safety license
	Contact         string    `json:"contact"`
	Location        string    `json:"location"`
	OrdersServed    int       `json:"orders_served"`
	OrdersReceived  int       `json:"orders_received"`
	DonationsServed int       `json:"donations_served"`
	Rewards         int       `json:"rewards"`
	Rating          float64   `gorm:"default:3" json:"rating"` // 1-5

	Timestamp
}

type Ngo struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	NgoID           string    `gorm:"uniqueIndex" json:"ngo_id"` // government registration
	Contact         string    `json:"contact"`
	Location        string    `json:"location"`
	OrdersServed    int       `json:"orders_served"`
	OrdersReceived  int       `json:"orders_received"`
	DonationsServed int       `json:"donations_served"`
	Rewards         int       `json:"rewards"`
	Rating          float64   `gorm:"default:3" json:"rating"` // 1-5

	Timestamp
}

// TransactionHistory is one append-only entry in a party's exchange history.
// The owning party is identified by PartyID+PartyKind since the three party
// kinds live in separate tables.
type TransactionHistory struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PartyID       uuid.UUID `gorm:"index:idx_history_party" json:"party_id"`
	PartyKind     string    `gorm:"index:idx_history_party" json:"party_kind"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Type          string    `json:"type"`   // donation, order
	Status        string    `json:"status"` // Pending, Delivered
	PartnerID     uuid.UUID `json:"partner_id"`
	PartnerKind   string    `json:"partner_kind"`
	RecordedAt    time.Time `gorm:"type:timestamp" json:"recorded_at"`

	Timestamp
}
