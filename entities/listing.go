package entities

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingKind  string    `json:"listing_kind"`  // Donation, Marketplace
	ItemName     string    `json:"item_name"`
	ItemCategory string    `json:"item_category"` // Perishable, Non-Perishable
	Description  string    `json:"description,omitempty"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"` // meaningful for Marketplace only
	Feeds        int       `json:"feeds"`
	Status       string    `json:"status"` // NotAddressed, Pending, Delivered

	ListerID   uuid.UUID `gorm:"index" json:"lister_id"`
	ListerKind string    `json:"lister_kind"` // Individual, Kitchen, Ngo

	// Contact snapshot copied from the lister at creation time.
	ListerName     string  `json:"lister_name"`
	ListerContact  string  `json:"lister_contact"`
	ListerLocation string  `json:"lister_location"`
	Rating         float64 `gorm:"default:3" json:"rating"`

	ImageURL   string    `json:"image_url,omitempty"`
	ExpiryDate time.Time `gorm:"index" json:"expiry_date"`

	Timestamp
}
