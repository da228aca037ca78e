package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ListingKindDonation    = "Donation"
	ListingKindMarketplace = "Marketplace"

	CategoryPerishable    = "Perishable"
	CategoryNonPerishable = "Non-Perishable"

	ListingStatusNotAddressed = "NotAddressed"
	ListingStatusPending      = "Pending"
	ListingStatusDelivered    = "Delivered"

	// Listings without an explicit expiry keep for two days.
	NonPerishableShelfLife = 48 * time.Hour
)

var (
	MessageSuccessCreateListing = "item added successfully"
	MessageSuccessGetListings   = "items retrieved successfully"
	MessageSuccessGetListing    = "item retrieved successfully"
	MessageSuccessDeleteListing = "item deleted successfully"

	MessageFailedCreateListing = "failed to add item"
	MessageFailedGetListings   = "failed to retrieve items"
	MessageFailedGetListing    = "failed to retrieve item"
	MessageFailedDeleteListing = "failed to delete item"

	ErrListingNotFound    = errors.New("item not found")
	ErrInvalidListingID   = errors.New("invalid item id format")
	ErrInvalidListingKind = errors.New("invalid listing kind")
	ErrInvalidCategory    = errors.New("invalid item category")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrExpiryDateRequired = errors.New("expiry date is required for perishable items")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrListerNotFound     = errors.New("lister not found")
)

type (
	CreateListingRequest struct {
		ListingKind  string                `json:"listing_kind" form:"listing_kind" validate:"required,oneof=Donation Marketplace"`
		ItemName     string                `json:"item_name" form:"item_name" validate:"required"`
		ItemCategory string                `json:"item_category" form:"item_category" validate:"required,oneof=Perishable Non-Perishable"`
		Description  string                `json:"description,omitempty" form:"description" validate:"omitempty"`
		Quantity     int                   `json:"quantity" form:"quantity" validate:"required,min=1"`
		Price        float64               `json:"price,omitempty" form:"price" validate:"omitempty,min=0"`
		Feeds        int                   `json:"feeds,omitempty" form:"feeds" validate:"omitempty,min=1"`
		ExpiryDate   string                `json:"expiry_date,omitempty" form:"expiry_date" validate:"omitempty"`
		Image        *multipart.FileHeader `json:"image,omitempty" form:"image"`
	}

	Listing struct {
		ID             string    `json:"id"`
		ListingKind    string    `json:"listing_kind"`
		ItemName       string    `json:"item_name"`
		ItemCategory   string    `json:"item_category"`
		Description    string    `json:"description,omitempty"`
		Quantity       int       `json:"quantity"`
		Price          float64   `json:"price"`
		Feeds          int       `json:"feeds"`
		Status         string    `json:"status"`
		ListerID       string    `json:"lister_id"`
		ListerKind     string    `json:"lister_kind"`
		ListerName     string    `json:"lister_name"`
		ListerContact  string    `json:"lister_contact"`
		ListerLocation string    `json:"lister_location"`
		Rating         float64   `json:"rating"`
		ImageURL       string    `json:"image_url,omitempty"`
		ExpiryDate     time.Time `json:"expiry_date"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
