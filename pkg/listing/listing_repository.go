package listing

import (
	"context"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.Listing) error
		GetListingByID(ctx context.Context, id string) (*entities.Listing, error)
		GetListingsByKind(ctx context.Context, kind string) ([]*entities.Listing, error)
		DeleteListing(ctx context.Context, id string) error
		GetExpiredListings(ctx context.Context, now time.Time) ([]*entities.Listing, error)
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.Listing, error) {
	var listing entities.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetListingsByKind(ctx context.Context, kind string) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	if err := r.db.WithContext(ctx).
		Where("listing_kind = ?", kind).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) DeleteListing(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listingRepository) GetExpiredListings(ctx context.Context, now time.Time) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	if err := r.db.WithContext(ctx).
		Where("expiry_date <= ?", now).
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
