package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/utils/storage"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/party"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest, listerID string, listerKind string) (*domain.Listing, error)
		GetListingsByKind(ctx context.Context, kind string) ([]*domain.Listing, error)
		GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
		DeleteListing(ctx context.Context, id string) error
	}

	listingService struct {
		listingRepository ListingRepository
		partyRepository   party.PartyRepository
		s3                storage.AwsS3
	}
)

func NewListingService(listingRepository ListingRepository, partyRepository party.PartyRepository, s3 storage.AwsS3) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		partyRepository:   partyRepository,
		s3:                s3,
	}
}

// parseExpiry accepts a bare date or a full RFC 3339 timestamp.
func parseExpiry(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return t, nil
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, listerID string, listerKind string) (*domain.Listing, error) {
	if req.ListingKind != domain.ListingKindDonation && req.ListingKind != domain.ListingKindMarketplace {
		return nil, domain.ErrInvalidListingKind
	}
	if req.ItemCategory != domain.CategoryPerishable && req.ItemCategory != domain.CategoryNonPerishable {
		return nil, domain.ErrInvalidCategory
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	// Perishable items must carry an explicit expiry. Non-perishable items
	// without one default to two days out.
	var expiryDate time.Time
	if req.ItemCategory == domain.CategoryPerishable {
		if req.ExpiryDate == "" {
			return nil, domain.ErrExpiryDateRequired
		}
		parsed, err := parseExpiry(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		expiryDate = parsed
	} else if req.ExpiryDate != "" {
		parsed, err := parseExpiry(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		expiryDate = parsed
	} else {
		expiryDate = time.Now().Add(domain.NonPerishableShelfLife)
	}

	lister, err := s.partyRepository.FindByIDAndKind(ctx, listerID, listerKind)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrInvalidPartyKind) {
			return nil, domain.ErrListerNotFound
		}
		return nil, err
	}

	listerUUID, err := uuid.Parse(listerID)
	if err != nil {
		return nil, domain.ErrListerNotFound
	}

	listingID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("listing-%s", listingID.String()),
			req.Image,
			"listings",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	feeds := req.Feeds
	if feeds == 0 {
		feeds = 1
	}

	listing := &entities.Listing{
		ID:             listingID,
		ListingKind:    req.ListingKind,
		ItemName:       req.ItemName,
		ItemCategory:   req.ItemCategory,
		Description:    req.Description,
		Quantity:       req.Quantity,
		Price:          req.Price,
		Feeds:          feeds,
		Status:         domain.ListingStatusNotAddressed,
		ListerID:       listerUUID,
		ListerKind:     listerKind,
		ListerName:     lister.Name,
		ListerContact:  lister.Contact,
		ListerLocation: lister.Location,
		Rating:         lister.Rating,
		ImageURL:       imageURL,
		ExpiryDate:     expiryDate,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	return toDomainListing(listing), nil
}

func (s *listingService) GetListingsByKind(ctx context.Context, kind string) ([]*domain.Listing, error) {
	if kind != domain.ListingKindDonation && kind != domain.ListingKindMarketplace {
		return nil, domain.ErrInvalidListingKind
	}

	listings, err := s.listingRepository.GetListingsByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Listing, 0, len(listings))
	for _, listing := range listings {
		result = append(result, toDomainListing(listing))
	}
	return result, nil
}

func (s *listingService) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidListingID
	}

	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return toDomainListing(listing), nil
}

func (s *listingService) DeleteListing(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidListingID
	}

	if err := s.listingRepository.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}
	return nil
}

func toDomainListing(listing *entities.Listing) *domain.Listing {
	return &domain.Listing{
		ID:             listing.ID.String(),
		ListingKind:    listing.ListingKind,
		ItemName:       listing.ItemName,
		ItemCategory:   listing.ItemCategory,
		Description:    listing.Description,
		Quantity:       listing.Quantity,
		Price:          listing.Price,
		Feeds:          listing.Feeds,
		Status:         listing.Status,
		ListerID:       listing.ListerID.String(),
		ListerKind:     listing.ListerKind,
		ListerName:     listing.ListerName,
		ListerContact:  listing.ListerContact,
		ListerLocation: listing.ListerLocation,
		Rating:         listing.Rating,
		ImageURL:       listing.ImageURL,
		ExpiryDate:     listing.ExpiryDate,
		CreatedAt:      listing.CreatedAt,
		UpdatedAt:      listing.UpdatedAt,
	}
}
