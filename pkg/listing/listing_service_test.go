package listing

import (
	"context"
	"testing"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/party"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeListingRepository struct {
	listings    map[string]*entities.Listing
	deleteCalls int
}

func newFakeListingRepository() *fakeListingRepository {
	return &fakeListingRepository{listings: map[string]*entities.Listing{}}
}

func (f *fakeListingRepository) CreateListing(_ context.Context, listing *entities.Listing) error {
	f.listings[listing.ID.String()] = listing
	return nil
}

func (f *fakeListingRepository) GetListingByID(_ context.Context, id string) (*entities.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return listing, nil
}

func (f *fakeListingRepository) GetListingsByKind(_ context.Context, kind string) ([]*entities.Listing, error) {
	var result []*entities.Listing
	for _, listing := range f.listings {
		if listing.ListingKind == kind {
			result = append(result, listing)
		}
	}
	return result, nil
}

func (f *fakeListingRepository) DeleteListing(_ context.Context, id string) error {
	f.deleteCalls++
	if _, ok := f.listings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepository) GetExpiredListings(_ context.Context, now time.Time) ([]*entities.Listing, error) {
	var result []*entities.Listing
	for _, listing := range f.listings {
		if !listing.ExpiryDate.After(now) {
			result = append(result, listing)
		}
	}
	return result, nil
}

type fakePartyRepository struct {
	parties map[string]*domain.Party
}

func newFakePartyRepository() *fakePartyRepository {
	return &fakePartyRepository{parties: map[string]*domain.Party{}}
}

func (f *fakePartyRepository) add(p *domain.Party) {
	f.parties[p.ID] = p
}

func (f *fakePartyRepository) CreateIndividual(_ context.Context, _ *entities.Individual) error {
	return nil
}

func (f *fakePartyRepository) CreateKitchen(_ context.Context, _ *entities.Kitchen) error {
	return nil
}

func (f *fakePartyRepository) CreateNgo(_ context.Context, _ *entities.Ngo) error {
	return nil
}

func (f *fakePartyRepository) FindByIDAndKind(_ context.Context, id string, kind string) (*domain.Party, error) {
	p, ok := f.parties[id]
	if !ok || p.Kind != kind {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePartyRepository) FindCredentialsByEmail(_ context.Context, _ string, _ string) (*party.PartyCredentials, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartyRepository) EmailExists(_ context.Context, _ string, _ string) (bool, error) {
	return false, nil
}

func (f *fakePartyRepository) UpdateProfile(_ context.Context, _ string, _ string, _ map[string]interface{}) (*domain.Party, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartyRepository) IncrementStat(_ context.Context, _ *gorm.DB, _ string, _ string, _ string, _ int, _ *entities.TransactionHistory) error {
	return nil
}

func (f *fakePartyRepository) GetHistory(_ context.Context, _ string, _ string, _ int, _ int) ([]*entities.TransactionHistory, int64, error) {
	return nil, 0, nil
}

func newTestLister(parties *fakePartyRepository) *domain.Party {
	lister := &domain.Party{
		ID:       uuid.New().String(),
		Kind:     domain.RoleKitchen,
		Name:     "Annapurna Kitchen",
		Email:    "annapurna@example.com",
		Contact:  "9999999999",
		Location: "Mumbai",
		Rating:   4,
	}
	parties.add(lister)
	return lister
}

func TestCreateListing_SnapshotsLister(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)

	service := NewListingService(listings, parties, nil)
	result, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Vegetable Biryani",
		ItemCategory: domain.CategoryPerishable,
		Quantity:     5,
		ExpiryDate:   "2026-09-02",
	}, lister.ID, lister.Kind)
	require.NoError(t, err)

	assert.Equal(t, lister.ID, result.ListerID)
	assert.Equal(t, lister.Name, result.ListerName)
	assert.Equal(t, lister.Contact, result.ListerContact)
	assert.Equal(t, lister.Location, result.ListerLocation)
	assert.Equal(t, lister.Rating, result.Rating)
	assert.Equal(t, domain.ListingStatusNotAddressed, result.Status)
	assert.Equal(t, 1, result.Feeds)
	assert.Len(t, listings.listings, 1)
}

func TestCreateListing_PerishableRequiresExpiry(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)

	service := NewListingService(listings, parties, nil)
	_, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Fresh Curd",
		ItemCategory: domain.CategoryPerishable,
		Quantity:     2,
	}, lister.ID, lister.Kind)
	assert.ErrorIs(t, err, domain.ErrExpiryDateRequired)
}

func TestCreateListing_NonPerishableDefaultsExpiry(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)

	service := NewListingService(listings, parties, nil)
	before := time.Now()
	result, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindMarketplace,
		ItemName:     "Canned Beans",
		ItemCategory: domain.CategoryNonPerishable,
		Quantity:     10,
		Price:        20,
	}, lister.ID, lister.Kind)
	require.NoError(t, err)

	expectedLow := before.Add(domain.NonPerishableShelfLife)
	expectedHigh := time.Now().Add(domain.NonPerishableShelfLife)
	assert.False(t, result.ExpiryDate.Before(expectedLow))
	assert.False(t, result.ExpiryDate.After(expectedHigh))
}

func TestCreateListing_Validation(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)
	service := NewListingService(listings, parties, nil)

	cases := []struct {
		name     string
		req      domain.CreateListingRequest
		expected error
	}{
		{
			name: "unknown kind",
			req: domain.CreateListingRequest{
				ListingKind: "Auction", ItemCategory: domain.CategoryNonPerishable, ItemName: "x", Quantity: 1,
			},
			expected: domain.ErrInvalidListingKind,
		},
		{
			name: "unknown category",
			req: domain.CreateListingRequest{
				ListingKind: domain.ListingKindDonation, ItemCategory: "Frozen", ItemName: "x", Quantity: 1,
			},
			expected: domain.ErrInvalidCategory,
		},
		{
			name: "zero quantity",
			req: domain.CreateListingRequest{
				ListingKind: domain.ListingKindDonation, ItemCategory: domain.CategoryNonPerishable, ItemName: "x",
			},
			expected: domain.ErrInvalidQuantity,
		},
		{
			name: "negative price",
			req: domain.CreateListingRequest{
				ListingKind: domain.ListingKindMarketplace, ItemCategory: domain.CategoryNonPerishable, ItemName: "x", Quantity: 1, Price: -1,
			},
			expected: domain.ErrInvalidPrice,
		},
		{
			name: "bad expiry format",
			req: domain.CreateListingRequest{
				ListingKind: domain.ListingKindDonation, ItemCategory: domain.CategoryPerishable, ItemName: "x", Quantity: 1, ExpiryDate: "tomorrow",
			},
			expected: domain.ErrInvalidExpiryDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateListing(context.Background(), tc.req, lister.ID, lister.Kind)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestCreateListing_UnknownLister(t *testing.T) {
	service := NewListingService(newFakeListingRepository(), newFakePartyRepository(), nil)

	_, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Bread",
		ItemCategory: domain.CategoryNonPerishable,
		Quantity:     1,
	}, uuid.New().String(), domain.RoleIndividual)
	assert.ErrorIs(t, err, domain.ErrListerNotFound)
}

func TestGetListingByID(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)
	service := NewListingService(listings, parties, nil)

	created, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Chapati",
		ItemCategory: domain.CategoryNonPerishable,
		Quantity:     8,
	}, lister.ID, lister.Kind)
	require.NoError(t, err)

	found, err := service.GetListingByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ItemName, found.ItemName)

	_, err = service.GetListingByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidListingID)

	_, err = service.GetListingByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDeleteListing(t *testing.T) {
	listings := newFakeListingRepository()
	parties := newFakePartyRepository()
	lister := newTestLister(parties)
	service := NewListingService(listings, parties, nil)

	created, err := service.CreateListing(context.Background(), domain.CreateListingRequest{
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Idli",
		ItemCategory: domain.CategoryNonPerishable,
		Quantity:     4,
	}, lister.ID, lister.Kind)
	require.NoError(t, err)

	require.NoError(t, service.DeleteListing(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteListing(context.Background(), created.ID), domain.ErrListingNotFound)
}
