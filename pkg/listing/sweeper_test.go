package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedExpiredListing(repo *fakeListingRepository, expiry time.Time) *entities.Listing {
	listing := &entities.Listing{
		ID:           uuid.New(),
		ListingKind:  domain.ListingKindDonation,
		ItemName:     "Leftover Pulao",
		ItemCategory: domain.CategoryPerishable,
		Quantity:     3,
		Status:       domain.ListingStatusNotAddressed,
		ExpiryDate:   expiry,
	}
	repo.listings[listing.ID.String()] = listing
	return listing
}

func TestSweep_RemovesExpiredOnly(t *testing.T) {
	repo := newFakeListingRepository()
	now := time.Now()
	expired := seedExpiredListing(repo, now.Add(-time.Hour))
	fresh := seedExpiredListing(repo, now.Add(time.Hour))

	sweeper := NewExpirySweeper(repo, time.Minute)
	deleted, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, deleted)
	assert.NotContains(t, repo.listings, expired.ID.String())
	assert.Contains(t, repo.listings, fresh.ID.String())
}

func TestSweep_ExpiryBoundaryIsInclusive(t *testing.T) {
	repo := newFakeListingRepository()
	now := time.Now()
	seedExpiredListing(repo, now)

	sweeper := NewExpirySweeper(repo, time.Minute)
	deleted, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestSweep_RepeatedSweepIsIdempotent(t *testing.T) {
	repo := newFakeListingRepository()
	now := time.Now()
	seedExpiredListing(repo, now.Add(-time.Hour))
	seedExpiredListing(repo, now.Add(-2*time.Hour))

	sweeper := NewExpirySweeper(repo, time.Minute)

	deleted, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	deleted, err = sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

// raceListingRepository serves the scan but reports every delete as already
// gone, like a listing removed by a concurrent actor between scan and delete.
type raceListingRepository struct {
	*fakeListingRepository
}

func (r *raceListingRepository) DeleteListing(_ context.Context, _ string) error {
	r.deleteCalls++
	return gorm.ErrRecordNotFound
}

func TestSweep_AlreadyDeletedIsTolerated(t *testing.T) {
	inner := newFakeListingRepository()
	now := time.Now()
	seedExpiredListing(inner, now.Add(-time.Hour))
	repo := &raceListingRepository{fakeListingRepository: inner}

	sweeper := NewExpirySweeper(repo, time.Minute)

	deleted, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, 1, repo.deleteCalls)

	// The gone listing counts as handled; the next sweep skips it entirely.
	deleted, err = sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, 1, repo.deleteCalls)
}

// flakyListingRepository fails a fixed number of deletes with a transient
// error before letting them through.
type flakyListingRepository struct {
	*fakeListingRepository
	failures int
}

func (r *flakyListingRepository) DeleteListing(ctx context.Context, id string) error {
	if r.failures > 0 {
		r.failures--
		r.deleteCalls++
		return errors.New("connection reset by peer")
	}
	return r.fakeListingRepository.DeleteListing(ctx, id)
}

func TestSweep_TransientDeleteFailureIsRetried(t *testing.T) {
	inner := newFakeListingRepository()
	now := time.Now()
	expired := seedExpiredListing(inner, now.Add(-time.Hour))
	repo := &flakyListingRepository{fakeListingRepository: inner, failures: 1}

	sweeper := NewExpirySweeper(repo, time.Minute)

	// The failed delete is not counted and the listing stays eligible.
	deleted, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Contains(t, inner.listings, expired.ID.String())

	// Next sweep retries and succeeds.
	deleted, err = sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.NotContains(t, inner.listings, expired.ID.String())
	assert.Equal(t, 2, repo.deleteCalls)
}

func TestSweep_EmptyRepository(t *testing.T) {
	sweeper := NewExpirySweeper(newFakeListingRepository(), time.Minute)
	deleted, err := sweeper.Sweep(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
