package listing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// ExpirySweeper periodically removes listings whose expiry has passed. It
// replaces the old behavior where connected clients polled and issued the
// deletes themselves; the server now owns the listing lifecycle.
type ExpirySweeper struct {
	listingRepository ListingRepository
	interval          time.Duration

	mu    sync.Mutex
	swept map[string]struct{}
}

func NewExpirySweeper(listingRepository ListingRepository, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		listingRepository: listingRepository,
		interval:          interval,
		swept:             make(map[string]struct{}),
	}
}

// Sweep deletes every known listing with expiry <= now and returns how many
// were removed. A listing handled once, removed here or already deleted by
// someone else, is never attempted again by this sweeper instance; an
// already-gone listing is a logged no-op. A delete that fails for any other
// reason is not marked handled and is retried on the next sweep. The swept
// set is process-local, so after a restart re-attempting an already gone
// listing is expected and harmless.
func (s *ExpirySweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.listingRepository.GetExpiredListings(ctx, now)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, listing := range expired {
		id := listing.ID.String()

		s.mu.Lock()
		_, already := s.swept[id]
		s.mu.Unlock()
		if already {
			continue
		}

		if err := s.listingRepository.DeleteListing(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Deleted by a concurrent actor between scan and delete.
				s.markSwept(id)
				continue
			}
			log.Errorf("expiry sweep: failed to delete listing %s: %v", id, err)
			continue
		}

		s.markSwept(id)
		deleted++
		log.Infof("expiry sweep: removed expired listing %s (%s)", id, listing.ItemName)
	}

	return deleted, nil
}

func (s *ExpirySweeper) markSwept(id string) {
	s.mu.Lock()
	s.swept[id] = struct{}{}
	s.mu.Unlock()
}

// Start runs the sweep on a fixed interval until ctx is cancelled.
func (s *ExpirySweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Sweep(ctx, time.Now()); err != nil {
					log.Errorf("expiry sweep failed: %v", err)
				}
			}
		}
	}()
}
