package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_detail/internal/adapters/observability"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/htmlgen"
)

// PublishService renders pages and keeps them in a PageStore.
type PublishService struct {
	pages *PageService
	store domain.PageStore
	ttl   time.Duration
}

func NewPublishService(p *PageService, s domain.PageStore, ttl time.Duration) *PublishService {
	return &PublishService{pages: p, store: s, ttl: ttl}
}

func HotelPageKey(id string) string { return "hotel-" + id }

// PublishHotel renders a stored hotel and publishes it under HotelPageKey.
// A missing hotel or mock data evicts any stale page before returning the error.
func (s *PublishService) PublishHotel(ctx context.Context, id string) (string, error) {
	key := HotelPageKey(id)
	r, err := s.pages.RenderHotel(ctx, id, htmlgen.LayoutFull)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.evict(ctx, key)
			observability.ObservePublish("missing")
		}
		return "", err
	}
	if r.Blocked() {
		s.evict(ctx, key)
		observability.ObservePublish("blocked")
		return "", fmt.Errorf("hotel %s: %w: %s", id, domain.ErrMockData, r.Decision.Message)
	}
	if err := s.store.Put(ctx, key, r.HTML, s.ttl); err != nil {
		observability.ObservePublish("error")
		return "", err
	}
	observability.ObservePublish("ok")
	return key, nil
}

// PublishDocument stores a generated document under a fresh key.
func (s *PublishService) PublishDocument(ctx context.Context, html string) (string, error) {
	key := uuid.NewString()
	if err := s.store.Put(ctx, key, html, s.ttl); err != nil {
		observability.ObservePublish("error")
		return "", err
	}
	observability.ObservePublish("ok")
	return key, nil
}

// PublishExternal stores author-supplied HTML after stripping script vectors.
func (s *PublishService) PublishExternal(ctx context.Context, html string) (string, error) {
	return s.PublishDocument(ctx, htmlgen.SafeHTML(html))
}

func (s *PublishService) Published(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, key)
}

func (s *PublishService) Unpublish(ctx context.Context, key string) error {
	return s.store.Del(ctx, key)
}

func (s *PublishService) evict(ctx context.Context, key string) {
	if err := s.store.Del(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("evict stale page failed")
	}
}

// Summary counts the outcomes of a batch publish.
type Summary struct {
	Published int `json:"published"`
	Blocked   int `json:"blocked"`
	Missing   int `json:"missing"`
	Failed    int `json:"failed"`
}

// PublishAll republishes every active hotel with at most workers in flight.
func (s *PublishService) PublishAll(ctx context.Context, hotels domain.HotelRepository, workers int) (Summary, error) {
	if workers <= 0 {
		workers = 1
	}
	active := true
	list, err := hotels.ListHotels(ctx, domain.ListFilter{Active: &active})
	if err != nil {
		return Summary{}, err
	}

	var (
		mu  sync.Mutex
		sum Summary
		wg  sync.WaitGroup
		sem = semaphore.NewWeighted(int64(workers))
	)
	for _, h := range list {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return sum, err
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			defer sem.Release(1)

			_, err := s.PublishHotel(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				sum.Published++
				log.Info().Str("id", id).Msg("publish ok")
			case errors.Is(err, domain.ErrMockData):
				sum.Blocked++
				log.Warn().Str("id", id).Err(err).Msg("publish blocked")
			case errors.Is(err, domain.ErrNotFound):
				sum.Missing++
				log.Warn().Str("id", id).Msg("hotel vanished before publish")
			default:
				sum.Failed++
				log.Warn().Str("id", id).Err(err).Msg("publish failed")
			}
		}(h.ID)
	}
	wg.Wait()
	return sum, nil
}
