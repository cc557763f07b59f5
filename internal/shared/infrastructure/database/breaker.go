package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker/v2"
)

// ErrStoreUnavailable is returned while the breaker is open.
var ErrStoreUnavailable = errors.New("store unavailable: circuit open")

// BreakerStore guards a remote store with a circuit breaker so repeated
// connection failures fail fast instead of waiting on timeouts.
type BreakerStore struct {
	inner   KeyValueStore
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps inner. A nil logger uses slog.Default.
func NewBreakerStore(inner KeyValueStore, cfg BreakerConfig, logger *slog.Logger) *BreakerStore {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        "store." + inner.Driver().String(),
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A missing key is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrKeyNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerStore{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (s *BreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := s.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, s.inner.Driver())
	}
	return result, err
}

// Get reads through the breaker.
func (s *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.execute(func() (any, error) {
		return s.inner.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	value, _ := result.([]byte)
	return value, nil
}

// Set writes through the breaker.
func (s *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.inner.Set(ctx, key, value)
	})
	return err
}

// Delete removes through the breaker.
func (s *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.inner.Delete(ctx, key)
	})
	return err
}

// State returns the breaker state name.
func (s *BreakerStore) State() string {
	return s.breaker.State().String()
}

// Driver returns the wrapped store's driver.
func (s *BreakerStore) Driver() Driver {
	return s.inner.Driver()
}

// Close closes the wrapped store.
func (s *BreakerStore) Close() error {
	return s.inner.Close()
}
