package repository

import (
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
)

// Singleton is the single-record counterpart of Repository, used for the
// personal-info record. Same gate, same forgiving reads.
type Singleton[T any] struct {
	store contracts.Store
	gate  Gate
	log   *zap.Logger
	key   string
	seed  T
}

func NewSingleton[T any](store contracts.Store, gate Gate, log *zap.Logger, key string, seed T) *Singleton[T] {
	return &Singleton[T]{store: store, gate: gate, log: log, key: key, seed: seed}
}

func (s *Singleton[T]) Get() T {
	var value T
	if s.store.GetJSON(s.key, &value) {
		return value
	}
	return s.seed
}

func (s *Singleton[T]) Set(value T) error {
	if !s.gate() {
		return contracts.ErrUnauthorized
	}
	return s.store.SetJSON(s.key, value)
}

func (s *Singleton[T]) Key() string { return s.key }
