package repository

import (
	"sync"

	"github.com/oarkflow/xid/wuid"
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
)

// Gate reports whether mutations are currently authorized. The facade wires
// it to the persisted admin flag.
type Gate func() bool

// Repository is a typed CRUD facade over one collection key in the
// persistent store. Every mutation checks the gate first; reads are always
// permitted. On first use with no persisted collection it seeds itself from
// the caller-supplied default dataset.
//
// The read-all/mutate/write-all pattern has a narrow last-writer-wins window
// between views. That is accepted for a single human operator; do not add
// locking here.
type Repository[T contracts.Record] struct {
	store contracts.Store
	gate  Gate
	log   *zap.Logger
	key   string
	// prefix namespaces generated ids, e.g. "proj" -> "proj_<wuid>".
	prefix string
	seed   []T

	seedOnce sync.Once
}

func New[T contracts.Record](store contracts.Store, gate Gate, log *zap.Logger, key, prefix string, seed []T) *Repository[T] {
	return &Repository[T]{
		store:  store,
		gate:   gate,
		log:    log,
		key:    key,
		prefix: prefix,
		seed:   seed,
	}
}

// GetAll returns the collection in insertion order as stored. Absent or
// corrupt collections degrade to the seed dataset, which is persisted on the
// first read so later views observe the same records.
func (r *Repository[T]) GetAll() []T {
	var items []T
	if r.store.GetJSON(r.key, &items) {
		return items
	}
	r.seedOnce.Do(func() {
		if err := r.store.SetJSON(r.key, r.seed); err != nil {
			r.log.Warn("failed to persist seed collection", zap.String("key", r.key), zap.Error(err))
		}
	})
	return r.seed
}

// Add assigns a namespace-prefixed, time-based id with a random suffix and
// appends the record.
func (r *Repository[T]) Add(rec T) (T, error) {
	if !r.gate() {
		var zero T
		return zero, contracts.ErrUnauthorized
	}

	assignID(&rec, r.prefix+"_"+wuid.New().String())
	items := append(r.GetAll(), rec)
	if err := r.store.SetJSON(r.key, items); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update replaces the record at the matching id. A missing id is a silent
// no-op: the store is not written and no error is returned.
func (r *Repository[T]) Update(id string, rec T) error {
	if !r.gate() {
		return contracts.ErrUnauthorized
	}

	items := r.GetAll()
	for i := range items {
		if items[i].GetID() == id {
			assignID(&rec, id)
			items[i] = rec
			return r.store.SetJSON(r.key, items)
		}
	}
	return nil
}

// Delete removes the record by id; an absent id is a no-op.
func (r *Repository[T]) Delete(id string) error {
	if !r.gate() {
		return contracts.ErrUnauthorized
	}

	items := r.GetAll()
	filtered := items[:0:0]
	for _, item := range items {
		if item.GetID() != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return nil
	}
	return r.store.SetJSON(r.key, filtered)
}

// Key exposes the collection's storage key so the facade can match change
// notifications to the repositories they affect.
func (r *Repository[T]) Key() string { return r.key }

func assignID[T contracts.Record](rec *T, id string) {
	if setter, ok := any(rec).(interface{ SetID(string) }); ok {
		setter.SetID(id)
	}
}
