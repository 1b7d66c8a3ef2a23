package contracts

// --- Persistent Store Interface ---

// Store is the persistent key/value table shared by every open view of the
// application instance. Each Set is a single atomic key replacement; callers
// must not assume read-modify-write is atomic across a Get and a Set.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// GetJSON decodes the value stored under key into dest. It reports false
	// when the key is absent or the stored bytes are malformed; the caller is
	// expected to fall back to its own default in that case. Corruption is
	// logged by the implementation, never propagated.
	GetJSON(key string, dest any) bool
	SetJSON(key string, value any) error

	Close() error
}

// Bus broadcasts "key changed" events to every other open view. Delivery is
// best-effort: a subscriber that falls behind loses events and relies on the
// periodic fallback poll to converge.
type Bus interface {
	Subscribe(viewID string) <-chan string
	Unsubscribe(viewID string)
	Publish(key string)
}

// Record is the shape every persisted entity must satisfy: a string id
// unique within its collection.
type Record interface {
	GetID() string
}
