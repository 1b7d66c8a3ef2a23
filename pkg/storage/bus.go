package storage

import "sync"

const subscriberBuffer = 16

// ChangeBus fans key-change events out to every subscribed view. Publishing
// never blocks: a subscriber whose buffer is full loses the event and is
// caught up by the fallback poll instead.
type ChangeBus struct {
	subs map[string]chan string
	mu   sync.RWMutex
}

func NewChangeBus() *ChangeBus {
	return &ChangeBus{subs: make(map[string]chan string)}
}

func (b *ChangeBus) Subscribe(viewID string) <-chan string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, exists := b.subs[viewID]; exists {
		return ch
	}
	ch := make(chan string, subscriberBuffer)
	b.subs[viewID] = ch
	return ch
}

func (b *ChangeBus) Unsubscribe(viewID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, exists := b.subs[viewID]; exists {
		close(ch)
		delete(b.subs, viewID)
	}
}

func (b *ChangeBus) Publish(key string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- key:
		default:
		}
	}
}
