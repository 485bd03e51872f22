package stream

import (
	"sync"

	"langton/pkg/api"
)

// subscriberBuffer is how many messages a slow viewer may lag behind before
// frames are dropped for it.
const subscriberBuffer = 256

// Broadcaster fans server messages out to viewer channels. Viewers whose
// buffer was full when a message was dropped are remembered until
// TakeDropped collects them.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[string]chan api.ServerMessage
	dropped     map[string]bool
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
		dropped:     make(map[string]bool),
	}
}

// Register creates the channel for a viewer. A previous channel under the
// same id is closed.
func (b *Broadcaster) Register(id string) <-chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}
	ch := make(chan api.ServerMessage, subscriberBuffer)
	b.subscribers[id] = ch
	delete(b.dropped, id)
	return ch
}

// Unregister closes and forgets the viewer channel.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	delete(b.dropped, id)
}

// SendTo delivers msg to one viewer. It reports false when the viewer is gone
// or its buffer is full.
func (b *Broadcaster) SendTo(id string, msg api.ServerMessage) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	return b.offer(id, ch, msg)
}

// Broadcast delivers msg to every viewer, skipping those that are full.
func (b *Broadcaster) Broadcast(msg api.ServerMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		b.offer(id, ch, msg)
	}
}

func (b *Broadcaster) offer(id string, ch chan api.ServerMessage, msg api.ServerMessage) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped[id] = true
		return false
	}
}

// TakeDropped returns the viewers that lost a message since the last call
// and forgets them.
func (b *Broadcaster) TakeDropped() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.dropped) == 0 {
		return nil
	}
	ids := make([]string, 0, len(b.dropped))
	for id := range b.dropped {
		ids = append(ids, id)
	}
	clear(b.dropped)
	return ids
}

// SubscriberCount returns the number of connected viewers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
