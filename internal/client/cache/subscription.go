package cache

import (
	"context"
	"sync"
	"time"
)

// Poll periods used by the dashboard views
const (
	TranscriptionsPollInterval = 10 * time.Second
	HealthPollInterval         = 30 * time.Second
	WorkflowStatusPollInterval = 5 * time.Second
)

// SubscribeOptions configures a mounted subscriber
type SubscribeOptions struct {
	// PollInterval refetches unconditionally on this period; zero disables polling
	PollInterval time.Duration
}

// Subscription is a mounted reader of one key. It receives an Update after
// every fetch of the key until Unsubscribe is called.
type Subscription struct {
	cache   *Cache
	key     Key
	updates chan Update
	cancel  context.CancelFunc
	once    sync.Once
}

// Subscribe mounts a reader of key. The current value, if any, is delivered
// at once; a fetch starts when the key is empty or stale.
func (c *Cache) Subscribe(key Key, fetch Fetcher, opts SubscribeOptions) *Subscription {
	ctx, cancel := context.WithCancel(c.ctx)
	sub := &Subscription{
		cache:   c,
		key:     append(Key(nil), key...),
		updates: make(chan Update, 1),
		cancel:  cancel,
	}

	c.mu.Lock()
	e := c.entryLocked(key, fetch)
	e.subs[sub] = struct{}{}
	if e.hasValue {
		sub.deliver(Update{Key: e.key, Value: e.value, Err: e.err})
	}
	if !e.hasValue || c.expiredLocked(e) {
		c.refreshAsync(key)
	}
	if opts.PollInterval > 0 && c.ctx.Err() == nil {
		c.wg.Add(1)
		go c.poll(ctx, key, opts.PollInterval)
	}
	c.mu.Unlock()

	return sub
}

func (c *Cache) poll(ctx context.Context, key Key, interval time.Duration) {
	defer c.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = c.load(ctx, key)
		}
	}
}

// Updates returns the channel of fetch results. It holds at most the latest
// undelivered update and is closed by Unsubscribe.
func (s *Subscription) Updates() <-chan Update {
	return s.updates
}

// Key returns the subscribed key
func (s *Subscription) Key() Key {
	return s.key
}

// deliver replaces any pending update with u. Caller holds cache.mu.
func (s *Subscription) deliver(u Update) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- u
}

// Unsubscribe stops polling and closes Updates. It is safe to call twice.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()

		c := s.cache
		c.mu.Lock()
		if e, ok := c.entries[s.key.String()]; ok {
			delete(e.subs, s)
		}
		close(s.updates)
		c.mu.Unlock()
	})
}
