package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the current value of a key from the API
type Fetcher func(ctx context.Context) (interface{}, error)

// Policy controls freshness and retries for one key family
type Policy struct {
	// FreshFor is how long a value is served without a background refresh.
	// Zero keeps values fresh until they are invalidated.
	FreshFor time.Duration
	// Retries is the number of extra attempts after a failed fetch
	Retries    int
	RetryDelay time.Duration
}

// Config configures a Cache
type Config struct {
	Default  Policy
	Families map[string]Policy
	Logger   *zap.Logger
}

// DefaultConfig mirrors the dashboard: configuration reads retry twice,
// everything else fails fast.
func DefaultConfig() Config {
	return Config{
		Families: map[string]Policy{
			"table-config":           {Retries: 2, RetryDelay: 500 * time.Millisecond},
			"transcription-settings": {Retries: 2, RetryDelay: 500 * time.Millisecond},
		},
	}
}

// Update is delivered to subscribers after every fetch of their key.
// On a failed refresh Value still holds the last good value.
type Update struct {
	Key   Key
	Value interface{}
	Err   error
}

type entry struct {
	key       Key
	value     interface{}
	hasValue  bool
	err       error
	stale     bool
	gen       uint64
	fetchedAt time.Time
	fetch     Fetcher
	subs      map[*Subscription]struct{}
}

// Cache is a keyed stale-while-revalidate store for API reads. Every key has
// at most one fetch in flight; concurrent readers share its result.
type Cache struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a cache. Close stops its background refreshes.
func New(cfg Config) *Cache {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		cfg:     cfg,
		logger:  logger.Named("cache"),
		now:     time.Now,
		entries: make(map[string]*entry),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c *Cache) policy(key Key) Policy {
	if p, ok := c.cfg.Families[key.Family()]; ok {
		return p
	}
	return c.cfg.Default
}

// entryLocked returns the entry for key, creating it. fetch replaces the
// stored fetcher when non-nil. Caller holds c.mu.
func (c *Cache) entryLocked(key Key, fetch Fetcher) *entry {
	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: append(Key(nil), key...), subs: make(map[*Subscription]struct{})}
		c.entries[id] = e
	}
	if fetch != nil {
		e.fetch = fetch
	}
	return e
}

// Read returns the cached value for key when there is one, refreshing it in
// the background if it is stale. Without a cached value it fetches and waits.
func (c *Cache) Read(ctx context.Context, key Key, fetch Fetcher) (interface{}, error) {
	c.mu.Lock()
	e := c.entryLocked(key, fetch)
	if e.hasValue {
		value := e.value
		if c.expiredLocked(e) {
			c.refreshAsync(key)
		}
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	return c.load(ctx, key)
}

// Peek returns the cached value without fetching
func (c *Cache) Peek(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok || !e.hasValue {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) expiredLocked(e *entry) bool {
	if e.stale {
		return true
	}
	fresh := c.policy(e.key).FreshFor
	return fresh > 0 && c.now().Sub(e.fetchedAt) > fresh
}

// Invalidate marks every key starting with prefix stale and refetches the
// ones that have subscribers. It returns the number of keys marked.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	marked := 0
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.stale = true
		e.gen++
		// a fetch already in flight may predate the change that caused this
		c.group.Forget(e.key.String())
		marked++
		if len(e.subs) > 0 {
			c.refreshAsync(e.key)
		}
	}
	c.logger.Debug("invalidated", zap.String("prefix", prefix.String()), zap.Int("keys", marked))
	return marked
}

// refreshAsync starts a background fetch tied to the cache lifetime.
// Caller holds c.mu.
func (c *Cache) refreshAsync(key Key) {
	if c.ctx.Err() != nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if _, err := c.load(c.ctx, key); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Debug("background refresh failed", zap.String("key", key.String()), zap.Error(err))
		}
	}()
}

// load fetches key through the singleflight group and publishes the result.
// The fetch itself runs under the cache lifetime; ctx only bounds the wait.
func (c *Cache) load(ctx context.Context, key Key) (interface{}, error) {
	id := key.String()
	ch := c.group.DoChan(id, func() (interface{}, error) {
		return c.fetchWithRetry(c.ctx, key)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetchWithRetry(ctx context.Context, key Key) (interface{}, error) {
	c.mu.Lock()
	e := c.entryLocked(key, nil)
	fetch := e.fetch
	gen := e.gen
	c.mu.Unlock()

	if fetch == nil {
		return nil, errors.New("cache: no fetcher registered for " + key.String())
	}

	p := c.policy(key)
	var (
		value interface{}
		err   error
	)
	for attempt := 0; attempt <= p.Retries; attempt++ {
		if attempt > 0 {
			if err := sleepWithContext(ctx, p.RetryDelay); err != nil {
				break
			}
		}
		value, err = fetch(ctx)
		if err == nil {
			break
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e.gen != gen {
		// invalidated while fetching; the newer fetch publishes
		return value, err
	}
	if err != nil {
		e.err = err
		c.publishLocked(e, Update{Key: e.key, Value: e.value, Err: err})
		return e.value, err
	}

	e.value = value
	e.hasValue = true
	e.err = nil
	e.stale = false
	e.fetchedAt = c.now()
	c.publishLocked(e, Update{Key: e.key, Value: value})
	return value, nil
}

// publishLocked delivers u to every subscriber of e, replacing any update
// the subscriber has not consumed yet. Caller holds c.mu.
func (c *Cache) publishLocked(e *entry, u Update) {
	for sub := range e.subs {
		sub.deliver(u)
	}
}

// Close stops polling and waits for background refreshes to finish
func (c *Cache) Close() {
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()
	c.wg.Wait()
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
