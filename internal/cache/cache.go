package cache

import (
	"sync"
	"time"
)

// Cache is a small TTL key/value store. The listing view uses it to keep
// fetched assets around between interactions.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry

	ttl    time.Duration
	ticker *time.Ticker
	stop   chan struct{}
	now    func() time.Time
}

type entry struct {
	v   any
	exp time.Time
}

type Option func(*Cache)

// WithTTL expires entries after ttl and starts a janitor that sweeps them.
func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }

func New(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stop)
}

func (c *Cache) Put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{v: v}
	if c.ttl > 0 {
		e.exp = c.now().Add(c.ttl)
	}
	c.data[key] = e
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.exp.IsZero() && c.now().After(e.exp) {
		c.Delete(key)
		return nil, false
	}
	return e.v, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	now := c.now()
	for _, e := range c.data {
		if e.exp.IsZero() || now.Before(e.exp) {
			n++
		}
	}
	return n
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if !e.exp.IsZero() && now.After(e.exp) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}
