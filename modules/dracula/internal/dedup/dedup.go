package dedup

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const DefaultTTL = time.Hour

// Cache remembers fully processed transactions for a limited time.
// Entries are only ever written after a successful run, so an absent
// entry never means the transaction failed.
type Cache struct {
	entries *expirable.LRU[string, struct{}]
	ttl     time.Duration
}

// New returns an unbounded cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: expirable.NewLRU[string, struct{}](0, nil, ttl),
		ttl:     ttl,
	}
}

func (c *Cache) IsProcessed(txid string) bool {
	// Get, unlike Contains, ignores entries that expired but were not purged yet.
	_, ok := c.entries.Get(txid)
	return ok
}

func (c *Cache) MarkProcessed(txid string) {
	c.entries.Add(txid, struct{}{})
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}
