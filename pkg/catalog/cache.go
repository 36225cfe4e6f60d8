package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

type localEntry struct {
	expires time.Time
	data    []byte
}

// FeedCache keeps category and brand feed snapshots in redis, fronted by a
// short lived in-process map so repeated sidebar renders within a navigation
// do not touch the network at all.
type FeedCache struct {
	client *redis.Client
	ctx    context.Context

	mu    sync.Mutex
	local map[string]localEntry
}

func NewFeedCache(addr, password string, db int) *FeedCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &FeedCache{
		client: rdb,
		ctx:    context.Background(),
		local:  make(map[string]localEntry),
	}
}

func (c *FeedCache) Get(key string, out any) error {
	c.mu.Lock()
	entry, found := c.local[key]
	if found && time.Now().Before(entry.expires) {
		c.mu.Unlock()
		cacheHits.Inc()
		return sonic.Unmarshal(entry.data, out)
	}
	if found {
		delete(c.local, key)
	}
	c.mu.Unlock()

	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		cacheMisses.Inc()
		return err
	}
	if err = sonic.Unmarshal(data, out); err != nil {
		return err
	}
	cacheHits.Inc()
	c.mu.Lock()
	c.local[key] = localEntry{expires: time.Now().Add(time.Minute), data: data}
	c.mu.Unlock()
	return nil
}

func (c *FeedCache) Set(key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.local[key] = localEntry{expires: time.Now().Add(expiration), data: data}
	c.mu.Unlock()
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

func (c *FeedCache) Close() {
	c.client.Close()
}
