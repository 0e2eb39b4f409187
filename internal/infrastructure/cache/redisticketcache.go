package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketapp/internal/domain/ticket"
)

const (
	ticketKeyPrefix = "ticket:id:"
	ownerKeyPrefix  = "ticket:owner:"
	ticketTTLJitter = 2 * time.Minute // anti-stampede
)

// RedisTicketCache implements the ticket cache on Redis with JSON values.
// Both keyspaces share one TTL; a small jitter spreads expirations.
type RedisTicketCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTicketCache(client *redis.Client, ttl time.Duration) *RedisTicketCache {
	return &RedisTicketCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisTicketCache) idKey(ticketID uint) string {
	return fmt.Sprintf("%s%d", ticketKeyPrefix, ticketID)
}

func (c *RedisTicketCache) ownerKey(createdBy string) string {
	return ownerKeyPrefix + createdBy
}

func (c *RedisTicketCache) ttlWithJitter() time.Duration {
	if c.ttl == 0 {
		return 0
	}
	return c.ttl + rand.N(ticketTTLJitter)
}

func (c *RedisTicketCache) GetByID(ctx context.Context, ticketID uint) (*ticket.Snapshot, error) {
	data, err := c.client.Get(ctx, c.idKey(ticketID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get ticket from cache: %w", err)
	}

	var s ticket.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode cached ticket: %w", err)
	}
	return &s, nil
}

func (c *RedisTicketCache) SetByID(ctx context.Context, ticketID uint, s *ticket.Snapshot) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode ticket for cache: %w", err)
	}

	if err := c.client.Set(ctx, c.idKey(ticketID), data, c.ttlWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to cache ticket: %w", err)
	}
	return nil
}

func (c *RedisTicketCache) EvictByID(ctx context.Context, ticketID uint) error {
	if err := c.client.Del(ctx, c.idKey(ticketID)).Err(); err != nil {
		return fmt.Errorf("failed to evict ticket from cache: %w", err)
	}
	return nil
}

func (c *RedisTicketCache) GetByCreator(ctx context.Context, createdBy string) ([]ticket.Snapshot, error) {
	data, err := c.client.Get(ctx, c.ownerKey(createdBy)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get ticket list from cache: %w", err)
	}

	list := []ticket.Snapshot{}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode cached ticket list: %w", err)
	}
	return list, nil
}

func (c *RedisTicketCache) SetByCreator(ctx context.Context, createdBy string, list []ticket.Snapshot) error {
	if list == nil {
		list = []ticket.Snapshot{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode ticket list for cache: %w", err)
	}

	if err := c.client.Set(ctx, c.ownerKey(createdBy), data, c.ttlWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to cache ticket list: %w", err)
	}
	return nil
}

func (c *RedisTicketCache) EvictByCreator(ctx context.Context, createdBy string) error {
	if err := c.client.Del(ctx, c.ownerKey(createdBy)).Err(); err != nil {
		return fmt.Errorf("failed to evict ticket list from cache: %w", err)
	}
	return nil
}
