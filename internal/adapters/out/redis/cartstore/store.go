// Package cartstore implements the cart storage port on Redis.
//
// Carts live in shared storage so that any engine instance serving a
// customer sees the same cart. Each cart is a single JSON value keyed by
// customer ID with a sliding TTL; abandoned carts expire on their own.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
)

// DefaultCartTTL is how long an untouched cart survives before Redis
// evicts it.
const DefaultCartTTL = 24 * time.Hour

// RedisCartStore implements ports.CartStore on a Redis client.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store with the default cart TTL.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return NewRedisCartStoreWithTTL(client, DefaultCartTTL)
}

// NewRedisCartStoreWithTTL creates a cart store with a custom TTL.
// A non-positive ttl stores carts without expiry.
func NewRedisCartStoreWithTTL(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

// cartLineDTO is the stored JSON shape of one cart line.
type cartLineDTO struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// Get returns the customer's cart lines, empty when no cart exists.
func (s *RedisCartStore) Get(ctx context.Context, customerID kernel.UUID) ([]ports.CartLine, error) {
	raw, err := s.client.Get(ctx, cartKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var dtos []cartLineDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]ports.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		dishID, err := kernel.UUIDFromString(dto.DishID)
		if err != nil {
			return nil, fmt.Errorf("decode cart: %w", err)
		}
		lines = append(lines, ports.CartLine{DishID: dishID, Quantity: dto.Quantity})
	}
	return lines, nil
}

// Put replaces the customer's cart lines and refreshes the TTL.
// Storing an empty slice clears the cart instead.
func (s *RedisCartStore) Put(ctx context.Context, customerID kernel.UUID, lines []ports.CartLine) error {
	if len(lines) == 0 {
		return s.Clear(ctx, customerID)
	}

	dtos := make([]cartLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, cartLineDTO{DishID: line.DishID.String(), Quantity: line.Quantity})
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err = s.client.Set(ctx, cartKey(customerID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put cart: %w", err)
	}
	return nil
}

// Clear removes the customer's cart. Clearing an absent cart is a no-op.
func (s *RedisCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func cartKey(customerID kernel.UUID) string {
	return "cart:" + customerID.String()
}
