package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pricepilot/domain"

	"github.com/redis/go-redis/v9"
)

// DecisionCache keeps the latest pricing decision per (product, location)
// so report readers do not hit Postgres on every poll.
type DecisionCache struct {
	client *redis.Client
}

func NewDecisionCache(client *redis.Client) *DecisionCache {
	return &DecisionCache{
		client: client,
	}
}

func decisionKey(productID uint64, location string) string {
	return fmt.Sprintf("pricing:decision:%d:%s", productID, location)
}

func (c *DecisionCache) Store(ctx context.Context, rec domain.DecisionRecord, ttl time.Duration) error {
	jsonData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal decision: %w", err)
	}

	key := decisionKey(rec.ProductID, rec.Location)
	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store decision in Redis: %w", err)
	}

	return nil
}

// Latest returns nil without an error on a cache miss.
func (c *DecisionCache) Latest(ctx context.Context, productID uint64, location string) (*domain.DecisionRecord, error) {
	key := decisionKey(productID, location)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get decision from Redis: %w", err)
	}

	var rec domain.DecisionRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision: %w", err)
	}

	return &rec, nil
}
