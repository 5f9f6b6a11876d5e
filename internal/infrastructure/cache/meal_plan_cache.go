package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const mealPlanKeyPrefix = "mealplan:"

// MealPlanCache stores generated meal plans keyed by the prompt that
// produced them.
type MealPlanCache struct {
	client *redis.Client
}

func NewMealPlanCache(client *redis.Client) *MealPlanCache {
	return &MealPlanCache{client: client}
}

const (
	modelField = "model"
	planField  = "plan"
)

// Get returns the cached plan and the model that wrote it. A key of another
// Redis type is reported as an error, which callers treat as a miss.
func (c *MealPlanCache) Get(ctx context.Context, prompt string) (string, string, bool, error) {
	fields, err := c.client.HGetAll(ctx, MealPlanKey(prompt)).Result()
	if err != nil {
		return "", "", false, err
	}
	plan, ok := fields[planField]
	if !ok {
		return "", "", false, nil
	}
	return fields[modelField], plan, true, nil
}

func (c *MealPlanCache) Set(ctx context.Context, prompt, model, plan string, ttl time.Duration) error {
	key := MealPlanKey(prompt)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, modelField, model, planField, plan)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// MealPlanKey hashes the prompt so patient text never appears in key names.
func MealPlanKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return mealPlanKeyPrefix + hex.EncodeToString(sum[:])
}
