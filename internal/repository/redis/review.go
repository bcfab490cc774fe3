package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gordonblake/moviereviews/domain"
)

const (
	KeyReview = "review:%d"

	reviewTTL = 10 * time.Minute
)

type reviewCache struct {
	client *redis.Client
}

var _ domain.ReviewCache = (*reviewCache)(nil)

func NewReviewCache(client *redis.Client) *reviewCache {
	return &reviewCache{
		client,
	}
}

func (c *reviewCache) GetReview(ctx context.Context, id int64) (res domain.Review, err error) {
	key := fmt.Sprintf(KeyReview, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Review{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Review{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Review{}, err
	}
	return
}

func (c *reviewCache) SetReview(ctx context.Context, r *domain.Review) (err error) {
	key := fmt.Sprintf(KeyReview, r.ID)
	data, err := json.Marshal(r)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, reviewTTL).Err()
	return
}

func (c *reviewCache) DeleteReview(ctx context.Context, id int64) error {
	key := fmt.Sprintf(KeyReview, id)
	return c.client.Del(ctx, key).Err()
}
