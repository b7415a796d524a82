package cache

import (
	"context"
	"encoding/json"
	"time"

	"inkwell/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	postIndexKey = "posts:index"
	postIndexTTL = 30 * time.Second
)

// PostIndex caches the serialized front-page post listing. All operations
// are best-effort; a nil client disables the cache entirely.
type PostIndex struct {
	client *redis.Client
}

// NewPostIndex wraps the given Redis client. A nil client is valid and turns
// every method into a no-op.
func NewPostIndex(client *redis.Client) *PostIndex {
	return &PostIndex{client: client}
}

// Get returns the cached post listing, or (nil, false) on miss or when the
// cache is disabled.
func (p *PostIndex) Get(ctx context.Context) ([]*models.Post, bool) {
	if p == nil || p.client == nil {
		return nil, false
	}
	raw, err := p.client.Get(ctx, postIndexKey).Bytes()
	if err != nil {
		return nil, false
	}
	var posts []*models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// Set stores the post listing with a short TTL.
func (p *PostIndex) Set(ctx context.Context, posts []*models.Post) {
	if p == nil || p.client == nil {
		return
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = p.client.Set(ctx, postIndexKey, raw, postIndexTTL).Err()
}

// Invalidate drops the cached listing. Called after every post mutation.
func (p *PostIndex) Invalidate(ctx context.Context) {
	if p == nil || p.client == nil {
		return
	}
	_ = p.client.Del(ctx, postIndexKey).Err()
}
