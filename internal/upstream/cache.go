package upstream

import (
    "context"
    "encoding/json"
    "fmt"
    "sync/atomic"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/wing-feed/internal/model"
)

// FeedSource is what the composer consumes: both raw halves of a wing's feed.
type FeedSource interface {
    PostsForWing(ctx context.Context, wingID string) ([]model.Post, error)
    CampaignsForWing(ctx context.Context, wingID string) ([]model.Campaign, error)
    // Invalidate drops cached snapshots so a forced reload hits the upstream.
    Invalidate(ctx context.Context, wingID string)
}

// CachedFeedSource is a read-through cache over the post/campaign clients.
// Full-list snapshots are small (one wing's feed), so whole-list JSON payloads
// with a short TTL keep refetch cost bounded without inventing persistence.
type CachedFeedSource struct {
    posts     PostClient
    campaigns CampaignClient
    cache     *redis.Client
    ttl       time.Duration

    hits   atomic.Int64
    misses atomic.Int64
}

// NewFeedSource builds the source; cache may be nil, which disables caching.
func NewFeedSource(posts PostClient, campaigns CampaignClient, cache *redis.Client, ttl time.Duration) *CachedFeedSource {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &CachedFeedSource{posts: posts, campaigns: campaigns, cache: cache, ttl: ttl}
}

func postsKey(wingID string) string     { return fmt.Sprintf("wingfeed:posts:%s", wingID) }
func campaignsKey(wingID string) string { return fmt.Sprintf("wingfeed:campaigns:%s", wingID) }

func (s *CachedFeedSource) PostsForWing(ctx context.Context, wingID string) ([]model.Post, error) {
    var out []model.Post
    ok, err := s.lookup(ctx, postsKey(wingID), &out)
    if err == nil && ok {
        return out, nil
    }
    out, err = s.posts.PostsForWing(ctx, wingID)
    if err != nil {
        return nil, err
    }
    s.store(ctx, postsKey(wingID), out)
    return out, nil
}

func (s *CachedFeedSource) CampaignsForWing(ctx context.Context, wingID string) ([]model.Campaign, error) {
    var out []model.Campaign
    ok, err := s.lookup(ctx, campaignsKey(wingID), &out)
    if err == nil && ok {
        return out, nil
    }
    out, err = s.campaigns.ApprovedForWing(ctx, wingID)
    if err != nil {
        return nil, err
    }
    s.store(ctx, campaignsKey(wingID), out)
    return out, nil
}

func (s *CachedFeedSource) Invalidate(ctx context.Context, wingID string) {
    if s.cache == nil {
        return
    }
    pipe := s.cache.Pipeline()
    pipe.Del(ctx, postsKey(wingID))
    pipe.Del(ctx, campaignsKey(wingID))
    _, _ = pipe.Exec(ctx)
}

func (s *CachedFeedSource) lookup(ctx context.Context, key string, out interface{}) (bool, error) {
    if s.cache == nil {
        return false, nil
    }
    data, err := s.cache.Get(ctx, key).Bytes()
    if err != nil {
        s.misses.Add(1)
        return false, nil // treat cache errors as misses
    }
    if uErr := json.Unmarshal(data, out); uErr != nil {
        s.misses.Add(1)
        return false, nil
    }
    s.hits.Add(1)
    return true, nil
}

func (s *CachedFeedSource) store(ctx context.Context, key string, val interface{}) {
    if s.cache == nil {
        return
    }
    if payload, err := json.Marshal(val); err == nil {
        _ = s.cache.Set(ctx, key, payload, s.ttl).Err()
    }
}

// Counters reports cache effectiveness during a run.
type Counters struct {
    Hits   int64
    Misses int64
}

func (s *CachedFeedSource) Counters() Counters {
    return Counters{Hits: s.hits.Load(), Misses: s.misses.Load()}
}
