package service

import (
    "context"
    "sync"

    "golang.org/x/time/rate"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/internal/upstream"
)

// ReactionState viewer 在单帖上的当前表态
type ReactionState struct {
    Kind   model.ReactionKind `json:"kind,omitempty"`
    Active bool               `json:"active"`
}

// ReactionStore 每帖每 viewer 至多一个表态。单一不变量由 API 强制：外部无法
// 直接改 map。条目进入可见窗口后按需水合，水合请求受限流器约束以限制扇出。
// 同帖写入严格串行：已有一次在途时后到的 React 被忽略（返回 ErrReactionInFlight）。
type ReactionStore struct {
    client   upstream.ReactionClient
    viewerID string
    limiter  *rate.Limiter

    mu       sync.Mutex
    current  map[string]model.ReactionKind
    hydrated map[string]struct{}
    inFlight map[string]struct{}
}

func NewReactionStore(client upstream.ReactionClient, viewerID string, limiter *rate.Limiter) *ReactionStore {
    if limiter == nil {
        limiter = rate.NewLimiter(rate.Limit(20), 20)
    }
    return &ReactionStore{
        client:   client,
        viewerID: viewerID,
        limiter:  limiter,
        current:  make(map[string]model.ReactionKind),
        hydrated: make(map[string]struct{}),
        inFlight: make(map[string]struct{}),
    }
}

// Hydrate 懒加载 viewer 在该帖上的表态；同一帖只拉一次
func (s *ReactionStore) Hydrate(ctx context.Context, postID string) error {
    s.mu.Lock()
    if _, ok := s.hydrated[postID]; ok {
        s.mu.Unlock()
        return nil
    }
    s.mu.Unlock()

    if err := s.limiter.Wait(ctx); err != nil {
        return err
    }
    kind, ok, err := s.client.Get(ctx, postID, s.viewerID)
    if err != nil {
        return err
    }

    s.mu.Lock()
    defer s.mu.Unlock()
    s.hydrated[postID] = struct{}{}
    if ok {
        s.current[postID] = kind
    }
    return nil
}

// Current 本地已知的表态状态（未水合时视为无表态）
func (s *ReactionStore) Current(postID string) ReactionState {
    s.mu.Lock()
    defer s.mu.Unlock()
    kind, ok := s.current[postID]
    return ReactionState{Kind: kind, Active: ok}
}

// React 表态状态机：当前等于 kind 则撤销（toggle-off），否则设置/替换。
// 每次调用恰好一次上游写（删除或 upsert）。计数不做乐观更新，由调用方
// 在写成功后重新拉取服务端聚合值。写失败时本地状态保持不变，可重试。
func (s *ReactionStore) React(ctx context.Context, postID string, kind model.ReactionKind) (ReactionState, error) {
    if kind == "" {
        kind = model.DefaultReaction
    }
    if !model.ValidReaction(kind) {
        return ReactionState{}, ErrInvalidReaction
    }
    if IsCampaignItem(postID) {
        return ReactionState{}, ErrNotReactable
    }

    s.mu.Lock()
    if _, busy := s.inFlight[postID]; busy {
        s.mu.Unlock()
        return ReactionState{}, ErrReactionInFlight
    }
    s.inFlight[postID] = struct{}{}
    s.mu.Unlock()
    defer func() {
        s.mu.Lock()
        delete(s.inFlight, postID)
        s.mu.Unlock()
    }()

    if err := s.Hydrate(ctx, postID); err != nil {
        return s.Current(postID), err
    }

    s.mu.Lock()
    prev, active := s.current[postID]
    s.mu.Unlock()

    if active && prev == kind {
        if err := s.client.Delete(ctx, postID, s.viewerID); err != nil {
            return ReactionState{Kind: prev, Active: true}, err
        }
        s.mu.Lock()
        delete(s.current, postID)
        s.mu.Unlock()
        return ReactionState{}, nil
    }

    if err := s.client.Put(ctx, postID, s.viewerID, kind); err != nil {
        return ReactionState{Kind: prev, Active: active}, err
    }
    s.mu.Lock()
    s.current[postID] = kind
    s.mu.Unlock()
    return ReactionState{Kind: kind, Active: true}, nil
}
