package service

import (
    "context"
    "sync"
    "time"

    "go.uber.org/zap"

    "github.com/d60-Lab/wing-feed/pkg/logger"
)

// Registry 按 (viewer, wing) 持有 feed 视图实例，闲置超时后淘汰。
// 同一 viewer 切换 wing 会得到新的视图，旧视图上的在途操作写不进新视图。
type Registry struct {
    mu    sync.Mutex
    views map[string]*View
    ttl   time.Duration
    deps  Deps
    cfg   ViewConfig
}

func NewRegistry(deps Deps, cfg ViewConfig, ttl time.Duration) *Registry {
    if ttl <= 0 {
        ttl = 30 * time.Minute
    }
    return &Registry{views: make(map[string]*View), ttl: ttl, deps: deps, cfg: cfg}
}

func viewKey(viewerID, wingID string) string { return viewerID + "|" + wingID }

// Get 取出或新建视图；新建时做首次 Reload
func (r *Registry) Get(ctx context.Context, viewerID, wingID string) (*View, error) {
    r.mu.Lock()
    v, ok := r.views[viewKey(viewerID, wingID)]
    if !ok {
        v = NewView(viewerID, wingID, r.deps, r.cfg)
        r.views[viewKey(viewerID, wingID)] = v
    }
    r.mu.Unlock()

    if !ok {
        if err := v.Reload(ctx, false); err != nil {
            r.mu.Lock()
            delete(r.views, viewKey(viewerID, wingID))
            r.mu.Unlock()
            return nil, err
        }
    }
    return v, nil
}

// Start 启动闲置淘汰循环；返回停止函数
func (r *Registry) Start(interval time.Duration) func(context.Context) error {
    if interval <= 0 {
        interval = time.Minute
    }
    stop := make(chan struct{})
    go func() {
        ticker := time.NewTicker(interval)
        defer ticker.Stop()
        for {
            select {
            case <-stop:
                return
            case <-ticker.C:
                r.evict()
            }
        }
    }()
    return func(ctx context.Context) error { close(stop); return nil }
}

func (r *Registry) evict() {
    r.mu.Lock()
    defer r.mu.Unlock()
    for key, v := range r.views {
        if v.IdleSince() > r.ttl {
            delete(r.views, key)
            logger.Debug("evict idle feed view", zap.String("key", key))
        }
    }
}

// Len 当前视图数（测试/指标用）
func (r *Registry) Len() int {
    r.mu.Lock()
    defer r.mu.Unlock()
    return len(r.views)
}
