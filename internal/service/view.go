package service

import (
    "context"
    "sync"
    "sync/atomic"
    "time"

    "go.uber.org/zap"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/internal/upstream"
    "github.com/d60-Lab/wing-feed/pkg/logger"
)

// ViewConfig 单个 feed 视图的行为参数
type ViewConfig struct {
    Increment      int
    AdvanceLatency time.Duration
    HydrateRate    rate.Limit
    HydrateBurst   int
}

// Deps 视图依赖的上游协作方
type Deps struct {
    Source    upstream.FeedSource
    Posts     upstream.PostClient
    Reactions upstream.ReactionClient
    Comments  upstream.CommentClient
}

// snapshot 一次 Reload 产出的不可变快照及其派生状态。
// Reload 整体换新：旧快照上未完成的异步结果只会写进旧对象，天然与新状态隔离。
type snapshot struct {
    epoch     uint64
    composed  []model.FeedItem
    index     map[string]int
    window    *Window
    trigger   *SentinelTrigger
    reactions *ReactionStore
    threads   *ThreadStore

    countsMu sync.Mutex
    counts   map[string]itemCounts // 服务端计数的刷新覆盖层
}

type itemCounts struct {
    reactions int
    comments  int
}

// View 单个 (viewer, wing) 的 feed 视图实例，composed/revealed 的唯一所有者
type View struct {
    viewerID string
    wingID   string
    deps     Deps
    cfg      ViewConfig

    epoch      atomic.Uint64
    mu         sync.Mutex
    snap       *snapshot
    lastAccess atomic.Int64
}

func NewView(viewerID, wingID string, deps Deps, cfg ViewConfig) *View {
    v := &View{viewerID: viewerID, wingID: wingID, deps: deps, cfg: cfg}
    v.Touch()
    return v
}

func (v *View) WingID() string   { return v.wingID }
func (v *View) ViewerID() string { return v.viewerID }

// Touch 更新活跃时间（注册表淘汰用）
func (v *View) Touch() { v.lastAccess.Store(time.Now().UnixNano()) }

// IdleSince 距上次访问的时长
func (v *View) IdleSince() time.Duration {
    return time.Since(time.Unix(0, v.lastAccess.Load()))
}

func (v *View) current() *snapshot {
    v.mu.Lock()
    defer v.mu.Unlock()
    return v.snap
}

// Reload 重新拉取两路原始记录并重建快照；切换 wing 或显式刷新时调用。
// 并发 Reload 以 epoch 裁决：晚到的构建若已被更新的 epoch 超越则丢弃。
func (v *View) Reload(ctx context.Context, force bool) error {
    epoch := v.epoch.Add(1)
    if force {
        v.deps.Source.Invalidate(ctx, v.wingID)
    }

    posts, err := v.deps.Source.PostsForWing(ctx, v.wingID)
    if err != nil {
        return err
    }
    campaigns, err := v.deps.Source.CampaignsForWing(ctx, v.wingID)
    if err != nil {
        return err
    }

    composed := Compose(NormalizePosts(posts), NormalizeCampaigns(campaigns))
    index := make(map[string]int, len(composed))
    for i, item := range composed {
        index[item.ID] = i
    }

    limiter := rate.NewLimiter(v.cfg.HydrateRate, v.cfg.HydrateBurst)
    if v.cfg.HydrateRate <= 0 {
        limiter = rate.NewLimiter(rate.Limit(20), 20)
    }
    s := &snapshot{
        epoch:     epoch,
        composed:  composed,
        index:     index,
        window:    NewWindow(v.cfg.Increment, v.cfg.AdvanceLatency),
        reactions: NewReactionStore(v.deps.Reactions, v.viewerID, limiter),
        threads:   NewThreadStore(v.deps.Comments, v.viewerID),
        counts:    make(map[string]itemCounts),
    }
    s.window.Initialize(composed)
    s.trigger = NewSentinelTrigger(s.window.Advance)

    v.mu.Lock()
    defer v.mu.Unlock()
    if v.epoch.Load() != epoch {
        // 更新的 Reload 已经接管
        return ErrStaleContext
    }
    v.snap = s
    return nil
}

// VisibleItem 可见条目 = 不可变快照 + viewer 自己的表态状态
type VisibleItem struct {
    model.FeedItem
    ViewerReaction ReactionState `json:"viewer_reaction"`
}

// FeedPage 当前揭示窗口
type FeedPage struct {
    Items    []VisibleItem `json:"items"`
    Revealed int           `json:"revealed"`
    Total    int           `json:"total"`
    HasMore  bool          `json:"has_more"`
}

// Feed 返回当前窗口。帖子条目进入窗口时懒水合 viewer 表态（失败仅告警，
// 不阻塞渲染）；可见集合已重绘，哨兵触发器重新布防。
func (v *View) Feed(ctx context.Context) (FeedPage, error) {
    v.Touch()
    s := v.current()
    if s == nil {
        return FeedPage{}, ErrStaleContext
    }

    visible := s.window.Visible()
    items := make([]VisibleItem, 0, len(visible))
    for _, item := range visible {
        if item.Kind == model.KindPost {
            if err := s.reactions.Hydrate(ctx, item.ID); err != nil {
                logger.Warn("reaction hydrate failed", zap.String("post", item.ID), zap.Error(err))
            }
        }
        items = append(items, VisibleItem{
            FeedItem:       s.applyCounts(item),
            ViewerReaction: s.reactions.Current(item.ID),
        })
    }
    s.trigger.Rebind()

    return FeedPage{
        Items:    items,
        Revealed: s.window.Revealed(),
        Total:    s.window.Total(),
        HasMore:  s.window.HasMore(),
    }, nil
}

// Sentinel 哨兵可见信号，返回是否触发了一次揭示
func (v *View) Sentinel() bool {
    v.Touch()
    s := v.current()
    if s == nil {
        return false
    }
    return s.trigger.OnVisible()
}

// React 表态并在写成功后重取服务端计数（不做乐观计数）。
// 快照在途中被重载时结果静默丢弃并返回 ErrStaleContext。
func (v *View) React(ctx context.Context, postID string, kind model.ReactionKind) (ReactionState, error) {
    v.Touch()
    s := v.current()
    if s == nil {
        return ReactionState{}, ErrStaleContext
    }
    if _, ok := s.index[postID]; !ok {
        return ReactionState{}, ErrUnknownItem
    }

    state, err := s.reactions.React(ctx, postID, kind)
    if err != nil {
        return state, err
    }
    if v.current() != s {
        return state, ErrStaleContext
    }
    v.refreshCounts(ctx, s, postID)
    return state, nil
}

// Comments 展开并返回两层评论树
func (v *View) Comments(ctx context.Context, postID string, force bool) ([]model.Comment, error) {
    v.Touch()
    s := v.current()
    if s == nil {
        return nil, ErrStaleContext
    }
    if _, ok := s.index[postID]; !ok {
        return nil, ErrUnknownItem
    }
    thread, err := s.threads.LoadThread(ctx, postID, force)
    if err != nil {
        return nil, err
    }
    s.threads.Expand(postID)
    if v.current() != s {
        return nil, ErrStaleContext
    }
    return thread, nil
}

// SubmitComment 提交评论/回复并重载线程，随后刷新该帖计数
func (v *View) SubmitComment(ctx context.Context, postID, content, parentID string) ([]model.Comment, error) {
    v.Touch()
    s := v.current()
    if s == nil {
        return nil, ErrStaleContext
    }
    if _, ok := s.index[postID]; !ok {
        return nil, ErrUnknownItem
    }
    thread, err := s.threads.Submit(ctx, postID, content, parentID)
    if err != nil {
        return nil, err
    }
    if v.current() != s {
        return nil, ErrStaleContext
    }
    v.refreshCounts(ctx, s, postID)
    return thread, nil
}

// Item 按 id 取当前快照中的条目（分享入口用）
func (v *View) Item(itemID string) (model.FeedItem, error) {
    s := v.current()
    if s == nil {
        return model.FeedItem{}, ErrStaleContext
    }
    i, ok := s.index[itemID]
    if !ok {
        return model.FeedItem{}, ErrUnknownItem
    }
    return s.applyCounts(s.composed[i]), nil
}

// Search 全量快照内搜索（与窗口无关）
func (v *View) Search(query string) []model.FeedItem {
    v.Touch()
    s := v.current()
    if s == nil {
        return nil
    }
    return SearchFeed(s.composed, query)
}

// refreshCounts 互动写成功后重取单帖，保持与服务端聚合一致
func (v *View) refreshCounts(ctx context.Context, s *snapshot, postID string) {
    p, err := v.deps.Posts.Post(ctx, postID)
    if err != nil {
        logger.Warn("count refresh failed", zap.String("post", postID), zap.Error(err))
        return
    }
    if v.current() != s {
        return // 过期快照，丢弃
    }
    s.countsMu.Lock()
    s.counts[postID] = itemCounts{reactions: p.ReactionCount, comments: p.CommentCount}
    s.countsMu.Unlock()
}

// applyCounts 把刷新过的服务端计数覆盖到快照条目上
func (s *snapshot) applyCounts(item model.FeedItem) model.FeedItem {
    s.countsMu.Lock()
    c, ok := s.counts[item.ID]
    s.countsMu.Unlock()
    if ok {
        item.ReactionCount = c.reactions
        item.CommentCount = c.comments
    }
    return item
}
