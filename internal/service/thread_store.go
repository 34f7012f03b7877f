package service

import (
    "context"
    "strings"
    "sync"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/internal/upstream"
)

// ThreadStore 每帖的两层评论树，首次展开时懒加载。折叠不丢弃已拉取的评论，
// 再次展开不重拉（除非 force）。提交成功后整树重载，不做乐观追加。
type ThreadStore struct {
    client   upstream.CommentClient
    viewerID string

    mu       sync.Mutex
    threads  map[string][]model.Comment
    expanded map[string]bool
}

func NewThreadStore(client upstream.CommentClient, viewerID string) *ThreadStore {
    return &ThreadStore{
        client:   client,
        viewerID: viewerID,
        threads:  make(map[string][]model.Comment),
        expanded: make(map[string]bool),
    }
}

// LoadThread 拉取两层评论树；已缓存且非 force 时直接返回缓存
func (s *ThreadStore) LoadThread(ctx context.Context, postID string, force bool) ([]model.Comment, error) {
    if IsCampaignItem(postID) {
        return nil, ErrNotReactable
    }
    s.mu.Lock()
    cached, ok := s.threads[postID]
    s.mu.Unlock()
    if ok && !force {
        return cached, nil
    }

    thread, err := s.client.Thread(ctx, postID)
    if err != nil {
        return nil, err
    }
    s.mu.Lock()
    s.threads[postID] = thread
    s.mu.Unlock()
    return thread, nil
}

// Submit 提交评论或回复。回复目标必须是已存在的顶层评论（两层封顶，
// 回复的回复在任何网络调用前被拒绝）。成功后重载该帖评论树。
func (s *ThreadStore) Submit(ctx context.Context, postID, content, parentID string) ([]model.Comment, error) {
    if IsCampaignItem(postID) {
        return nil, ErrNotReactable
    }
    if strings.TrimSpace(content) == "" {
        return nil, ErrEmptyContent
    }
    if parentID != "" {
        // 校验 parent 必须基于已加载的线程
        thread, err := s.LoadThread(ctx, postID, false)
        if err != nil {
            return nil, err
        }
        if err := checkParent(thread, parentID); err != nil {
            return nil, err
        }
    }
    if err := s.client.Create(ctx, postID, s.viewerID, content, parentID); err != nil {
        return nil, err
    }
    return s.LoadThread(ctx, postID, true)
}

func checkParent(thread []model.Comment, parentID string) error {
    for _, c := range thread {
        if c.ID == parentID {
            return nil
        }
        for _, r := range c.Replies {
            if r.ID == parentID {
                return ErrReplyToReply
            }
        }
    }
    return ErrUnknownParent
}

// Expand 展开该帖评论区（状态按帖独立）
func (s *ThreadStore) Expand(postID string) {
    s.mu.Lock()
    s.expanded[postID] = true
    s.mu.Unlock()
}

// Collapse 折叠；已拉取的评论保留
func (s *ThreadStore) Collapse(postID string) {
    s.mu.Lock()
    s.expanded[postID] = false
    s.mu.Unlock()
}

func (s *ThreadStore) Expanded(postID string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.expanded[postID]
}

// Cached 返回缓存中的评论树（未加载时 ok=false）
func (s *ThreadStore) Cached(postID string) ([]model.Comment, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    t, ok := s.threads[postID]
    return t, ok
}
