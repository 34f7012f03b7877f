package service

import (
    "context"
    "errors"
    "sync"

    "github.com/d60-Lab/wing-feed/internal/model"
)

var errUpstreamDown = errors.New("upstream down")

// fakeReactions 记录每次上游写，单 viewer 语义
type fakeReactions struct {
    mu      sync.Mutex
    stored  map[string]model.ReactionKind
    gets    int
    puts    int
    deletes int

    failPut    bool
    failGet    bool
    failDelete bool
    blockPut   chan struct{} // 非 nil 时 Put 阻塞等待释放
}

func newFakeReactions() *fakeReactions {
    return &fakeReactions{stored: make(map[string]model.ReactionKind)}
}

func (f *fakeReactions) Get(ctx context.Context, postID, viewerID string) (model.ReactionKind, bool, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.gets++
    if f.failGet {
        return "", false, errUpstreamDown
    }
    k, ok := f.stored[postID]
    return k, ok, nil
}

func (f *fakeReactions) Put(ctx context.Context, postID, viewerID string, kind model.ReactionKind) error {
    if f.blockPut != nil {
        <-f.blockPut
    }
    f.mu.Lock()
    defer f.mu.Unlock()
    f.puts++
    if f.failPut {
        return errUpstreamDown
    }
    f.stored[postID] = kind
    return nil
}

func (f *fakeReactions) Delete(ctx context.Context, postID, viewerID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.deletes++
    if f.failDelete {
        return errUpstreamDown
    }
    delete(f.stored, postID)
    return nil
}

func (f *fakeReactions) writes() (int, int) {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.puts, f.deletes
}

type createdComment struct {
    postID   string
    authorID string
    content  string
    parentID string
}

// fakeComments 服务端预组装两层评论树
type fakeComments struct {
    mu          sync.Mutex
    threads     map[string][]model.Comment
    created     []createdComment
    threadCalls int
    failCreate  bool
    failThread  bool
}

func newFakeComments() *fakeComments {
    return &fakeComments{threads: make(map[string][]model.Comment)}
}

func (f *fakeComments) Thread(ctx context.Context, postID string) ([]model.Comment, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.threadCalls++
    if f.failThread {
        return nil, errUpstreamDown
    }
    return f.threads[postID], nil
}

func (f *fakeComments) Create(ctx context.Context, postID, authorID, content, parentID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.failCreate {
        return errUpstreamDown
    }
    f.created = append(f.created, createdComment{postID: postID, authorID: authorID, content: content, parentID: parentID})
    return nil
}

type sentMsg struct {
    conversationID string
    senderID       string
    content        string
}

// fakeChat find-or-create 会话 + 发消息，可按好友 id 注入失败
type fakeChat struct {
    mu        sync.Mutex
    failConv  map[string]bool
    failSend  map[string]bool
    convOf    map[string]string
    msgs      []sentMsg
    convCalls int
}

func newFakeChat() *fakeChat {
    return &fakeChat{failConv: make(map[string]bool), failSend: make(map[string]bool), convOf: make(map[string]string)}
}

func (f *fakeChat) FindOrCreateConversation(ctx context.Context, a, b string) (string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.convCalls++
    if f.failConv[b] {
        return "", errUpstreamDown
    }
    id, ok := f.convOf[b]
    if !ok {
        id = "conv-" + b
        f.convOf[b] = id
    }
    return id, nil
}

func (f *fakeChat) SendMessage(ctx context.Context, conversationID, senderID, content string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    for ally, fail := range f.failSend {
        if fail && conversationID == "conv-"+ally {
            return errUpstreamDown
        }
    }
    f.msgs = append(f.msgs, sentMsg{conversationID: conversationID, senderID: senderID, content: content})
    return nil
}

// fakeSource 两路原始记录
type fakeSource struct {
    mu          sync.Mutex
    posts       []model.Post
    campaigns   []model.Campaign
    invalidated int
    failPosts   bool
}

func (f *fakeSource) PostsForWing(ctx context.Context, wingID string) ([]model.Post, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.failPosts {
        return nil, errUpstreamDown
    }
    return f.posts, nil
}

func (f *fakeSource) CampaignsForWing(ctx context.Context, wingID string) ([]model.Campaign, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.campaigns, nil
}

func (f *fakeSource) Invalidate(ctx context.Context, wingID string) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.invalidated++
}

// fakePosts 单帖重取（计数刷新）
type fakePosts struct {
    mu    sync.Mutex
    byID  map[string]model.Post
    calls int
}

func newFakePosts() *fakePosts { return &fakePosts{byID: make(map[string]model.Post)} }

func (f *fakePosts) PostsForWing(ctx context.Context, wingID string) ([]model.Post, error) {
    return nil, nil
}

func (f *fakePosts) Post(ctx context.Context, postID string) (model.Post, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.calls++
    p, ok := f.byID[postID]
    if !ok {
        return model.Post{}, errUpstreamDown
    }
    return p, nil
}
