package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/wing-feed/internal/model"
)

func seedThread(f *fakeComments) {
    f.threads["p1"] = []model.Comment{
        {ID: "c1", PostID: "p1", AuthorID: "u1", Content: "top level", Replies: []model.Comment{
            {ID: "r1", PostID: "p1", AuthorID: "u2", Content: "a reply", ParentID: "c1"},
        }},
        {ID: "c2", PostID: "p1", AuthorID: "u3", Content: "another"},
    }
}

func TestLoadThreadLazyAndCached(t *testing.T) {
    f := newFakeComments()
    seedThread(f)
    s := NewThreadStore(f, "viewer1")
    ctx := context.Background()

    thread, err := s.LoadThread(ctx, "p1", false)
    require.NoError(t, err)
    require.Len(t, thread, 2)
    assert.Len(t, thread[0].Replies, 1)

    _, err = s.LoadThread(ctx, "p1", false)
    require.NoError(t, err)
    assert.Equal(t, 1, f.threadCalls, "second expand must not refetch")

    _, err = s.LoadThread(ctx, "p1", true)
    require.NoError(t, err)
    assert.Equal(t, 2, f.threadCalls, "force reloads")
}

func TestCollapseKeepsFetchedComments(t *testing.T) {
    f := newFakeComments()
    seedThread(f)
    s := NewThreadStore(f, "viewer1")

    _, err := s.LoadThread(context.Background(), "p1", false)
    require.NoError(t, err)

    s.Expand("p1")
    assert.True(t, s.Expanded("p1"))
    s.Collapse("p1")
    assert.False(t, s.Expanded("p1"))

    cached, ok := s.Cached("p1")
    require.True(t, ok, "collapse must not discard the thread")
    assert.Len(t, cached, 2)
    assert.False(t, s.Expanded("p2"), "expansion state is per post")
}

func TestSubmitTopLevelReloadsThread(t *testing.T) {
    f := newFakeComments()
    seedThread(f)
    s := NewThreadStore(f, "viewer1")

    _, err := s.Submit(context.Background(), "p1", "nice work", "")
    require.NoError(t, err)
    require.Len(t, f.created, 1)
    assert.Equal(t, "viewer1", f.created[0].authorID)
    assert.Empty(t, f.created[0].parentID)
    assert.Equal(t, 2, f.threadCalls, "validation load plus reload after submit")
}

func TestSubmitReplyParentMustBeTopLevel(t *testing.T) {
    f := newFakeComments()
    seedThread(f)
    s := NewThreadStore(f, "viewer1")
    ctx := context.Background()

    _, err := s.Submit(ctx, "p1", "replying to a reply", "r1")
    assert.ErrorIs(t, err, ErrReplyToReply)
    assert.Empty(t, f.created, "rejected before any network write")

    _, err = s.Submit(ctx, "p1", "orphan", "missing")
    assert.ErrorIs(t, err, ErrUnknownParent)

    _, err = s.Submit(ctx, "p1", "legit reply", "c1")
    require.NoError(t, err)
    require.Len(t, f.created, 1)
    assert.Equal(t, "c1", f.created[0].parentID)
}

func TestSubmitGuards(t *testing.T) {
    f := newFakeComments()
    s := NewThreadStore(f, "viewer1")
    ctx := context.Background()

    _, err := s.Submit(ctx, "p1", "   ", "")
    assert.ErrorIs(t, err, ErrEmptyContent)

    _, err = s.Submit(ctx, "campaign:c1", "hello", "")
    assert.ErrorIs(t, err, ErrNotReactable)

    _, err = s.LoadThread(ctx, "campaign:c1", false)
    assert.ErrorIs(t, err, ErrNotReactable)
}
