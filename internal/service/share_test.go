package service

import (
    "context"
    "errors"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/wing-feed/internal/model"
)

func shareItem() model.FeedItem {
    return model.FeedItem{ID: "p1", Kind: model.KindPost, Content: strings.Repeat("volunteer story ", 20)}
}

func TestShareToAlliesPartialFailure(t *testing.T) {
    chat := newFakeChat()
    chat.failConv["ally2"] = true
    d := NewShareDispatcher(chat, nil, nil, "https://app.example")

    results := d.ShareToAllies(context.Background(), "viewer1", shareItem(), []string{"ally1", "ally2", "ally3"})
    require.Len(t, results, 3)

    assert.True(t, results[0].OK)
    assert.False(t, results[1].OK)
    assert.NotEmpty(t, results[1].Error)
    assert.True(t, results[2].OK, "failure of one recipient must not stop the rest")
    assert.Len(t, chat.msgs, 2, "successful sends are not rolled back")
}

func TestShareMessageFormat(t *testing.T) {
    chat := newFakeChat()
    d := NewShareDispatcher(chat, nil, nil, "https://app.example")

    res := d.ShareToAllies(context.Background(), "viewer1", shareItem(), []string{"ally1"})
    require.Len(t, res, 1)
    require.True(t, res[0].OK)
    assert.Equal(t, "conv-ally1", res[0].ConversationID)

    require.Len(t, chat.msgs, 1)
    msg := chat.msgs[0].content
    assert.Contains(t, msg, "https://app.example/feed/items/p1", "message carries the deep link")
    assert.Contains(t, msg, "…", "long content gets an ellipsis-terminated excerpt")
}

func TestShareSendFailureReported(t *testing.T) {
    chat := newFakeChat()
    chat.failSend["ally1"] = true
    d := NewShareDispatcher(chat, nil, nil, "https://app.example")

    res := d.ShareToAllies(context.Background(), "viewer1", shareItem(), []string{"ally1"})
    require.Len(t, res, 1)
    assert.False(t, res[0].OK)
    assert.Equal(t, "conv-ally1", res[0].ConversationID, "conversation succeeded, send failed")
}

type recordSharer struct {
    can    bool
    shared []string
    err    error
}

func (s *recordSharer) CanShare() bool { return s.can }
func (s *recordSharer) Share(ctx context.Context, title, link string) error {
    s.shared = append(s.shared, link)
    return s.err
}

type recordClipboard struct{ wrote []string }

func (c *recordClipboard) Write(ctx context.Context, text string) error {
    c.wrote = append(c.wrote, text)
    return nil
}

func TestShareExternalPrefersNative(t *testing.T) {
    native := &recordSharer{can: true}
    clip := &recordClipboard{}
    d := NewShareDispatcher(newFakeChat(), native, clip, "https://app.example")

    ch, link, err := d.ShareExternal(context.Background(), shareItem())
    require.NoError(t, err)
    assert.Equal(t, ChannelNative, ch)
    assert.Equal(t, "https://app.example/feed/items/p1", link)
    assert.Len(t, native.shared, 1)
    assert.Empty(t, clip.wrote)
}

func TestShareExternalClipboardFallback(t *testing.T) {
    clip := &recordClipboard{}
    d := NewShareDispatcher(newFakeChat(), &recordSharer{can: false}, clip, "https://app.example")

    ch, link, err := d.ShareExternal(context.Background(), shareItem())
    require.NoError(t, err)
    assert.Equal(t, ChannelClipboard, ch)
    assert.Equal(t, []string{link}, clip.wrote)
}

func TestShareExternalNativeErrorSurfaces(t *testing.T) {
    native := &recordSharer{can: true, err: errors.New("sheet dismissed")}
    d := NewShareDispatcher(newFakeChat(), native, nil, "https://app.example")

    ch, _, err := d.ShareExternal(context.Background(), shareItem())
    assert.Equal(t, ChannelNative, ch)
    assert.Error(t, err)
}
