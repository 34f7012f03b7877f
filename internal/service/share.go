package service

import (
    "context"
    "fmt"

    "go.uber.org/zap"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/internal/upstream"
    "github.com/d60-Lab/wing-feed/pkg/logger"
)

// shareExcerptMax 分享消息中条目内容的截断长度
const shareExcerptMax = 120

// ShareChannel 站外分享实际走的通道
type ShareChannel string

const (
    ChannelNative    ShareChannel = "native"
    ChannelClipboard ShareChannel = "clipboard"
)

// NativeSharer 平台原生分享能力（可选）
type NativeSharer interface {
    CanShare() bool
    Share(ctx context.Context, title, link string) error
}

// ClipboardWriter 原生分享不可用时的剪贴板兜底
type ClipboardWriter interface {
    Write(ctx context.Context, text string) error
}

// ShareDispatcher 把条目分发到站内私聊或站外通道。站内多接收者互相独立，
// 允许部分失败，逐人上报，绝不回滚已成功的发送。站外路径不发任何网络请求。
type ShareDispatcher struct {
    chat      upstream.ChatClient
    native    NativeSharer
    clipboard ClipboardWriter
    baseURL   string
}

func NewShareDispatcher(chat upstream.ChatClient, native NativeSharer, clipboard ClipboardWriter, baseURL string) *ShareDispatcher {
    return &ShareDispatcher{chat: chat, native: native, clipboard: clipboard, baseURL: baseURL}
}

// DeepLink 指回条目的深链
func (d *ShareDispatcher) DeepLink(item model.FeedItem) string {
    return fmt.Sprintf("%s/feed/items/%s", d.baseURL, item.ID)
}

// formatMessage 分享消息 = 截断摘录 + 深链
func (d *ShareDispatcher) formatMessage(item model.FeedItem) string {
    return fmt.Sprintf("%q — %s", truncateRunes(item.Content, shareExcerptMax), d.DeepLink(item))
}

// ShareToAllies 逐个接收者：find-or-create 会话，再发一条格式化消息。
// 某个接收者失败不影响其余接收者。
func (d *ShareDispatcher) ShareToAllies(ctx context.Context, senderID string, item model.FeedItem, allyIDs []string) []model.ShareResult {
    msg := d.formatMessage(item)
    results := make([]model.ShareResult, 0, len(allyIDs))
    for _, allyID := range allyIDs {
        res := model.ShareResult{AllyID: allyID}
        convID, err := d.chat.FindOrCreateConversation(ctx, senderID, allyID)
        if err != nil {
            res.Error = err.Error()
            logger.Warn("share: conversation failed", zap.String("ally", allyID), zap.String("item", item.ID), zap.Error(err))
            results = append(results, res)
            continue
        }
        res.ConversationID = convID
        if err := d.chat.SendMessage(ctx, convID, senderID, msg); err != nil {
            res.Error = err.Error()
            logger.Warn("share: send failed", zap.String("ally", allyID), zap.String("item", item.ID), zap.Error(err))
            results = append(results, res)
            continue
        }
        res.OK = true
        results = append(results, res)
    }
    return results
}

// ShareExternal 走平台原生分享；不可用则把深链写入剪贴板并告知用户
func (d *ShareDispatcher) ShareExternal(ctx context.Context, item model.FeedItem) (ShareChannel, string, error) {
    link := d.DeepLink(item)
    if d.native != nil && d.native.CanShare() {
        if err := d.native.Share(ctx, item.Content, link); err != nil {
            return ChannelNative, link, err
        }
        return ChannelNative, link, nil
    }
    if d.clipboard != nil {
        if err := d.clipboard.Write(ctx, link); err != nil {
            return ChannelClipboard, link, err
        }
    }
    return ChannelClipboard, link, nil
}
