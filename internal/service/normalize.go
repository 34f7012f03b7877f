package service

import (
    "strings"

    "go.uber.org/zap"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/pkg/logger"
)

const (
    // campaignIDPrefix 活动条目 id 命名空间，保证与帖子 id 不冲突
    campaignIDPrefix = "campaign:"
    // campaignSummaryMax 活动摘要截断长度（按 rune 计）
    campaignSummaryMax = 150
)

// IsCampaignItem 判断归一化 id 是否指向活动条目
func IsCampaignItem(itemID string) bool { return strings.HasPrefix(itemID, campaignIDPrefix) }

// CampaignSourceID 还原活动条目的原始 id
func CampaignSourceID(itemID string) (string, bool) {
    if !IsCampaignItem(itemID) {
        return "", false
    }
    return itemID[len(campaignIDPrefix):], true
}

// NormalizePosts 将帖子原始记录归一化为 FeedItem；缺失必填字段的记录丢弃不致命
func NormalizePosts(posts []model.Post) []model.FeedItem {
    out := make([]model.FeedItem, 0, len(posts))
    for _, p := range posts {
        if p.ID == "" || p.AuthorID == "" || p.CreatedAt.IsZero() {
            logger.Warn("drop malformed post record", zap.String("id", p.ID), zap.String("wing", p.WingID))
            continue
        }
        out = append(out, model.FeedItem{
            ID:            p.ID,
            Kind:          model.KindPost,
            CreatedAt:     p.CreatedAt,
            AuthorID:      p.AuthorID,
            AuthorName:    p.AuthorName,
            AuthorAvatar:  p.AuthorAvatar,
            Content:       p.Content,
            Location:      p.Location,
            Images:        p.Images,
            ReactionCount: p.ReactionCount,
            CommentCount:  p.CommentCount,
            Tags:          p.Tags,
        })
    }
    return out
}

// NormalizeCampaigns 将活动归一化为 FeedItem：摘要 = 标题 + 截断描述，
// 表态/评论计数强制为零（活动不参与互动模型）
func NormalizeCampaigns(campaigns []model.Campaign) []model.FeedItem {
    out := make([]model.FeedItem, 0, len(campaigns))
    for _, c := range campaigns {
        if c.ID == "" || c.CreatorID == "" || c.CreatedAt.IsZero() {
            logger.Warn("drop malformed campaign record", zap.String("id", c.ID), zap.String("wing", c.WingID))
            continue
        }
        var images []string
        if c.Image != "" {
            images = []string{c.Image}
        }
        out = append(out, model.FeedItem{
            ID:           campaignIDPrefix + c.ID,
            Kind:         model.KindCampaign,
            CreatedAt:    c.CreatedAt,
            AuthorID:     c.CreatorID,
            AuthorName:   c.CreatorName,
            AuthorAvatar: c.CreatorAvatar,
            Content:      campaignSummary(c.Title, c.Description),
            Location:     c.Location,
            Images:       images,
            CampaignRef: &model.CampaignRef{
                CampaignID: c.ID,
                Title:      c.Title,
                Deadline:   c.Deadline,
                Capacity:   c.Capacity,
                Joined:     c.Joined,
            },
        })
    }
    return out
}

func campaignSummary(title, description string) string {
    desc := truncateRunes(description, campaignSummaryMax)
    if desc == "" {
        return title
    }
    return title + ": " + desc
}

// truncateRunes 按 rune 截断并以省略号结尾
func truncateRunes(s string, max int) string {
    runes := []rune(s)
    if len(runes) <= max {
        return s
    }
    return string(runes[:max]) + "…"
}
