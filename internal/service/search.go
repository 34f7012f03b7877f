package service

import (
    "strings"

    "github.com/d60-Lab/wing-feed/internal/model"
)

// SearchFeed 在完整合成列表上做大小写不敏感的子串匹配（内容、作者名、
// 活动标题）。与揭示窗口无关：搜索始终覆盖全量快照。
func SearchFeed(composed []model.FeedItem, query string) []model.FeedItem {
    q := strings.ToLower(strings.TrimSpace(query))
    if q == "" {
        return nil
    }
    var out []model.FeedItem
    for _, item := range composed {
        if matchItem(item, q) {
            out = append(out, item)
        }
    }
    return out
}

func matchItem(item model.FeedItem, q string) bool {
    if strings.Contains(strings.ToLower(item.Content), q) {
        return true
    }
    if strings.Contains(strings.ToLower(item.AuthorName), q) {
        return true
    }
    switch item.Kind {
    case model.KindCampaign:
        return item.CampaignRef != nil && strings.Contains(strings.ToLower(item.CampaignRef.Title), q)
    case model.KindPost:
        for _, t := range item.Tags {
            if strings.Contains(strings.ToLower(t.Name), q) {
                return true
            }
        }
    }
    return false
}
