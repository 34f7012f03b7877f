package service

import (
    "sort"

    "github.com/d60-Lab/wing-feed/internal/model"
)

// Compose 合并两路归一化条目并按创建时间倒序排列。
// 时间相同时按 id 倒序（确定性次序，与拉取顺序无关）。
func Compose(posts, campaigns []model.FeedItem) []model.FeedItem {
    merged := make([]model.FeedItem, 0, len(posts)+len(campaigns))
    merged = append(merged, posts...)
    merged = append(merged, campaigns...)
    sort.SliceStable(merged, func(i, j int) bool {
        if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
            return merged[i].CreatedAt.After(merged[j].CreatedAt)
        }
        return merged[i].ID > merged[j].ID
    })
    return merged
}
