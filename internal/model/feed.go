package model

import "time"

// FeedKind 信息流条目类型（封闭集合）
type FeedKind string

const (
    KindPost     FeedKind = "post"
    KindCampaign FeedKind = "campaign"
)

// CampaignRef 活动附加信息（仅 kind=campaign 时存在）
type CampaignRef struct {
    CampaignID string    `json:"campaign_id"`
    Title      string    `json:"title"`
    Deadline   time.Time `json:"deadline"`
    Capacity   int       `json:"capacity"`
    Joined     int       `json:"joined"`
}

// TagRef 帖子中被 @ 的成员引用（仅 kind=post）
type TagRef struct {
    MemberID string `json:"member_id"`
    Name     string `json:"name"`
}

// FeedItem 归一化后的信息流条目（post 与 campaign 的 tagged union）
type FeedItem struct {
    ID            string       `json:"id"`
    Kind          FeedKind     `json:"kind"`
    CreatedAt     time.Time    `json:"created_at"`
    AuthorID      string       `json:"author_id"`
    AuthorName    string       `json:"author_name"`
    AuthorAvatar  string       `json:"author_avatar"`
    Content       string       `json:"content"`
    Location      string       `json:"location,omitempty"`
    Images        []string     `json:"images"`
    ReactionCount int          `json:"reaction_count"`
    CommentCount  int          `json:"comment_count"`
    CampaignRef   *CampaignRef `json:"campaign_ref,omitempty"`
    Tags          []TagRef     `json:"tags,omitempty"`
}

// IsCampaign 是否为活动条目
func (i FeedItem) IsCampaign() bool { return i.Kind == KindCampaign }
