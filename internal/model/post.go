package model

import "time"

// Post 帖子原始记录（来自 post 服务，未归一化）
type Post struct {
    ID            string    `json:"id"`
    WingID        string    `json:"wing_id"`
    AuthorID      string    `json:"author_id"`
    AuthorName    string    `json:"author_name"`
    AuthorAvatar  string    `json:"author_avatar"`
    Content       string    `json:"content"`
    Location      string    `json:"location"`
    Images        []string  `json:"images"`
    ReactionCount int       `json:"reaction_count"`
    CommentCount  int       `json:"comment_count"`
    Tags          []TagRef  `json:"tags"`
    CreatedAt     time.Time `json:"created_at"`
}
