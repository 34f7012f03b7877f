package model

import "time"

// Comment 帖子评论，ParentID 为空表示顶层评论；两层结构由服务端预组装
type Comment struct {
    ID         string    `json:"id"`
    PostID     string    `json:"post_id"`
    AuthorID   string    `json:"author_id"`
    AuthorName string    `json:"author_name"`
    Content    string    `json:"content"`
    ParentID   string    `json:"parent_id,omitempty"`
    CreatedAt  time.Time `json:"created_at"`
    Replies    []Comment `json:"replies,omitempty"`
}

// IsReply 是否为二级回复
func (c Comment) IsReply() bool { return c.ParentID != "" }
