package upstream

import (
    "context"
    "net/url"

    "github.com/d60-Lab/wing-feed/internal/model"
)

type CommentClient interface {
    // Thread 返回两层评论树（顶层评论内嵌各自的回复，服务端预组装）
    Thread(ctx context.Context, postID string) ([]model.Comment, error)
    Create(ctx context.Context, postID, authorID, content, parentID string) error
}

type commentClient struct {
    rest *REST
}

func NewCommentClient(rest *REST) CommentClient { return &commentClient{rest: rest} }

func (c *commentClient) Thread(ctx context.Context, postID string) ([]model.Comment, error) {
    var out []model.Comment
    err := c.rest.getJSON(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", &out)
    return out, err
}

func (c *commentClient) Create(ctx context.Context, postID, authorID, content, parentID string) error {
    body := struct {
        AuthorID string `json:"author_id"`
        Content  string `json:"content"`
        ParentID string `json:"parent_id,omitempty"`
    }{AuthorID: authorID, Content: content, ParentID: parentID}
    return c.rest.postJSON(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", body, nil)
}
