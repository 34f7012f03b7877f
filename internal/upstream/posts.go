package upstream

import (
    "context"
    "net/url"

    "github.com/d60-Lab/wing-feed/internal/model"
)

type PostClient interface {
    PostsForWing(ctx context.Context, wingID string) ([]model.Post, error)
    // Post 拉取单帖（表态/评论落库后刷新服务端 count 用）
    Post(ctx context.Context, postID string) (model.Post, error)
}

type postClient struct {
    rest *REST
}

func NewPostClient(rest *REST) PostClient { return &postClient{rest: rest} }

func (c *postClient) PostsForWing(ctx context.Context, wingID string) ([]model.Post, error) {
    var out []model.Post
    err := c.rest.getJSON(ctx, "/api/v1/wings/"+url.PathEscape(wingID)+"/posts", &out)
    return out, err
}

func (c *postClient) Post(ctx context.Context, postID string) (model.Post, error) {
    var out model.Post
    err := c.rest.getJSON(ctx, "/api/v1/posts/"+url.PathEscape(postID), &out)
    return out, err
}
