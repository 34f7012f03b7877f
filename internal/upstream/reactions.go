package upstream

import (
    "context"
    "errors"
    "net/url"

    "github.com/d60-Lab/wing-feed/internal/model"
)

type ReactionClient interface {
    // Get 返回 viewer 在该帖上的当前表态；不存在时 ok=false
    Get(ctx context.Context, postID, viewerID string) (kind model.ReactionKind, ok bool, err error)
    // Put 新增或替换表态（服务端 upsert）
    Put(ctx context.Context, postID, viewerID string, kind model.ReactionKind) error
    // Delete 撤销表态
    Delete(ctx context.Context, postID, viewerID string) error
}

type reactionClient struct {
    rest *REST
}

func NewReactionClient(rest *REST) ReactionClient { return &reactionClient{rest: rest} }

type reactionPayload struct {
    PostID   string             `json:"post_id"`
    ViewerID string             `json:"viewer_id"`
    Kind     model.ReactionKind `json:"kind"`
}

func (c *reactionClient) Get(ctx context.Context, postID, viewerID string) (model.ReactionKind, bool, error) {
    var out struct {
        Kind model.ReactionKind `json:"kind"`
    }
    path := "/api/v1/reactions?post_id=" + url.QueryEscape(postID) + "&viewer_id=" + url.QueryEscape(viewerID)
    if err := c.rest.getJSON(ctx, path, &out); err != nil {
        if errors.Is(err, ErrNotFound) {
            return "", false, nil
        }
        return "", false, err
    }
    return out.Kind, out.Kind != "", nil
}

func (c *reactionClient) Put(ctx context.Context, postID, viewerID string, kind model.ReactionKind) error {
    return c.rest.postJSON(ctx, "/api/v1/reactions", reactionPayload{PostID: postID, ViewerID: viewerID, Kind: kind}, nil)
}

func (c *reactionClient) Delete(ctx context.Context, postID, viewerID string) error {
    path := "/api/v1/reactions?post_id=" + url.QueryEscape(postID) + "&viewer_id=" + url.QueryEscape(viewerID)
    return c.rest.deleteJSON(ctx, path)
}
