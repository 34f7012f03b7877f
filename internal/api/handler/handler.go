package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/wing-feed/internal/middleware"
    "github.com/d60-Lab/wing-feed/internal/service"
    "github.com/d60-Lab/wing-feed/internal/upstream"
    "github.com/d60-Lab/wing-feed/pkg/response"
)

// Handler 信息流 API 入口
type Handler struct {
    registry *service.Registry
    share    *service.ShareDispatcher
}

func New(registry *service.Registry, share *service.ShareDispatcher) *Handler {
    return &Handler{registry: registry, share: share}
}

func viewerID(c *gin.Context) string { return c.GetString(middleware.ViewerKey) }

// fail 引擎/上游错误到响应的统一映射
func fail(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrStaleContext):
        response.Conflict(c, "feed snapshot superseded, reload and retry")
    case errors.Is(err, service.ErrReactionInFlight):
        response.Conflict(c, "reaction write in flight, retry later")
    case errors.Is(err, service.ErrUnknownItem), errors.Is(err, upstream.ErrNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrInvalidReaction),
        errors.Is(err, service.ErrNotReactable),
        errors.Is(err, service.ErrReplyToReply),
        errors.Is(err, service.ErrUnknownParent),
        errors.Is(err, service.ErrEmptyContent):
        response.BadRequest(c, err.Error())
    case errors.Is(err, upstream.ErrUnavailable):
        response.BadGateway(c, err)
    default:
        response.InternalError(c, err)
    }
}
