package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/wing-feed/pkg/response"
)

// GetFeed 返回当前揭示窗口
// @Summary 获取 wing 信息流当前窗口
// @Tags 信息流
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Success 200 {object} response.Response{data=service.FeedPage}
// @Failure 502 {object} response.Response
// @Router /api/v1/wings/{wing_id}/feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    page, err := view.Feed(c.Request.Context())
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, page)
}

// ReloadFeed 重建快照（窗口重置到首屏）
// @Summary 重新拉取并合成信息流
// @Tags 信息流
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param force query bool false "绕过快照缓存" default(false)
// @Success 200 {object} response.Response{data=service.FeedPage}
// @Router /api/v1/wings/{wing_id}/feed/reload [post]
func (h *Handler) ReloadFeed(c *gin.Context) {
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    force := c.DefaultQuery("force", "false") == "true"
    if err := view.Reload(c.Request.Context(), force); err != nil {
        fail(c, err)
        return
    }
    page, err := view.Feed(c.Request.Context())
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, page)
}

// Sentinel 哨兵可见信号（滚动接近末尾）
// @Summary 上报哨兵可见，尝试揭示下一段
// @Tags 信息流
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/wings/{wing_id}/feed/sentinel [post]
func (h *Handler) Sentinel(c *gin.Context) {
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    advanced := view.Sentinel()
    response.Success(c, gin.H{"advanced": advanced})
}

// SearchFeed 全量快照内搜索
// @Summary 信息流内搜索（内容/作者/活动标题）
// @Tags 信息流
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param q query string true "关键词"
// @Success 200 {object} response.Response{data=[]model.FeedItem}
// @Router /api/v1/wings/{wing_id}/feed/search [get]
func (h *Handler) SearchFeed(c *gin.Context) {
    q := c.Query("q")
    if q == "" {
        response.BadRequest(c, "q is required")
        return
    }
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"items": view.Search(q)})
}
