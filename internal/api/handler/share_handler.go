package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/wing-feed/pkg/response"
)

type shareRequest struct {
    AllyIDs []string `json:"ally_ids" binding:"required,min=1"`
}

// ShareToAllies 站内分享：逐个好友建会话、发消息，允许部分失败
// @Summary 分享条目到好友私聊
// @Tags 分享
// @Accept json
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param item_id path string true "条目 ID"
// @Param request body shareRequest true "好友列表"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/wings/{wing_id}/feed/items/{item_id}/share [post]
func (h *Handler) ShareToAllies(c *gin.Context) {
    var req shareRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    item, err := view.Item(c.Param("item_id"))
    if err != nil {
        fail(c, err)
        return
    }
    results := h.share.ShareToAllies(c.Request.Context(), viewerID(c), item, req.AllyIDs)
    failed := 0
    for _, r := range results {
        if !r.OK {
            failed++
        }
    }
    response.Success(c, gin.H{"results": results, "failed": failed})
}

// ShareLink 站外分享用的深链（原生分享/剪贴板由客户端完成，无网络调用）
// @Summary 获取条目深链
// @Tags 分享
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param item_id path string true "条目 ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/wings/{wing_id}/feed/items/{item_id}/share-link [get]
func (h *Handler) ShareLink(c *gin.Context) {
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    item, err := view.Item(c.Param("item_id"))
    if err != nil {
        fail(c, err)
        return
    }
    channel, link, err := h.share.ShareExternal(c.Request.Context(), item)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"channel": channel, "link": link})
}
