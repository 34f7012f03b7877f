package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/wing-feed/internal/model"
    "github.com/d60-Lab/wing-feed/pkg/response"
)

type reactRequest struct {
    Kind model.ReactionKind `json:"kind"` // 缺省为默认表态（单击控件）
}

// ListReactionKinds 表态选择器的全部类型
// @Summary 列出全部表态类型
// @Tags 表态
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/reactions/kinds [get]
func (h *Handler) ListReactionKinds(c *gin.Context) {
    response.Success(c, gin.H{"kinds": model.ReactionKinds(), "default": model.DefaultReaction})
}

// React 表态状态机：同类撤销、异类替换、无则设置
// @Summary 对帖子表态（toggle/replace 语义）
// @Tags 表态
// @Accept json
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param item_id path string true "帖子 ID"
// @Param request body reactRequest false "表态类型"
// @Success 200 {object} response.Response{data=service.ReactionState}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/wings/{wing_id}/feed/items/{item_id}/reaction [post]
func (h *Handler) React(c *gin.Context) {
    var req reactRequest
    if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
        response.BadRequest(c, err.Error())
        return
    }
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    state, err := view.React(c.Request.Context(), c.Param("item_id"), req.Kind)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, state)
}
