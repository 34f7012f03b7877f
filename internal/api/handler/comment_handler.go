package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/wing-feed/pkg/response"
)

type commentRequest struct {
    Content  string `json:"content" binding:"required"`
    ParentID string `json:"parent_id"` // 为空表示顶层评论；只能指向顶层评论
}

// GetComments 展开并返回两层评论树
// @Summary 获取帖子评论（首次展开懒加载）
// @Tags 评论
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param item_id path string true "帖子 ID"
// @Param force query bool false "强制重拉" default(false)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/wings/{wing_id}/feed/items/{item_id}/comments [get]
func (h *Handler) GetComments(c *gin.Context) {
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    force := c.DefaultQuery("force", "false") == "true"
    thread, err := view.Comments(c.Request.Context(), c.Param("item_id"), force)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"comments": thread})
}

// CreateComment 提交评论或回复，成功后返回重载的评论树
// @Summary 发表评论/回复
// @Tags 评论
// @Accept json
// @Produce json
// @Param wing_id path string true "Wing ID"
// @Param item_id path string true "帖子 ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/wings/{wing_id}/feed/items/{item_id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
    var req commentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    view, err := h.registry.Get(c.Request.Context(), viewerID(c), c.Param("wing_id"))
    if err != nil {
        fail(c, err)
        return
    }
    thread, err := view.SubmitComment(c.Request.Context(), c.Param("item_id"), req.Content, req.ParentID)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"comments": thread})
}
