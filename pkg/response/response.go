package response

import (
    "net/http"

    "github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
    Code    int         `json:"code"`
    Message string      `json:"message"`
    Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
    c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
    c.JSON(http.StatusBadRequest, Response{Code: 40000, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
    c.JSON(http.StatusNotFound, Response{Code: 40400, Message: msg})
}

// Conflict 请求与当前状态冲突（如对同一资源的并发操作被忽略）
func Conflict(c *gin.Context, msg string) {
    c.JSON(http.StatusConflict, Response{Code: 40900, Message: msg})
}

func InternalError(c *gin.Context, err error) {
    c.JSON(http.StatusInternalServerError, Response{Code: 50000, Message: err.Error()})
}

// BadGateway 上游依赖不可用（可重试）
func BadGateway(c *gin.Context, err error) {
    c.JSON(http.StatusBadGateway, Response{Code: 50200, Message: err.Error()})
}
