package middleware

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/d60-Lab/wing-feed/pkg/response"
)

// ViewerKey gin context 中的 viewer id 键
const ViewerKey = "viewer_id"

// ViewerIdentity 从 Bearer token 读取 viewer 身份。令牌由外部身份服务签发，
// 这里只验签并取 subject，不承担任何登录/会话逻辑。
func ViewerIdentity(secret string) gin.HandlerFunc {
    key := []byte(secret)
    return func(c *gin.Context) {
        auth := c.GetHeader("Authorization")
        if !strings.HasPrefix(auth, "Bearer ") {
            c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Code: 40100, Message: "missing bearer token"})
            return
        }
        token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
            if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                return nil, jwt.ErrSignatureInvalid
            }
            return key, nil
        })
        if err != nil || !token.Valid {
            c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Code: 40100, Message: "invalid token"})
            return
        }
        sub, err := token.Claims.GetSubject()
        if err != nil || sub == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Code: 40100, Message: "token has no subject"})
            return
        }
        c.Set(ViewerKey, sub)
        c.Next()
    }
}
