package api

import (
    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    _ "github.com/d60-Lab/wing-feed/docs"
    "github.com/d60-Lab/wing-feed/internal/api/handler"
    "github.com/d60-Lab/wing-feed/internal/middleware"
    "github.com/d60-Lab/wing-feed/pkg/response"
)

// NewRouter 组装路由与中间件
func NewRouter(h *handler.Handler, jwtSecret string, sentryEnabled bool) *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(otelgin.Middleware("wing-feed"))
    if sentryEnabled {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }
    r.Use(gzip.Gzip(gzip.DefaultCompression))

    r.GET("/healthz", func(c *gin.Context) { response.Success(c, gin.H{"status": "ok"}) })
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    v1 := r.Group("/api/v1", middleware.ViewerIdentity(jwtSecret))
    {
        v1.GET("/reactions/kinds", h.ListReactionKinds)

        wing := v1.Group("/wings/:wing_id")
        {
            wing.GET("/feed", h.GetFeed)
            wing.POST("/feed/reload", h.ReloadFeed)
            wing.POST("/feed/sentinel", h.Sentinel)
            wing.GET("/feed/search", h.SearchFeed)

            item := wing.Group("/feed/items/:item_id")
            {
                item.POST("/reaction", h.React)
                item.GET("/comments", h.GetComments)
                item.POST("/comments", h.CreateComment)
                item.POST("/share", h.ShareToAllies)
                item.GET("/share-link", h.ShareLink)
            }
        }
    }
    return r
}
