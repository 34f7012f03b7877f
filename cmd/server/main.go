package main

import (
    "context"
    "errors"
    "flag"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "github.com/redis/go-redis/v9"
    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/attribute"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"
    "go.uber.org/zap"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/wing-feed/internal/api"
    "github.com/d60-Lab/wing-feed/internal/api/handler"
    "github.com/d60-Lab/wing-feed/internal/config"
    "github.com/d60-Lab/wing-feed/internal/service"
    "github.com/d60-Lab/wing-feed/internal/upstream"
    "github.com/d60-Lab/wing-feed/pkg/logger"
)

// serverClipboard 服务端没有系统剪贴板；深链随响应返回由客户端落盘
type serverClipboard struct{}

func (serverClipboard) Write(ctx context.Context, text string) error { return nil }

func main() {
    var cfgPath string
    flag.StringVar(&cfgPath, "config", "", "config file path (optional)")
    flag.Parse()

    cfg, err := config.Load(cfgPath)
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    if cfg.Otel.Endpoint != "" {
        shutdown, err := setupTracing(ctx, cfg.Otel.Endpoint)
        if err != nil {
            logger.Warn("tracing setup failed", zap.Error(err))
        } else {
            defer shutdown(context.Background())
        }
    }

    var cache *redis.Client
    if cfg.Redis.Enabled {
        cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
        defer cache.Close()
    }

    rest := upstream.NewREST(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
    posts := upstream.NewPostClient(rest)
    campaigns := upstream.NewCampaignClient(rest)
    source := upstream.NewFeedSource(posts, campaigns, cache, cfg.Upstream.CacheTTL)

    deps := service.Deps{
        Source:    source,
        Posts:     posts,
        Reactions: upstream.NewReactionClient(rest),
        Comments:  upstream.NewCommentClient(rest),
    }
    viewCfg := service.ViewConfig{
        Increment:      cfg.Feed.Increment,
        AdvanceLatency: cfg.Feed.AdvanceLatency,
        HydrateRate:    rate.Limit(cfg.Feed.HydrateRate),
        HydrateBurst:   cfg.Feed.HydrateBurst,
    }
    registry := service.NewRegistry(deps, viewCfg, cfg.Feed.ViewTTL)
    stopEvict := registry.Start(time.Minute)
    defer stopEvict(context.Background())

    dispatcher := service.NewShareDispatcher(upstream.NewChatClient(rest), nil, serverClipboard{}, cfg.Feed.PublicBaseURL)

    gin.SetMode(cfg.Server.Mode)
    router := api.NewRouter(handler.New(registry, dispatcher), cfg.Auth.JWTSecret, cfg.Sentry.DSN != "")

    srv := &http.Server{
        Addr:              cfg.Server.Addr,
        Handler:           router,
        ReadHeaderTimeout: 10 * time.Second,
    }
    go func() {
        logger.Info("wing-feed listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server stopped", zap.Error(err))
            stop()
        }
    }()

    <-ctx.Done()
    logger.Info("shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("graceful shutdown failed", zap.Error(err))
    }
}

func setupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
    exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
    if err != nil {
        return nil, err
    }
    tp := sdktrace.NewTracerProvider(
        sdktrace.WithBatcher(exporter),
        sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "wing-feed"))),
    )
    otel.SetTracerProvider(tp)
    return tp.Shutdown, nil
}
