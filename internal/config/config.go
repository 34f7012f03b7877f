package config

import (
    "strings"
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/spf13/viper"
)

// Config 应用配置，环境变量（WINGFEED_ 前缀）优先于配置文件
type Config struct {
    Server struct {
        Addr string `mapstructure:"addr" validate:"required"`
        Mode string `mapstructure:"mode"` // gin mode: debug/release/test
    } `mapstructure:"server"`

    Upstream struct {
        BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
        Timeout  time.Duration `mapstructure:"timeout"`
        CacheTTL time.Duration `mapstructure:"cache_ttl"`
    } `mapstructure:"upstream"`

    Redis struct {
        Addr     string `mapstructure:"addr"`
        Password string `mapstructure:"password"`
        DB       int    `mapstructure:"db"`
        Enabled  bool   `mapstructure:"enabled"`
    } `mapstructure:"redis"`

    Feed struct {
        Increment      int           `mapstructure:"increment" validate:"min=1"`
        AdvanceLatency time.Duration `mapstructure:"advance_latency"`
        HydrateRate    float64       `mapstructure:"hydrate_rate" validate:"gt=0"`
        HydrateBurst   int           `mapstructure:"hydrate_burst" validate:"min=1"`
        ViewTTL        time.Duration `mapstructure:"view_ttl"`
        PublicBaseURL  string        `mapstructure:"public_base_url" validate:"required,url"`
    } `mapstructure:"feed"`

    Auth struct {
        JWTSecret string `mapstructure:"jwt_secret" validate:"required"`
    } `mapstructure:"auth"`

    Log struct {
        Level       string `mapstructure:"level"`
        Development bool   `mapstructure:"development"`
    } `mapstructure:"log"`

    Sentry struct {
        DSN string `mapstructure:"dsn"`
    } `mapstructure:"sentry"`

    Otel struct {
        Endpoint string `mapstructure:"endpoint"`
    } `mapstructure:"otel"`
}

// Load 读取配置；path 为空时只依赖默认值与环境变量
func Load(path string) (*Config, error) {
    v := viper.New()
    v.SetEnvPrefix("WINGFEED")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    v.SetDefault("server.addr", ":8080")
    v.SetDefault("server.mode", "release")
    v.SetDefault("upstream.base_url", "http://localhost:9000")
    v.SetDefault("upstream.timeout", 10*time.Second)
    v.SetDefault("upstream.cache_ttl", 30*time.Second)
    v.SetDefault("redis.addr", "localhost:6379")
    v.SetDefault("redis.enabled", false)
    v.SetDefault("feed.increment", 2)
    v.SetDefault("feed.advance_latency", 0)
    v.SetDefault("feed.hydrate_rate", 20.0)
    v.SetDefault("feed.hydrate_burst", 20)
    v.SetDefault("feed.view_ttl", 30*time.Minute)
    v.SetDefault("feed.public_base_url", "http://localhost:8080")
    v.SetDefault("auth.jwt_secret", "dev-secret")
    v.SetDefault("log.level", "info")
    v.SetDefault("log.development", false)

    if path != "" {
        v.SetConfigFile(path)
        if err := v.ReadInConfig(); err != nil {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    if err := validator.New().Struct(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
