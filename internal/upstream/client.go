// Package upstream 封装成员平台各协作方的 REST 客户端。
// 引擎只消费这些接口返回的 JSON，不拥有任何服务端数据。
package upstream

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/codeGROOVE-dev/retry"
    "go.uber.org/zap"

    "github.com/d60-Lab/wing-feed/pkg/logger"
)

var (
    // ErrNotFound 上游返回 404
    ErrNotFound = errors.New("upstream: not found")
    // ErrUnavailable 上游不可达或 5xx（可重试）
    ErrUnavailable = errors.New("upstream: unavailable")
)

// StatusError 非 2xx 响应
type StatusError struct {
    Code int
    URL  string
}

func (e *StatusError) Error() string { return fmt.Sprintf("upstream: HTTP %d: %s", e.Code, e.URL) }

// REST 各客户端共用的 HTTP 执行器
type REST struct {
    base   string
    client *http.Client
}

func NewREST(baseURL string, timeout time.Duration) *REST {
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &REST{base: baseURL, client: &http.Client{Timeout: timeout}}
}

// do 执行一次请求并解码 JSON；4xx 不重试，网络错误与 5xx 重试
func (r *REST) do(ctx context.Context, method, path string, body, out interface{}) error {
    url := r.base + path
    err := retry.Do(
        func() error {
            var reader io.Reader
            if body != nil {
                payload, err := json.Marshal(body)
                if err != nil {
                    return retry.Unrecoverable(err)
                }
                reader = bytes.NewReader(payload)
            }
            req, err := http.NewRequestWithContext(ctx, method, url, reader)
            if err != nil {
                return retry.Unrecoverable(err)
            }
            if body != nil {
                req.Header.Set("Content-Type", "application/json")
            }
            resp, err := r.client.Do(req)
            if err != nil {
                return err
            }
            defer resp.Body.Close()
            switch {
            case resp.StatusCode == http.StatusNotFound:
                return retry.Unrecoverable(ErrNotFound)
            case resp.StatusCode >= 500:
                return &StatusError{Code: resp.StatusCode, URL: url}
            case resp.StatusCode >= 400:
                return retry.Unrecoverable(&StatusError{Code: resp.StatusCode, URL: url})
            }
            if out == nil {
                return nil
            }
            return json.NewDecoder(resp.Body).Decode(out)
        },
        retry.Attempts(3),
        retry.Delay(200*time.Millisecond),
        retry.MaxDelay(5*time.Second),
        retry.MaxJitter(time.Second),
        retry.Context(ctx),
        retry.LastErrorOnly(true),
        retry.OnRetry(func(n uint, err error) {
            logger.Warn("upstream retry", zap.Uint("attempt", n), zap.String("url", url), zap.Error(err))
        }),
    )
    if err == nil {
        return nil
    }
    if errors.Is(err, ErrNotFound) || isUnrecoverableStatus(err) {
        return err
    }
    return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func isUnrecoverableStatus(err error) bool {
    var se *StatusError
    return errors.As(err, &se) && se.Code < 500
}

func (r *REST) getJSON(ctx context.Context, path string, out interface{}) error {
    return r.do(ctx, http.MethodGet, path, nil, out)
}

func (r *REST) postJSON(ctx context.Context, path string, body, out interface{}) error {
    return r.do(ctx, http.MethodPost, path, body, out)
}

func (r *REST) deleteJSON(ctx context.Context, path string) error {
    return r.do(ctx, http.MethodDelete, path, nil, nil)
}
