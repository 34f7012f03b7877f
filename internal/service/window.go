package service

import (
    "sync"
    "time"

    "github.com/d60-Lab/wing-feed/internal/model"
)

// DefaultIncrement 每次滚动揭示的条目数
const DefaultIncrement = 2

// Window 已揭示前缀的游标。完整列表一次取齐，分页只是客户端揭示机制，
// 不是服务端 cursor。revealed 在两次 Initialize 之间单调不减。
type Window struct {
    mu        sync.Mutex
    composed  []model.FeedItem
    revealed  int
    increment int
    inFlight  bool
    latency   time.Duration // 模拟揭示延迟，可为 0
}

func NewWindow(increment int, latency time.Duration) *Window {
    if increment <= 0 {
        increment = DefaultIncrement
    }
    return &Window{increment: increment, latency: latency}
}

// Initialize 绑定合成列表并揭示第一屏
func (w *Window) Initialize(composed []model.FeedItem) {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.composed = composed
    w.revealed = w.increment
    if w.revealed > len(composed) {
        w.revealed = len(composed)
    }
    w.inFlight = false
}

// Advance 揭示下一段。已到末尾或已有一次在途时为幂等 no-op，返回 false。
// 全局同一时刻至多一次在途；并发触发被忽略，不排队。
func (w *Window) Advance() bool {
    w.mu.Lock()
    if w.inFlight || w.revealed >= len(w.composed) {
        w.mu.Unlock()
        return false
    }
    w.inFlight = true
    w.mu.Unlock()

    if w.latency > 0 {
        time.Sleep(w.latency)
    }

    w.mu.Lock()
    w.revealed += w.increment
    if w.revealed > len(w.composed) {
        w.revealed = len(w.composed)
    }
    w.inFlight = false
    w.mu.Unlock()
    return true
}

// Visible 返回当前已揭示前缀
func (w *Window) Visible() []model.FeedItem {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.composed[:w.revealed]
}

func (w *Window) HasMore() bool {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.revealed < len(w.composed)
}

func (w *Window) Revealed() int {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.revealed
}

func (w *Window) Total() int {
    w.mu.Lock()
    defer w.mu.Unlock()
    return len(w.composed)
}
