package service

import "sync"

// SentinelTrigger 监听列表末尾哨兵元素的可见信号。哨兵进入视口时触发一次
// Advance；揭示成功后撤防，等可见集合变化（哨兵移到新末尾）再 Rebind。
// 纯事件驱动，不轮询。
type SentinelTrigger struct {
    mu      sync.Mutex
    armed   bool
    advance func() bool
}

func NewSentinelTrigger(advance func() bool) *SentinelTrigger {
    return &SentinelTrigger{armed: true, advance: advance}
}

// OnVisible 哨兵可见信号。未布防时忽略；Advance 被忽略（在途/到底）时保持布防，
// 下一次信号可重试。返回是否真正触发了一次揭示。
func (t *SentinelTrigger) OnVisible() bool {
    t.mu.Lock()
    if !t.armed {
        t.mu.Unlock()
        return false
    }
    t.mu.Unlock()

    if !t.advance() {
        return false
    }

    t.mu.Lock()
    t.armed = false
    t.mu.Unlock()
    return true
}

// Rebind 可见集合变化后重新布防
func (t *SentinelTrigger) Rebind() {
    t.mu.Lock()
    t.armed = true
    t.mu.Unlock()
}

// Armed 当前是否布防（测试用）
func (t *SentinelTrigger) Armed() bool {
    t.mu.Lock()
    defer t.mu.Unlock()
    return t.armed
}
