package service

import (
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/wing-feed/internal/model"
)

func items(n int) []model.FeedItem {
    out := make([]model.FeedItem, n)
    for i := range out {
        out[i] = model.FeedItem{ID: string(rune('a' + i)), Kind: model.KindPost, CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
    }
    return out
}

func TestWindowRevealScenario(t *testing.T) {
    // 5 帖 + 3 活动，增量 2：2 -> 4 -> 6 -> 8（封顶）
    w := NewWindow(2, 0)
    w.Initialize(items(8))

    assert.Equal(t, 2, len(w.Visible()))
    assert.True(t, w.HasMore())

    require.True(t, w.Advance())
    require.True(t, w.Advance())
    assert.Equal(t, 6, len(w.Visible()))

    require.True(t, w.Advance())
    assert.Equal(t, 8, len(w.Visible()))
    assert.False(t, w.HasMore())
}

func TestWindowAdvanceAtEndIsNoop(t *testing.T) {
    w := NewWindow(5, 0)
    w.Initialize(items(3))
    assert.Equal(t, 3, w.Revealed())
    assert.False(t, w.HasMore())

    assert.False(t, w.Advance())
    assert.Equal(t, 3, w.Revealed())
}

func TestWindowInitializeShorterThanIncrement(t *testing.T) {
    w := NewWindow(4, 0)
    w.Initialize(items(1))
    assert.Equal(t, 1, w.Revealed())
    assert.False(t, w.HasMore())
}

func TestWindowMonotonicUntilReinitialize(t *testing.T) {
    w := NewWindow(2, 0)
    w.Initialize(items(6))
    prev := w.Revealed()
    for w.Advance() {
        assert.GreaterOrEqual(t, w.Revealed(), prev)
        prev = w.Revealed()
    }
    assert.Equal(t, 6, w.Revealed())

    w.Initialize(items(6))
    assert.Equal(t, 2, w.Revealed(), "reinitialize resets to the first increment")
}

func TestWindowConcurrentAdvanceSingleInFlight(t *testing.T) {
    // 模拟延迟期间的并发触发只允许一次在途，其余忽略
    w := NewWindow(2, 20*time.Millisecond)
    w.Initialize(items(10))

    var wg sync.WaitGroup
    applied := make([]bool, 8)
    for i := range applied {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            applied[i] = w.Advance()
        }(i)
    }
    wg.Wait()

    ok := 0
    for _, a := range applied {
        if a {
            ok++
        }
    }
    assert.Equal(t, 1, ok, "exactly one concurrent advance may win")
    assert.Equal(t, 4, w.Revealed())
}

func TestSentinelTriggerDisarmAndRebind(t *testing.T) {
    w := NewWindow(2, 0)
    w.Initialize(items(6))
    tr := NewSentinelTrigger(w.Advance)

    require.True(t, tr.OnVisible())
    assert.False(t, tr.Armed())
    assert.False(t, tr.OnVisible(), "disarmed until the visible set changes")
    assert.Equal(t, 4, w.Revealed())

    tr.Rebind()
    require.True(t, tr.OnVisible())
    assert.Equal(t, 6, w.Revealed())

    tr.Rebind()
    assert.False(t, tr.OnVisible(), "no-op advance keeps the trigger armed")
    assert.True(t, tr.Armed())
}
