package service

// DefaultDragThreshold 横向拖拽触发翻页的距离阈值（像素）
const DefaultDragThreshold = 80

// Carousel 帖子图片的环形查看器，与引擎其余部分无关。
// Next/Prev 按 len(images) 取模回绕；一次拖拽手势越过阈值只触发一次翻页，
// 与拖拽距离不成比例。
type Carousel struct {
    images    []string
    index     int
    open      bool
    threshold float64
    dragAccum float64
    dragFired bool
}

func NewCarousel(threshold float64) *Carousel {
    if threshold <= 0 {
        threshold = DefaultDragThreshold
    }
    return &Carousel{threshold: threshold}
}

// Open 打开查看器；startIndex 越界时回落到 0
func (c *Carousel) Open(images []string, startIndex int) {
    c.images = images
    c.open = true
    c.index = 0
    if startIndex > 0 && startIndex < len(images) {
        c.index = startIndex
    }
    c.dragAccum = 0
    c.dragFired = false
}

// Close 关闭；下次 Open 未显式给 startIndex（传 0）时从头开始
func (c *Carousel) Close() {
    c.open = false
    c.images = nil
    c.index = 0
}

func (c *Carousel) IsOpen() bool { return c.open }
func (c *Carousel) Index() int   { return c.index }
func (c *Carousel) Len() int     { return len(c.images) }

// Current 当前图片 URL（未打开或无图时为空串）
func (c *Carousel) Current() string {
    if !c.open || len(c.images) == 0 {
        return ""
    }
    return c.images[c.index]
}

func (c *Carousel) Next() {
    if len(c.images) == 0 {
        return
    }
    c.index = (c.index + 1) % len(c.images)
}

func (c *Carousel) Prev() {
    if len(c.images) == 0 {
        return
    }
    c.index = (c.index - 1 + len(c.images)) % len(c.images)
}

// BeginDrag 手势开始，清零累计位移
func (c *Carousel) BeginDrag() {
    c.dragAccum = 0
    c.dragFired = false
}

// DragMove 手势位移更新（dx 向右为正）。首次越过阈值触发一次翻页并返回 true，
// 该手势内不再触发。
func (c *Carousel) DragMove(dx float64) bool {
    c.dragAccum = dx
    if c.dragFired {
        return false
    }
    switch {
    case c.dragAccum <= -c.threshold:
        c.dragFired = true
        c.Next()
        return true
    case c.dragAccum >= c.threshold:
        c.dragFired = true
        c.Prev()
        return true
    }
    return false
}

// EndDrag 手势结束
func (c *Carousel) EndDrag() {
    c.dragAccum = 0
    c.dragFired = false
}
