package model

import "time"

// Campaign 活动原始记录（来自 campaign 服务，仅已审批通过的会进入信息流）
type Campaign struct {
    ID            string    `json:"id"`
    WingID        string    `json:"wing_id"`
    Title         string    `json:"title"`
    Description   string    `json:"description"`
    Image         string    `json:"image"`
    Location      string    `json:"location"`
    Deadline      time.Time `json:"deadline"`
    Capacity      int       `json:"capacity"`
    Joined        int       `json:"joined"`
    CreatorID     string    `json:"creator_id"`
    CreatorName   string    `json:"creator_name"`
    CreatorAvatar string    `json:"creator_avatar"`
    CreatedAt     time.Time `json:"created_at"`
}
