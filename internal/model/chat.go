package model

// ShareTarget 站内分享目标（已互相关注的好友）
type ShareTarget struct {
    AllyID string `json:"ally_id"`
}

// ShareResult 单个接收者的分享结果；分享多人时互相独立，不构成整体事务
type ShareResult struct {
    AllyID         string `json:"ally_id"`
    ConversationID string `json:"conversation_id,omitempty"`
    OK             bool   `json:"ok"`
    Error          string `json:"error,omitempty"`
}
