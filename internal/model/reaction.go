package model

// ReactionKind 表态类型（封闭集合，每人每帖至多一个）
type ReactionKind string

const (
    ReactionLike  ReactionKind = "like"
    ReactionLove  ReactionKind = "love"
    ReactionCare  ReactionKind = "care"
    ReactionLaugh ReactionKind = "laugh"
    ReactionSad   ReactionKind = "sad"
    ReactionAngry ReactionKind = "angry"
)

// DefaultReaction 单击表态控件时的默认类型
const DefaultReaction = ReactionLike

// ReactionKinds 按展示顺序列出全部表态类型（长按弹出的选择器）
func ReactionKinds() []ReactionKind {
    return []ReactionKind{ReactionLike, ReactionLove, ReactionCare, ReactionLaugh, ReactionSad, ReactionAngry}
}

// ValidReaction 校验是否属于封闭集合
func ValidReaction(k ReactionKind) bool {
    switch k {
    case ReactionLike, ReactionLove, ReactionCare, ReactionLaugh, ReactionSad, ReactionAngry:
        return true
    }
    return false
}
