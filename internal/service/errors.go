package service

import "errors"

var (
    // ErrStaleContext 异步结果所属的快照已被重载，静默丢弃
    ErrStaleContext = errors.New("feed snapshot superseded")
    // ErrReactionInFlight 同一帖子已有表态写入在途，后到的调用被忽略（不排队）
    ErrReactionInFlight = errors.New("reaction write already in flight")
    // ErrInvalidReaction 表态类型不在封闭集合内
    ErrInvalidReaction = errors.New("invalid reaction kind")
    // ErrNotReactable 活动条目不可表态/评论
    ErrNotReactable = errors.New("campaign items are not reactable")
    // ErrReplyToReply 只允许回复顶层评论（两层结构）
    ErrReplyToReply = errors.New("parent must be a top-level comment")
    // ErrUnknownParent 回复目标不存在
    ErrUnknownParent = errors.New("parent comment not found")
    // ErrUnknownItem 条目不在当前快照中
    ErrUnknownItem = errors.New("feed item not found")
    // ErrEmptyContent 评论/分享内容为空
    ErrEmptyContent = errors.New("content must not be empty")
)
