package upstream

import (
    "context"
    "net/url"

    "github.com/google/uuid"
)

type ChatClient interface {
    // FindOrCreateConversation 返回两人私聊会话 id，不存在则创建（服务端幂等）
    FindOrCreateConversation(ctx context.Context, participantA, participantB string) (string, error)
    SendMessage(ctx context.Context, conversationID, senderID, content string) error
}

type chatClient struct {
    rest *REST
}

func NewChatClient(rest *REST) ChatClient { return &chatClient{rest: rest} }

func (c *chatClient) FindOrCreateConversation(ctx context.Context, participantA, participantB string) (string, error) {
    body := struct {
        ParticipantA string `json:"participant_a"`
        ParticipantB string `json:"participant_b"`
    }{ParticipantA: participantA, ParticipantB: participantB}
    var out struct {
        ConversationID string `json:"conversation_id"`
    }
    if err := c.rest.postJSON(ctx, "/api/v1/conversations", body, &out); err != nil {
        return "", err
    }
    return out.ConversationID, nil
}

func (c *chatClient) SendMessage(ctx context.Context, conversationID, senderID, content string) error {
    body := struct {
        SenderID    string `json:"sender_id"`
        Content     string `json:"content"`
        ClientMsgID string `json:"client_msg_id"`
    }{SenderID: senderID, Content: content, ClientMsgID: uuid.NewString()}
    return c.rest.postJSON(ctx, "/api/v1/conversations/"+url.PathEscape(conversationID)+"/messages", body, nil)
}
