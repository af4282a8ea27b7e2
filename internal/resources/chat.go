package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Chat struct {
	client *api.Client
}

func NewChat(client *api.Client) *Chat {
	return &Chat{client: client}
}

func (c *Chat) Conversations(ctx context.Context, req api.PageRequest) (api.PageResult[models.Conversation], error) {
	return api.FetchPage[models.Conversation](ctx, c.client, "/chat/conversations", req)
}

// Messages pages through one conversation's history, newest first.
func (c *Chat) Messages(ctx context.Context, conversationID uuid.UUID, req api.PageRequest) (api.PageResult[models.ChatMessage], error) {
	return api.FetchPage[models.ChatMessage](ctx, c.client, "/chat/conversations/"+conversationID.String()+"/messages", req)
}

func (c *Chat) Send(ctx context.Context, conversationID uuid.UUID, content string) (models.ChatMessage, error) {
	var message models.ChatMessage
	in := map[string]string{"content": content}
	err := c.client.PostJSON(ctx, "/chat/conversations/"+conversationID.String()+"/messages", in, &message)
	return message, err
}
