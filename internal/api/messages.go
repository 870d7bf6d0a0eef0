package api

import (
	"context"
	"fmt"

	"ideaboard-cli/internal/model"
)

// MessageService maps 1:1 to the direct-message endpoints. Conversations are
// derived server-side, grouped by counterpart.
type MessageService struct{ c *Client }

func (c *Client) Messages() MessageService { return MessageService{c} }

func (s MessageService) Conversations(ctx context.Context) ([]model.Conversation, error) {
	var convs []model.Conversation
	if err := s.c.get(ctx, "/messages/conversations", nil, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (s MessageService) Conversation(ctx context.Context, otherUserID int64) ([]model.Message, error) {
	var msgs []model.Message
	if err := s.c.get(ctx, fmt.Sprintf("/messages/conversations/%d", otherUserID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s MessageService) Send(ctx context.Context, req model.SendMessageRequest) (*model.Message, error) {
	var msg model.Message
	if err := s.c.post(ctx, "/messages", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s MessageService) MarkRead(ctx context.Context, otherUserID int64) error {
	return s.c.put(ctx, fmt.Sprintf("/messages/conversations/%d/read", otherUserID), nil, nil)
}

func (s MessageService) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		UnreadCount int `json:"unreadCount"`
	}
	if err := s.c.get(ctx, "/messages/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}
