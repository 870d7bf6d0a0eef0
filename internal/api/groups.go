package api

import (
	"context"
	"fmt"

	"ideaboard-cli/internal/model"
)

// GroupService maps 1:1 to the idea-group endpoints (membership and group
// messaging).
type GroupService struct{ c *Client }

func (c *Client) Groups() GroupService { return GroupService{c} }

func (s GroupService) ListMine(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := s.c.get(ctx, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s GroupService) Get(ctx context.Context, groupID int64) (*model.Group, error) {
	var g model.Group
	if err := s.c.get(ctx, fmt.Sprintf("/groups/%d", groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s GroupService) GetByIdea(ctx context.Context, ideaID int64) (*model.Group, error) {
	var g model.Group
	if err := s.c.get(ctx, fmt.Sprintf("/groups/idea/%d", ideaID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s GroupService) Join(ctx context.Context, groupID int64) (*model.Group, error) {
	var g model.Group
	if err := s.c.post(ctx, fmt.Sprintf("/groups/%d/join", groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s GroupService) JoinByIdea(ctx context.Context, ideaID int64) (*model.Group, error) {
	var g model.Group
	if err := s.c.post(ctx, fmt.Sprintf("/groups/idea/%d/join", ideaID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s GroupService) Leave(ctx context.Context, groupID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/groups/%d/leave", groupID))
}

func (s GroupService) Messages(ctx context.Context, groupID int64) ([]model.GroupMessage, error) {
	var msgs []model.GroupMessage
	if err := s.c.get(ctx, fmt.Sprintf("/groups/%d/messages", groupID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s GroupService) SendMessage(ctx context.Context, groupID int64, content string) (*model.GroupMessage, error) {
	var msg model.GroupMessage
	body := map[string]string{"content": content}
	if err := s.c.post(ctx, fmt.Sprintf("/groups/%d/messages", groupID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s GroupService) MarkAllRead(ctx context.Context, groupID int64) error {
	return s.c.put(ctx, fmt.Sprintf("/groups/%d/messages/read", groupID), nil, nil)
}

func (s GroupService) Membership(ctx context.Context, groupID int64) (bool, error) {
	var out struct {
		IsMember bool `json:"isMember"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/groups/%d/membership", groupID), nil, &out); err != nil {
		return false, err
	}
	return out.IsMember, nil
}

func (s GroupService) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		UnreadCount int `json:"unreadCount"`
	}
	if err := s.c.get(ctx, "/groups/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}
