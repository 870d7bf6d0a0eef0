package api

import (
	"context"
	"fmt"

	"ideaboard-cli/internal/model"
)

// CommentService maps 1:1 to the comment endpoints. AddReaction may return a
// 409 when the viewer already reacted with that emoji; the engagement
// controller reinterprets that as "toggle off" (see engage.ReactionToggler).
type CommentService struct{ c *Client }

func (c *Client) Comments() CommentService { return CommentService{c} }

func (s CommentService) ListByIdea(ctx context.Context, ideaID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.c.get(ctx, fmt.Sprintf("/ideas/%d/comments", ideaID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentService) Create(ctx context.Context, ideaID int64, content string) (*model.Comment, error) {
	var comment model.Comment
	body := map[string]string{"content": content}
	if err := s.c.post(ctx, fmt.Sprintf("/ideas/%d/comments", ideaID), body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s CommentService) Delete(ctx context.Context, commentID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/comments/%d", commentID))
}

func (s CommentService) AddReaction(ctx context.Context, commentID int64, emoji string) error {
	body := map[string]string{"emoji": emoji}
	return s.c.post(ctx, fmt.Sprintf("/comments/%d/reactions", commentID), body, nil)
}

func (s CommentService) RemoveReaction(ctx context.Context, commentID int64, emoji string) error {
	return s.c.do(ctx, "DELETE", fmt.Sprintf("/comments/%d/reactions/%s", commentID, emoji), nil, nil, nil)
}
