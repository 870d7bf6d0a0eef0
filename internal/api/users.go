package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ideaboard-cli/internal/model"
)

// UserService maps 1:1 to the /users endpoints. Role/status mutations are
// admin-only server-side; the client just forwards them.
type UserService struct{ c *Client }

func (c *Client) Users() UserService { return UserService{c} }

func (s UserService) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := s.c.get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s UserService) UpdateMe(ctx context.Context, fields map[string]any) (*model.User, error) {
	var u model.User
	if err := s.c.put(ctx, "/users/me", fields, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s UserService) All(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s UserService) UpdateRole(ctx context.Context, userID int64, role model.UserRole) error {
	return s.c.put(ctx, fmt.Sprintf("/users/%d/role", userID), map[string]any{"role": role}, nil)
}

func (s UserService) SetActive(ctx context.Context, userID int64, active bool) error {
	return s.c.put(ctx, fmt.Sprintf("/users/%d/status", userID), map[string]any{"isActive": active}, nil)
}

func (s UserService) Leaderboard(ctx context.Context, limit int) ([]model.User, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var users []model.User
	if err := s.c.get(ctx, "/users/leaderboard", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s UserService) RemainingLikes(ctx context.Context) (*model.LikeStatus, error) {
	var st model.LikeStatus
	if err := s.c.get(ctx, "/users/me/likes/remaining", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s UserService) Badges(ctx context.Context, userID int64) ([]model.Badge, error) {
	var badges []model.Badge
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d/badges", userID), nil, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}
