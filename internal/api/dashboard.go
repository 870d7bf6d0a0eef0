package api

import (
	"context"
	"net/url"
	"strconv"

	"ideaboard-cli/internal/model"
)

// DashboardService maps 1:1 to the read-only dashboard endpoints.
type DashboardService struct{ c *Client }

func (c *Client) Dashboard() DashboardService { return DashboardService{c} }

func (s DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.c.get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s DashboardService) TopIdeas(ctx context.Context, limit int) ([]model.TopIdea, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var top []model.TopIdea
	if err := s.c.get(ctx, "/dashboard/top-ideas", q, &top); err != nil {
		return nil, err
	}
	return top, nil
}
