package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ideaboard-cli/internal/model"
)

// SurveyService maps 1:1 to the /surveys endpoints.
type SurveyService struct{ c *Client }

func (c *Client) Surveys() SurveyService { return SurveyService{c} }

func (s SurveyService) List(ctx context.Context, page model.PageRequest) (*model.Page[model.Survey], error) {
	q := url.Values{}
	if page.Page > 0 {
		q.Set("page", strconv.Itoa(page.Page))
	}
	if page.Size > 0 {
		q.Set("size", strconv.Itoa(page.Size))
	}
	var out model.Page[model.Survey]
	if err := s.c.get(ctx, "/surveys", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s SurveyService) Create(ctx context.Context, req model.SurveyCreateRequest) (*model.Survey, error) {
	var survey model.Survey
	if err := s.c.post(ctx, "/surveys", req, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// Vote submits the selected options and returns the updated survey with
// authoritative vote counts and hasVoted=true. Callers replace their local
// survey wholesale; no count arithmetic happens client-side.
func (s SurveyService) Vote(ctx context.Context, surveyID int64, optionIDs []int64) (*model.Survey, error) {
	var survey model.Survey
	body := map[string]any{"optionIds": optionIDs}
	if err := s.c.post(ctx, fmt.Sprintf("/surveys/%d/vote", surveyID), body, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s SurveyService) Delete(ctx context.Context, surveyID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/surveys/%d", surveyID))
}
