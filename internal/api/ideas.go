package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"ideaboard-cli/internal/model"
)

// IdeaService maps 1:1 to the /ideas endpoints, including the checklist and
// file attachment sub-resources. No business logic lives here.
type IdeaService struct{ c *Client }

func (c *Client) Ideas() IdeaService { return IdeaService{c} }

func (s IdeaService) List(ctx context.Context, filter model.IdeaFilter) (*model.Page[model.Idea], error) {
	q := url.Values{}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Size > 0 {
		q.Set("size", strconv.Itoa(filter.Size))
	}
	if filter.Sort != "" {
		q.Set("sort", filter.Sort)
	}
	if filter.Direction != "" {
		q.Set("direction", filter.Direction)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.AuthorID != 0 {
		q.Set("authorId", strconv.FormatInt(filter.AuthorID, 10))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if len(filter.Tags) > 0 {
		q.Set("tags", strings.Join(filter.Tags, ","))
	}
	var page model.Page[model.Idea]
	if err := s.c.get(ctx, "/ideas", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s IdeaService) Get(ctx context.Context, id int64) (*model.Idea, error) {
	var idea model.Idea
	if err := s.c.get(ctx, fmt.Sprintf("/ideas/%d", id), nil, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s IdeaService) Create(ctx context.Context, req model.IdeaCreateRequest) (*model.Idea, error) {
	var idea model.Idea
	if err := s.c.post(ctx, "/ideas", req, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s IdeaService) Update(ctx context.Context, id int64, req model.IdeaUpdateRequest) (*model.Idea, error) {
	var idea model.Idea
	if err := s.c.put(ctx, fmt.Sprintf("/ideas/%d", id), req, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s IdeaService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/ideas/%d", id))
}

func (s IdeaService) Like(ctx context.Context, id int64) error {
	return s.c.post(ctx, fmt.Sprintf("/ideas/%d/like", id), nil, nil)
}

func (s IdeaService) Unlike(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/ideas/%d/like", id))
}

func (s IdeaService) UpdateStatus(ctx context.Context, id int64, status model.IdeaStatus, progress int) (*model.Idea, error) {
	var idea model.Idea
	body := map[string]any{"status": status, "progressPercentage": progress}
	if err := s.c.put(ctx, fmt.Sprintf("/ideas/%d/status", id), body, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s IdeaService) AddChecklistItem(ctx context.Context, ideaID int64, title string) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	body := map[string]string{"title": title}
	if err := s.c.post(ctx, fmt.Sprintf("/ideas/%d/checklist", ideaID), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s IdeaService) ToggleChecklistItem(ctx context.Context, ideaID, itemID int64) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	if err := s.c.put(ctx, fmt.Sprintf("/ideas/%d/checklist/%d/toggle", ideaID, itemID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s IdeaService) DeleteChecklistItem(ctx context.Context, ideaID, itemID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/ideas/%d/checklist/%d", ideaID, itemID))
}

func (s IdeaService) UploadFile(ctx context.Context, ideaID int64, filename string, content io.Reader) (*model.FileAttachment, error) {
	var att model.FileAttachment
	if err := s.c.upload(ctx, fmt.Sprintf("/ideas/%d/files", ideaID), "file", filename, content, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

func (s IdeaService) DownloadFile(ctx context.Context, ideaID, fileID int64) ([]byte, error) {
	return s.c.download(ctx, fmt.Sprintf("/ideas/%d/files/%d", ideaID, fileID))
}

func (s IdeaService) DeleteFile(ctx context.Context, ideaID, fileID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/ideas/%d/files/%d", ideaID, fileID))
}
