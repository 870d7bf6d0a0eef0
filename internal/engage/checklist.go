package engage

import (
	"context"
	"math"

	"ideaboard-cli/internal/model"
)

// Progress computes the displayed checklist percentage from the in-memory
// item list: round(100 * completed / total), 0 for an empty list.
//
// The idea's stored progressPercentage is server-authoritative and refetched
// after every mutation; this local value exists so the panel updates without
// waiting for the round trip. The two can disagree transiently.
func Progress(items []model.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, it := range items {
		if it.IsCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(items))))
}

// ChecklistCaller is the slice of the idea service the editor needs.
type ChecklistCaller interface {
	Get(ctx context.Context, ideaID int64) (*model.Idea, error)
	AddChecklistItem(ctx context.Context, ideaID int64, title string) (*model.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, ideaID, itemID int64) (*model.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, ideaID, itemID int64) error
}

// ChecklistEditor issues one server call per mutation and then refetches the
// parent idea for its authoritative recomputed progress. Mutations are
// author-exclusive; callers gate on that before invoking.
type ChecklistEditor struct {
	Svc ChecklistCaller
}

// Add appends a new item and returns it with the refetched parent idea.
func (e ChecklistEditor) Add(ctx context.Context, ideaID int64, title string) (*model.ChecklistItem, *model.Idea, error) {
	item, err := e.Svc.AddChecklistItem(ctx, ideaID, title)
	if err != nil {
		return nil, nil, err
	}
	idea, err := e.Svc.Get(ctx, ideaID)
	if err != nil {
		return item, nil, err
	}
	return item, idea, nil
}

// Toggle flips an item's completion and returns it with the refetched idea.
func (e ChecklistEditor) Toggle(ctx context.Context, ideaID, itemID int64) (*model.ChecklistItem, *model.Idea, error) {
	item, err := e.Svc.ToggleChecklistItem(ctx, ideaID, itemID)
	if err != nil {
		return nil, nil, err
	}
	idea, err := e.Svc.Get(ctx, ideaID)
	if err != nil {
		return item, nil, err
	}
	return item, idea, nil
}

// Delete removes an item and returns the refetched idea.
func (e ChecklistEditor) Delete(ctx context.Context, ideaID, itemID int64) (*model.Idea, error) {
	if err := e.Svc.DeleteChecklistItem(ctx, ideaID, itemID); err != nil {
		return nil, err
	}
	return e.Svc.Get(ctx, ideaID)
}
