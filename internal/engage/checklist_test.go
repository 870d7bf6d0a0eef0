package engage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard-cli/internal/model"
)

func itemsWith(total, completed int) []model.ChecklistItem {
	items := make([]model.ChecklistItem, total)
	for i := range items {
		items[i] = model.ChecklistItem{ID: int64(i + 1), IsCompleted: i < completed}
	}
	return items
}

func TestProgress(t *testing.T) {
	tests := []struct {
		total, completed, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 100},
		{2, 1, 50},
		{3, 1, 33},
		{3, 2, 67},
		{4, 3, 75},
		{6, 1, 17},
		{7, 5, 71},
		{10, 10, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.completed, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(itemsWith(tt.total, tt.completed)))
		})
	}
}

func TestProgress_ArbitraryCompletionPatterns(t *testing.T) {
	// Position of completed items must not matter, only the count.
	for total := 0; total <= 10; total++ {
		for mask := 0; mask < 1<<total; mask++ {
			items := make([]model.ChecklistItem, total)
			completed := 0
			for i := range items {
				done := mask&(1<<i) != 0
				items[i] = model.ChecklistItem{ID: int64(i + 1), IsCompleted: done}
				if done {
					completed++
				}
			}
			want := 0
			if total > 0 {
				want = int(float64(100*completed)/float64(total) + 0.5)
			}
			if got := Progress(items); got != want {
				t.Fatalf("total=%d mask=%b: got %d want %d", total, mask, got, want)
			}
		}
	}
}

// fakeChecklistSvc recomputes the idea's stored progress on refetch, like
// the real backend does.
type fakeChecklistSvc struct {
	items    []model.ChecklistItem
	nextID   int64
	getCalls int
	err      error
}

func (f *fakeChecklistSvc) Get(ctx context.Context, ideaID int64) (*model.Idea, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	items := make([]model.ChecklistItem, len(f.items))
	copy(items, f.items)
	return &model.Idea{
		ID:                 ideaID,
		ProgressPercentage: Progress(items),
		ChecklistItems:     items,
	}, nil
}

func (f *fakeChecklistSvc) AddChecklistItem(ctx context.Context, ideaID int64, title string) (*model.ChecklistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	item := model.ChecklistItem{ID: f.nextID, IdeaID: ideaID, Title: title, OrdinalPosition: len(f.items)}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeChecklistSvc) ToggleChecklistItem(ctx context.Context, ideaID, itemID int64) (*model.ChecklistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].IsCompleted = !f.items[i].IsCompleted
			it := f.items[i]
			return &it, nil
		}
	}
	return nil, &model.APIError{Status: 404, Message: "item not found"}
}

func (f *fakeChecklistSvc) DeleteChecklistItem(ctx context.Context, ideaID, itemID int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return &model.APIError{Status: 404, Message: "item not found"}
}

func TestChecklistEditor_MutationsRefetchIdea(t *testing.T) {
	svc := &fakeChecklistSvc{}
	ed := ChecklistEditor{Svc: svc}
	ctx := context.Background()

	item, idea, err := ed.Add(ctx, 1, "write proposal")
	require.NoError(t, err)
	assert.Equal(t, "write proposal", item.Title)
	require.NotNil(t, idea)
	assert.Equal(t, 0, idea.ProgressPercentage)
	assert.Equal(t, 1, svc.getCalls, "add refetches the idea once")

	_, idea, err = ed.Toggle(ctx, 1, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, idea.ProgressPercentage)

	idea, err = ed.Delete(ctx, 1, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, idea.ProgressPercentage)
	assert.Empty(t, idea.ChecklistItems)
}

func TestChecklistEditor_ThreeItemScenario(t *testing.T) {
	// 3 items, 1 completed -> 33%; toggle a second -> 67%; delete an
	// incomplete item (2 items, 1 completed) -> 50%.
	svc := &fakeChecklistSvc{}
	ed := ChecklistEditor{Svc: svc}
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, _, err := ed.Add(ctx, 1, title)
		require.NoError(t, err)
	}
	_, idea, err := ed.Toggle(ctx, 1, svc.items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 33, idea.ProgressPercentage)
	assert.Equal(t, 33, Progress(idea.ChecklistItems))

	_, idea, err = ed.Toggle(ctx, 1, svc.items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 67, idea.ProgressPercentage)

	// Un-toggle the second so exactly one remains completed, then delete
	// the incomplete third item.
	_, _, err = ed.Toggle(ctx, 1, svc.items[1].ID)
	require.NoError(t, err)
	idea, err = ed.Delete(ctx, 1, svc.items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, idea.ProgressPercentage)
}

func TestChecklistEditor_FailedMutationDoesNotRefetch(t *testing.T) {
	svc := &fakeChecklistSvc{err: &model.APIError{Status: 500, Message: "down"}}
	ed := ChecklistEditor{Svc: svc}

	_, _, err := ed.Add(context.Background(), 1, "x")
	require.Error(t, err)
	assert.Zero(t, svc.getCalls)
}
