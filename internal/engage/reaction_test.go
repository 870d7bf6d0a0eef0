package engage

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard-cli/internal/model"
)

// fakeReactionSvc keeps a tiny server-side view of who reacted so the
// conflict branch behaves like the real backend.
type fakeReactionSvc struct {
	reacted     map[string]bool // emoji -> viewer reacted
	addCalls    []string
	removeCalls []string
	addErr      error
	removeErr   error
	listErr     error
}

func newFakeReactionSvc() *fakeReactionSvc {
	return &fakeReactionSvc{reacted: map[string]bool{}}
}

func (f *fakeReactionSvc) AddReaction(ctx context.Context, commentID int64, emoji string) error {
	f.addCalls = append(f.addCalls, emoji)
	if f.addErr != nil {
		return f.addErr
	}
	if f.reacted[emoji] {
		return &model.APIError{Status: http.StatusConflict, Message: "already reacted", Timestamp: time.Now()}
	}
	f.reacted[emoji] = true
	return nil
}

func (f *fakeReactionSvc) RemoveReaction(ctx context.Context, commentID int64, emoji string) error {
	f.removeCalls = append(f.removeCalls, emoji)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.reacted, emoji)
	return nil
}

func (f *fakeReactionSvc) ListByIdea(ctx context.Context, ideaID int64) ([]model.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var reactions []model.CommentReaction
	for emoji := range f.reacted {
		reactions = append(reactions, model.CommentReaction{Emoji: emoji, Count: 1})
	}
	return []model.Comment{{ID: 1, IdeaID: ideaID, Reactions: reactions}}, nil
}

func TestReactionToggle_AddWhenUnreacted(t *testing.T) {
	svc := newFakeReactionSvc()
	tg := ReactionToggler{Svc: svc}

	outcome, comments, err := tg.Toggle(context.Background(), 10, 1, "fire")
	require.NoError(t, err)
	assert.Equal(t, ReactionAdded, outcome)
	assert.Equal(t, []string{"fire"}, svc.addCalls)
	assert.Empty(t, svc.removeCalls)

	require.Len(t, comments, 1)
	require.Len(t, comments[0].Reactions, 1)
	assert.Equal(t, "fire", comments[0].Reactions[0].Emoji)
	assert.Equal(t, 1, comments[0].Reactions[0].Count)
}

func TestReactionToggle_ConflictBecomesRemove(t *testing.T) {
	svc := newFakeReactionSvc()
	svc.reacted["fire"] = true
	tg := ReactionToggler{Svc: svc}

	outcome, comments, err := tg.Toggle(context.Background(), 10, 1, "fire")
	require.NoError(t, err)
	assert.Equal(t, ReactionRemoved, outcome)
	assert.Equal(t, []string{"fire"}, svc.addCalls)
	assert.Equal(t, []string{"fire"}, svc.removeCalls)

	require.Len(t, comments, 1)
	assert.Empty(t, comments[0].Reactions, "reaction list must exclude the removed emoji")
}

func TestReactionToggle_NonConflictErrorIsTerminal(t *testing.T) {
	svc := newFakeReactionSvc()
	svc.addErr = &model.APIError{Status: http.StatusInternalServerError, Message: "down"}
	tg := ReactionToggler{Svc: svc}

	_, _, err := tg.Toggle(context.Background(), 10, 1, "heart")
	require.Error(t, err)
	assert.Empty(t, svc.removeCalls, "no remove on non-conflict failure")
}

func TestReactionToggle_RemoveFailureSurfaces(t *testing.T) {
	svc := newFakeReactionSvc()
	svc.reacted["heart"] = true
	svc.removeErr = errors.New("boom")
	tg := ReactionToggler{Svc: svc}

	_, _, err := tg.Toggle(context.Background(), 10, 1, "heart")
	require.Error(t, err)
}

func TestReactionToggle_RoundTrip(t *testing.T) {
	// Comment with no reactions: first 🔥 click adds, second runs the
	// add→conflict→remove flow and lands back at zero.
	svc := newFakeReactionSvc()
	tg := ReactionToggler{Svc: svc}

	outcome, comments, err := tg.Toggle(context.Background(), 10, 1, "fire")
	require.NoError(t, err)
	assert.Equal(t, ReactionAdded, outcome)
	require.Len(t, comments[0].Reactions, 1)

	outcome, comments, err = tg.Toggle(context.Background(), 10, 1, "fire")
	require.NoError(t, err)
	assert.Equal(t, ReactionRemoved, outcome)
	assert.Empty(t, comments[0].Reactions)
	assert.Equal(t, []string{"fire", "fire"}, svc.addCalls, "add always goes first")
	assert.Equal(t, []string{"fire"}, svc.removeCalls)
}
