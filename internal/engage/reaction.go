package engage

import (
	"context"

	"ideaboard-cli/internal/model"
)

// Emojis is the fixed reaction set offered by the UI.
var Emojis = []string{"thumbs_up", "heart", "celebrate", "thinking", "fire"}

// EmojiGlyphs maps the wire symbols to their display form.
var EmojiGlyphs = map[string]string{
	"thumbs_up": "👍",
	"heart":     "❤️",
	"celebrate": "🎉",
	"thinking":  "🤔",
	"fire":      "🔥",
}

// ReactionOutcome reports which branch of the toggle ran.
type ReactionOutcome int

const (
	// ReactionAdded: the viewer had not reacted; add succeeded.
	ReactionAdded ReactionOutcome = iota
	// ReactionRemoved: add came back 409 (state desync: the server already
	// had the viewer's reaction), so remove ran and succeeded.
	ReactionRemoved
)

// ReactionCaller is the slice of the comment service the toggler needs.
type ReactionCaller interface {
	AddReaction(ctx context.Context, commentID int64, emoji string) error
	RemoveReaction(ctx context.Context, commentID int64, emoji string) error
	ListByIdea(ctx context.Context, ideaID int64) ([]model.Comment, error)
}

// ReactionToggler runs the per-(comment,emoji) two-state machine
// {Unreacted, Reacted}. The client never stores which state it is in; it
// always assumes Unreacted and issues add. A conflict response is the
// server saying the real state is Reacted, which forces the remove branch
// and lands the pair back in Unreacted.
//
// This conflict-as-signal flow is a correctness requirement, not an
// incidental fallback: it is the only way the toggle stays in sync with
// concurrent reactors without tracking per-viewer state locally.
type ReactionToggler struct {
	Svc ReactionCaller
}

// Toggle reacts to commentID with emoji and refetches the comment list for
// ideaID afterwards so aggregate counts come from the server, never from
// local arithmetic. Any failure other than the add-conflict is terminal.
func (t ReactionToggler) Toggle(ctx context.Context, ideaID, commentID int64, emoji string) (ReactionOutcome, []model.Comment, error) {
	outcome := ReactionAdded
	if err := t.Svc.AddReaction(ctx, commentID, emoji); err != nil {
		if !model.IsConflict(err) {
			return outcome, nil, err
		}
		if err := t.Svc.RemoveReaction(ctx, commentID, emoji); err != nil {
			return outcome, nil, err
		}
		outcome = ReactionRemoved
	}
	comments, err := t.Svc.ListByIdea(ctx, ideaID)
	if err != nil {
		return outcome, nil, err
	}
	return outcome, comments, nil
}
