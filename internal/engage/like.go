// Package engage holds the client-side engagement rules: like toggling,
// comment reaction toggling, checklist progress, and survey vote selection.
// Every piece is a small state transition testable without a UI attached.
package engage

import (
	"context"
	"errors"
)

// ErrOwnIdea rejects an author liking their own idea. Checked locally; no
// network call is made.
var ErrOwnIdea = errors.New("you cannot like your own idea")

// LikeState is the per-viewer like state of one idea.
type LikeState struct {
	Liked bool
	Count int
}

// LikeAction is the reducer input applied after the server accepts the call.
type LikeAction int

const (
	LikeGranted LikeAction = iota
	LikeRevoked
)

// ApplyLike is the optimistic ±1 transition. It runs only after server
// confirmation; a rejected call leaves the previous state untouched.
func ApplyLike(s LikeState, a LikeAction) LikeState {
	switch a {
	case LikeGranted:
		return LikeState{Liked: true, Count: s.Count + 1}
	case LikeRevoked:
		c := s.Count - 1
		if c < 0 {
			c = 0
		}
		return LikeState{Liked: false, Count: c}
	default:
		return s
	}
}

// LikeCaller is the slice of the idea service the toggler needs.
type LikeCaller interface {
	Like(ctx context.Context, ideaID int64) error
	Unlike(ctx context.Context, ideaID int64) error
}

// LikeToggler decides like vs unlike from the current state, calls exactly
// one of the two endpoints, and returns the new state. The count is adjusted
// locally by exactly 1; there is no refetch.
type LikeToggler struct {
	Svc LikeCaller
}

// Toggle flips the like state of ideaID for viewerID. authorID is the idea's
// author; a viewer who authored the idea is rejected before any call.
func (t LikeToggler) Toggle(ctx context.Context, ideaID, authorID, viewerID int64, s LikeState) (LikeState, error) {
	if viewerID == authorID {
		return s, ErrOwnIdea
	}
	if s.Liked {
		if err := t.Svc.Unlike(ctx, ideaID); err != nil {
			return s, err
		}
		return ApplyLike(s, LikeRevoked), nil
	}
	if err := t.Svc.Like(ctx, ideaID); err != nil {
		return s, err
	}
	return ApplyLike(s, LikeGranted), nil
}
