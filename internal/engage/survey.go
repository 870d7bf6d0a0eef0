package engage

import (
	"context"
	"errors"

	"ideaboard-cli/internal/model"
)

var (
	ErrNoSelection   = errors.New("select at least one option")
	ErrAlreadyVoted  = errors.New("you have already voted in this survey")
	ErrSurveyClosed  = errors.New("this survey is no longer active")
	ErrUnknownOption = errors.New("unknown survey option")
)

// Selection is the pending vote selection for one survey, kept apart from
// the server-confirmed userVotedOptionIds. Ordering of clicks is preserved
// for submission.
type Selection struct {
	multi bool
	ids   []int64
}

// NewSelection seeds the pending set. For a survey the viewer already voted
// in, the confirmed option ids are shown but the set is effectively frozen
// (CanSubmit is false once hasVoted).
func NewSelection(s model.Survey) Selection {
	sel := Selection{multi: s.AllowMultipleVotes}
	sel.ids = append(sel.ids, s.UserVotedOptionIDs...)
	return sel
}

// Click applies one option click. Single-choice: the clicked option replaces
// the whole set. Multi-choice: the click toggles membership.
func (s Selection) Click(optionID int64) Selection {
	if !s.multi {
		return Selection{multi: false, ids: []int64{optionID}}
	}
	for i, id := range s.ids {
		if id == optionID {
			out := Selection{multi: true}
			out.ids = append(out.ids, s.ids[:i]...)
			out.ids = append(out.ids, s.ids[i+1:]...)
			return out
		}
	}
	out := Selection{multi: true}
	out.ids = append(out.ids, s.ids...)
	out.ids = append(out.ids, optionID)
	return out
}

func (s Selection) Contains(optionID int64) bool {
	for _, id := range s.ids {
		if id == optionID {
			return true
		}
	}
	return false
}

func (s Selection) IDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s Selection) Empty() bool { return len(s.ids) == 0 }

// CanSubmit gates the submit control: a non-empty pending set and a survey
// the viewer has not voted in yet.
func (s Selection) CanSubmit(survey model.Survey) bool {
	return !s.Empty() && !survey.HasVoted
}

// VoteCaller is the slice of the survey service the submitter needs.
type VoteCaller interface {
	Vote(ctx context.Context, surveyID int64, optionIDs []int64) (*model.Survey, error)
}

// VoteSubmitter validates and submits a pending selection. On success the
// returned survey (updated counts, hasVoted=true) replaces local state
// wholesale.
type VoteSubmitter struct {
	Svc VoteCaller
}

// Submit rejects an already-voted, closed, or empty selection without a
// network call, then submits and returns the server's survey.
func (v VoteSubmitter) Submit(ctx context.Context, survey model.Survey, sel Selection) (*model.Survey, error) {
	if survey.HasVoted {
		return nil, ErrAlreadyVoted
	}
	if !survey.IsActive {
		return nil, ErrSurveyClosed
	}
	if sel.Empty() {
		return nil, ErrNoSelection
	}
	known := make(map[int64]bool, len(survey.Options))
	for _, opt := range survey.Options {
		known[opt.ID] = true
	}
	for _, id := range sel.IDs() {
		if !known[id] {
			return nil, ErrUnknownOption
		}
	}
	return v.Svc.Vote(ctx, survey.ID, sel.IDs())
}
