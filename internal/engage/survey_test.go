package engage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard-cli/internal/model"
)

func surveyWith(multi, voted bool) model.Survey {
	return model.Survey{
		ID:                 5,
		IsActive:           true,
		AllowMultipleVotes: multi,
		HasVoted:           voted,
		Options: []model.SurveyOption{
			{ID: 1, OptionText: "A"},
			{ID: 2, OptionText: "B"},
			{ID: 3, OptionText: "C"},
		},
	}
}

func TestSelection_SingleChoiceReplaces(t *testing.T) {
	sel := NewSelection(surveyWith(false, false))

	sel = sel.Click(1)
	assert.Equal(t, []int64{1}, sel.IDs())

	// Selecting B after A leaves exactly {B}, never {A,B}.
	sel = sel.Click(2)
	assert.Equal(t, []int64{2}, sel.IDs())
}

func TestSelection_MultiChoiceToggles(t *testing.T) {
	sel := NewSelection(surveyWith(true, false))

	sel = sel.Click(1)
	sel = sel.Click(2)
	assert.ElementsMatch(t, []int64{1, 2}, sel.IDs())

	sel = sel.Click(1)
	assert.Equal(t, []int64{2}, sel.IDs())
	assert.False(t, sel.Contains(1))
	assert.True(t, sel.Contains(2))
}

func TestSelection_SeededFromConfirmedVotes(t *testing.T) {
	s := surveyWith(true, true)
	s.UserVotedOptionIDs = []int64{2, 3}
	sel := NewSelection(s)
	assert.ElementsMatch(t, []int64{2, 3}, sel.IDs())
	assert.False(t, sel.CanSubmit(s), "voted survey is read-only")
}

func TestSelection_CanSubmit(t *testing.T) {
	s := surveyWith(false, false)
	sel := NewSelection(s)
	assert.False(t, sel.CanSubmit(s), "empty selection")

	sel = sel.Click(1)
	assert.True(t, sel.CanSubmit(s))

	s.HasVoted = true
	assert.False(t, sel.CanSubmit(s), "hasVoted disables submit regardless of selection")
}

type fakeVoteSvc struct {
	calls  int
	gotIDs []int64
	resp   *model.Survey
	err    error
}

func (f *fakeVoteSvc) Vote(ctx context.Context, surveyID int64, optionIDs []int64) (*model.Survey, error) {
	f.calls++
	f.gotIDs = optionIDs
	return f.resp, f.err
}

func TestVoteSubmitter_EmptySelectionRejectedWithoutCall(t *testing.T) {
	svc := &fakeVoteSvc{}
	sub := VoteSubmitter{Svc: svc}

	_, err := sub.Submit(context.Background(), surveyWith(false, false), Selection{})
	require.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, svc.calls)
}

func TestVoteSubmitter_AlreadyVotedRejectedWithoutCall(t *testing.T) {
	svc := &fakeVoteSvc{}
	sub := VoteSubmitter{Svc: svc}

	sel := NewSelection(surveyWith(false, true)).Click(1)
	_, err := sub.Submit(context.Background(), surveyWith(false, true), sel)
	require.ErrorIs(t, err, ErrAlreadyVoted)
	assert.Zero(t, svc.calls)
}

func TestVoteSubmitter_ClosedSurveyRejectedWithoutCall(t *testing.T) {
	svc := &fakeVoteSvc{}
	sub := VoteSubmitter{Svc: svc}

	s := surveyWith(false, false)
	s.IsActive = false
	sel := NewSelection(s).Click(1)
	_, err := sub.Submit(context.Background(), s, sel)
	require.ErrorIs(t, err, ErrSurveyClosed)
	assert.Zero(t, svc.calls)
}

func TestVoteSubmitter_UnknownOptionRejected(t *testing.T) {
	svc := &fakeVoteSvc{}
	sub := VoteSubmitter{Svc: svc}

	sel := NewSelection(surveyWith(false, false)).Click(99)
	_, err := sub.Submit(context.Background(), surveyWith(false, false), sel)
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Zero(t, svc.calls)
}

func TestVoteSubmitter_SuccessReplacesSurvey(t *testing.T) {
	updated := surveyWith(false, true)
	updated.TotalVotes = 4
	updated.Options[1].VoteCount = 3
	updated.UserVotedOptionIDs = []int64{2}

	svc := &fakeVoteSvc{resp: &updated}
	sub := VoteSubmitter{Svc: svc}

	sel := NewSelection(surveyWith(false, false)).Click(2)
	got, err := sub.Submit(context.Background(), surveyWith(false, false), sel)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, []int64{2}, svc.gotIDs)

	// The server's survey is adopted wholesale; no local count arithmetic.
	assert.True(t, got.HasVoted)
	assert.Equal(t, 4, got.TotalVotes)
	assert.Equal(t, 3, got.Options[1].VoteCount)
}
