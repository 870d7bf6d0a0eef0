package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard-cli/internal/model"
	"ideaboard-cli/internal/session"
)

// recorder captures the last request so endpoint mapping stays 1:1.
type recorder struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func recordingServer(t *testing.T, rec *recorder, respond any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		if respond != nil {
			_ = json.NewEncoder(w).Encode(respond)
		}
	}))
}

func TestIdeaService_EndpointMapping(t *testing.T) {
	rec := &recorder{}
	srv := recordingServer(t, rec, model.Idea{ID: 4})
	defer srv.Close()
	c, _ := newTestClient(t, srv, &session.Session{Token: "tok"})
	ctx := context.Background()

	_ = c.Ideas().Like(ctx, 4)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/ideas/4/like", rec.path)

	_ = c.Ideas().Unlike(ctx, 4)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/ideas/4/like", rec.path)

	_, _ = c.Ideas().UpdateStatus(ctx, 4, model.StatusInProgress, 40)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/ideas/4/status", rec.path)
	assert.Equal(t, "IN_PROGRESS", rec.body["status"])
	assert.Equal(t, float64(40), rec.body["progressPercentage"])

	_, _ = c.Ideas().ToggleChecklistItem(ctx, 4, 9)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/ideas/4/checklist/9/toggle", rec.path)

	_, _ = c.Ideas().List(ctx, model.IdeaFilter{
		PageRequest: model.PageRequest{Page: 2, Size: 20},
		Status:      model.StatusConcept,
		Search:      "solar",
	})
	assert.Equal(t, "/ideas", rec.path)
	assert.Contains(t, rec.query, "page=2")
	assert.Contains(t, rec.query, "status=CONCEPT")
	assert.Contains(t, rec.query, "search=solar")
}

func TestCommentService_ReactionEndpoints(t *testing.T) {
	rec := &recorder{}
	srv := recordingServer(t, rec, nil)
	defer srv.Close()
	c, _ := newTestClient(t, srv, &session.Session{Token: "tok"})
	ctx := context.Background()

	require.NoError(t, c.Comments().AddReaction(ctx, 12, "heart"))
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/comments/12/reactions", rec.path)
	assert.Equal(t, "heart", rec.body["emoji"])

	require.NoError(t, c.Comments().RemoveReaction(ctx, 12, "heart"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/comments/12/reactions/heart", rec.path)
}

func TestSurveyService_Vote(t *testing.T) {
	rec := &recorder{}
	srv := recordingServer(t, rec, model.Survey{ID: 3, HasVoted: true, TotalVotes: 5})
	defer srv.Close()
	c, _ := newTestClient(t, srv, &session.Session{Token: "tok"})

	got, err := c.Surveys().Vote(context.Background(), 3, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/surveys/3/vote", rec.path)
	assert.Equal(t, []any{float64(1), float64(2)}, rec.body["optionIds"])
	assert.True(t, got.HasVoted)
	assert.Equal(t, 5, got.TotalVotes)
}

func TestMessageService_Endpoints(t *testing.T) {
	rec := &recorder{}
	srv := recordingServer(t, rec, model.Message{ID: 1})
	defer srv.Close()
	c, _ := newTestClient(t, srv, &session.Session{Token: "tok"})
	ctx := context.Background()

	_, err := c.Messages().Send(ctx, model.SendMessageRequest{RecipientID: 8, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/messages", rec.path)
	assert.Equal(t, float64(8), rec.body["recipientId"])

	_ = c.Messages().MarkRead(ctx, 8)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/messages/conversations/8/read", rec.path)
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.AuthResponse{
			Token:        "tok-a",
			RefreshToken: "ref-a",
			User:         model.User{ID: 2, Username: "ida"},
			ExpiresIn:    900,
		})
	}))
	defer srv.Close()

	sess := &session.Session{}
	c, store := newTestClient(t, srv, sess)

	resp, err := c.Auth().Login(context.Background(), "ida", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", resp.Token)
	assert.Equal(t, "tok-a", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "ida", sess.User.Username)

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-a", reloaded.Token)
	assert.Equal(t, "ref-a", reloaded.RefreshToken)
	require.NotNil(t, reloaded.User)
	assert.Equal(t, "ida", reloaded.User.Username)
}

func TestAuthService_LogoutClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	sess := &session.Session{Token: "t", RefreshToken: "r", User: &model.User{ID: 1}}
	c, store := newTestClient(t, srv, sess)

	require.NoError(t, c.Auth().Logout())
	assert.False(t, sess.LoggedIn())
	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.False(t, reloaded.LoggedIn())
}
