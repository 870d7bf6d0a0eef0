package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard-cli/internal/model"
)

func TestStore_RoundTrip(t *testing.T) {
	st := Store{Dir: t.TempDir()}

	s := &Session{
		Token:        "tok",
		RefreshToken: "ref",
		User:         &model.User{ID: 3, Username: "maya", Role: model.RoleEmployee},
	}
	require.NoError(t, st.Save(s))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, "ref", got.RefreshToken)
	require.NotNil(t, got.User)
	assert.Equal(t, "maya", got.User.Username)
	assert.True(t, got.LoggedIn())
}

func TestStore_MissingFileIsEmptySession(t *testing.T) {
	st := Store{Dir: t.TempDir()}
	got, err := st.Load()
	require.NoError(t, err)
	assert.False(t, got.LoggedIn())
}

func TestStore_CorruptFileTreatedAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	st := Store{Dir: dir}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{nope"), 0o600))

	got, err := st.Load()
	require.NoError(t, err)
	assert.False(t, got.LoggedIn())
}

func TestStore_SaveTokenKeepsRefreshTokenAndUser(t *testing.T) {
	st := Store{Dir: t.TempDir()}
	require.NoError(t, st.Save(&Session{Token: "old", RefreshToken: "ref", User: &model.User{ID: 1}}))

	require.NoError(t, st.SaveToken("new"))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, "ref", got.RefreshToken)
	require.NotNil(t, got.User)
}

func TestStore_ClearRemovesAllThreeValues(t *testing.T) {
	st := Store{Dir: t.TempDir()}
	require.NoError(t, st.Save(&Session{Token: "t", RefreshToken: "r", User: &model.User{ID: 1}}))
	require.NoError(t, st.Clear())

	got, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Token)
	assert.Empty(t, got.RefreshToken)
	assert.Nil(t, got.User)

	// Clearing an already-clear store is fine.
	require.NoError(t, st.Clear())
}

func TestStore_FileUsesFixedKeys(t *testing.T) {
	st := Store{Dir: t.TempDir()}
	require.NoError(t, st.Save(&Session{Token: "t", RefreshToken: "r", User: &model.User{ID: 1}}))

	b, err := os.ReadFile(filepath.Join(st.Dir, "session.json"))
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Contains(t, raw, KeyToken)
	assert.Contains(t, raw, KeyRefreshToken)
	assert.Contains(t, raw, KeyUser)
}

// unsignedJWT builds a syntactically valid token with the given exp claim.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	claims := enc(map[string]any{"sub": "1", "exp": exp.Unix()})
	return fmt.Sprintf("%s.%s.%s", header, claims, base64.RawURLEncoding.EncodeToString([]byte("sig")))
}

func TestSession_TokenExpiresAt(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	s := &Session{Token: unsignedJWT(t, exp)}

	got, ok := s.TokenExpiresAt()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestSession_TokenExpiresAt_NotAJWT(t *testing.T) {
	s := &Session{Token: "opaque-token"}
	_, ok := s.TokenExpiresAt()
	assert.False(t, ok)

	var nilSess *Session
	_, ok = nilSess.TokenExpiresAt()
	assert.False(t, ok)
}
