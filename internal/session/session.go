package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ideaboard-cli/internal/model"
)

// The session is the only durable client state: three string values under
// fixed keys, cleared together on logout or irrecoverable auth failure.
const (
	KeyToken        = "ideaboard_token"
	KeyRefreshToken = "ideaboard_refresh_token"
	KeyUser         = "ideaboard_user"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Session is the in-memory view of the persisted auth state. It is
// constructed explicitly at startup and passed to whatever needs it; there is
// no ambient singleton.
type Session struct {
	Token        string
	RefreshToken string
	User         *model.User
}

func (s *Session) LoggedIn() bool { return s != nil && s.Token != "" }

// TokenExpiresAt extracts the exp claim without verifying the signature.
// The client has no signing key; expiry is display/diagnostic only.
func (s *Session) TokenExpiresAt() (time.Time, bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Store persists the session as a single JSON file under Dir.
type Store struct {
	Dir string
}

// DefaultStore resolves the per-user session location
// (~/.config/ideaboard on most platforms).
func DefaultStore() (Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Store{}, err
	}
	return Store{Dir: filepath.Join(base, "ideaboard")}, nil
}

func (st Store) path() string { return filepath.Join(st.Dir, "session.json") }

type fileShape struct {
	Token        string `json:"ideaboard_token,omitempty"`
	RefreshToken string `json:"ideaboard_refresh_token,omitempty"`
	User         string `json:"ideaboard_user,omitempty"`
}

// Load hydrates the session from disk. A missing file yields an empty
// session, not an error.
func (st Store) Load() (*Session, error) {
	b, err := os.ReadFile(st.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, err
	}
	var f fileShape
	if err := json.Unmarshal(b, &f); err != nil {
		// Corrupt session file: treat as logged out rather than wedging the app.
		return &Session{}, nil
	}
	s := &Session{Token: f.Token, RefreshToken: f.RefreshToken}
	if f.User != "" {
		var u model.User
		if err := json.Unmarshal([]byte(f.User), &u); err == nil {
			s.User = &u
		}
	}
	return s, nil
}

func (st Store) Save(s *Session) error {
	f := fileShape{Token: s.Token, RefreshToken: s.RefreshToken}
	if s.User != nil {
		ub, err := json.Marshal(s.User)
		if err != nil {
			return err
		}
		f.User = string(ub)
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(st.Dir, 0o700); err != nil {
		return err
	}
	// Write via temp+rename so a crash never leaves a torn session file.
	tmp := st.path() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, st.path())
}

// SaveToken persists a new access token, leaving the refresh token and
// cached user untouched (the 401 refresh path).
func (st Store) SaveToken(token string) error {
	s, err := st.Load()
	if err != nil {
		return err
	}
	s.Token = token
	return st.Save(s)
}

// Clear removes all persisted session state. All three values go together.
func (st Store) Clear() error {
	err := os.Remove(st.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
