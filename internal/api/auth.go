package api

import (
	"context"

	"ideaboard-cli/internal/model"
)

// AuthService handles login/registration and session persistence.
type AuthService struct{ c *Client }

func (c *Client) Auth() AuthService { return AuthService{c} }

// Login authenticates and persists the returned session (access token,
// refresh token, cached user) together.
func (s AuthService) Login(ctx context.Context, username, password string) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	req := model.LoginRequest{Username: username, Password: password}
	if err := s.c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	s.c.sess.Token = resp.Token
	s.c.sess.RefreshToken = resp.RefreshToken
	u := resp.User
	s.c.sess.User = &u
	if err := s.c.store.Save(s.c.sess); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := s.c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	s.c.sess.Token = resp.Token
	s.c.sess.RefreshToken = resp.RefreshToken
	u := resp.User
	s.c.sess.User = &u
	if err := s.c.store.Save(s.c.sess); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it. The client also does this silently on a 401.
func (s AuthService) Refresh(ctx context.Context) error {
	return s.c.refresh(ctx)
}

// Logout clears the persisted session. The server keeps no session state, so
// this is purely local.
func (s AuthService) Logout() error {
	s.c.sess.Token = ""
	s.c.sess.RefreshToken = ""
	s.c.sess.User = nil
	return s.c.store.Clear()
}
