// Package auth implements the editor sign-in lifecycle: bcrypt password
// checks, short-lived JWT access tokens, and refresh sessions with idle
// expiry. Clients detect an expired access token and call refresh; signing
// out removes the session server-side.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/slopworks/cultivator/internal/model"
)

// ErrInvalidCredentials is returned for unknown accounts and wrong
// passwords alike, so responses don't leak which logins exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired is returned when a refresh token is unknown or idle
// past the session TTL.
var ErrSessionExpired = errors.New("session expired")

// AccountSource is the account storage the authenticator reads.
type AccountSource interface {
	GetAccount(ctx context.Context, login string) (*model.Account, error)
	CreateAccount(ctx context.Context, login, passwordHash, ip string) error
	UpdateLastLogin(ctx context.Context, login, ip string) error
}

// Credentials is what a client holds after sign-in or refresh.
type Credentials struct {
	Login        string    `json:"login"`
	AccessLevel  int       `json:"accessLevel"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Authenticator drives the session lifecycle over an account source.
type Authenticator struct {
	accounts   AccountSource
	sessions   *SessionManager
	signingKey []byte
	sessionTTL time.Duration
	accessTTL  time.Duration
	autoCreate bool
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(accounts AccountSource, sessions *SessionManager, signingKey []byte, sessionTTL, accessTTL time.Duration, autoCreate bool) *Authenticator {
	return &Authenticator{
		accounts:   accounts,
		sessions:   sessions,
		signingKey: signingKey,
		sessionTTL: sessionTTL,
		accessTTL:  accessTTL,
		autoCreate: autoCreate,
	}
}

// SignIn verifies the password and opens a session.
func (a *Authenticator) SignIn(ctx context.Context, login, password, ip string) (Credentials, error) {
	acc, err := a.accounts.GetAccount(ctx, login)
	if err != nil {
		return Credentials{}, fmt.Errorf("loading account: %w", err)
	}
	if acc == nil {
		if !a.autoCreate {
			return Credentials{}, ErrInvalidCredentials
		}
		hash, err := HashPassword(password)
		if err != nil {
			return Credentials{}, err
		}
		if err := a.accounts.CreateAccount(ctx, login, hash, ip); err != nil {
			return Credentials{}, fmt.Errorf("auto-creating account: %w", err)
		}
		acc, err = a.accounts.GetAccount(ctx, login)
		if err != nil || acc == nil {
			return Credentials{}, fmt.Errorf("reloading auto-created account %q: %w", login, err)
		}
	} else if !CheckPassword(acc.PasswordHash, password) {
		slog.Warn("failed sign-in", "login", login, "ip", ip)
		return Credentials{}, ErrInvalidCredentials
	}

	if err := a.accounts.UpdateLastLogin(ctx, acc.Login, ip); err != nil {
		slog.Warn("updating last login", "login", acc.Login, "err", err)
	}

	info := a.sessions.Issue(acc.Login, acc.AccessLevel)
	return a.credentials(info)
}

// Refresh rotates the session and issues a fresh access token.
func (a *Authenticator) Refresh(refreshToken string) (Credentials, error) {
	info := a.sessions.Refresh(refreshToken, a.sessionTTL)
	if info == nil {
		return Credentials{}, ErrSessionExpired
	}
	return a.credentials(info)
}

// SignOut removes the session. Unknown tokens are a no-op.
func (a *Authenticator) SignOut(refreshToken string) {
	a.sessions.Remove(refreshToken)
}

// VerifyAccess parses and validates a bearer access token.
func (a *Authenticator) VerifyAccess(raw string) (AccessClaims, error) {
	return ParseAccessToken(raw, a.signingKey)
}

func (a *Authenticator) credentials(info *SessionInfo) (Credentials, error) {
	access, err := NewAccessToken(info.Login, info.AccessLevel, a.signingKey, a.accessTTL)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		Login:        info.Login,
		AccessLevel:  info.AccessLevel,
		AccessToken:  access,
		RefreshToken: info.RefreshToken,
		ExpiresAt:    time.Now().Add(a.accessTTL),
	}, nil
}
