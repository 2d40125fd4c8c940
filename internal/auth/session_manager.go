package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionManager tracks refresh sessions for signed-in editor accounts.
// Thread-safe via sync.Map for read-heavy access from the HTTP middleware.
type SessionManager struct {
	sessions sync.Map // map[string]*SessionInfo, keyed by refresh token
}

// SessionInfo holds one signed-in session. Exported so tests can manipulate
// CreatedAt/LastRefresh directly.
type SessionInfo struct {
	RefreshToken string
	Login        string
	AccessLevel  int
	CreatedAt    time.Time
	LastRefresh  time.Time
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Issue creates a new session for the account and returns its refresh token.
func (sm *SessionManager) Issue(login string, accessLevel int) *SessionInfo {
	now := time.Now()
	info := &SessionInfo{
		RefreshToken: uuid.NewString(),
		Login:        login,
		AccessLevel:  accessLevel,
		CreatedAt:    now,
		LastRefresh:  now,
	}
	sm.sessions.Store(info.RefreshToken, info)
	return info
}

// Resolve returns the session for a refresh token, or nil if unknown or
// older than ttl since its last refresh.
func (sm *SessionManager) Resolve(refreshToken string, ttl time.Duration) *SessionInfo {
	val, ok := sm.sessions.Load(refreshToken)
	if !ok {
		return nil
	}
	info := val.(*SessionInfo)
	if time.Since(info.LastRefresh) > ttl {
		sm.sessions.Delete(refreshToken)
		return nil
	}
	return info
}

// Refresh rotates the refresh token and extends the session window.
// Returns nil if the token is unknown or expired.
func (sm *SessionManager) Refresh(refreshToken string, ttl time.Duration) *SessionInfo {
	info := sm.Resolve(refreshToken, ttl)
	if info == nil {
		return nil
	}
	sm.sessions.Delete(refreshToken)

	rotated := &SessionInfo{
		RefreshToken: uuid.NewString(),
		Login:        info.Login,
		AccessLevel:  info.AccessLevel,
		CreatedAt:    info.CreatedAt,
		LastRefresh:  time.Now(),
	}
	sm.sessions.Store(rotated.RefreshToken, rotated)
	return rotated
}

// Remove signs the session out.
func (sm *SessionManager) Remove(refreshToken string) {
	sm.sessions.Delete(refreshToken)
}

// RemoveAccount signs out every session belonging to the login.
func (sm *SessionManager) RemoveAccount(login string) {
	sm.sessions.Range(func(key, value any) bool {
		if value.(*SessionInfo).Login == login {
			sm.sessions.Delete(key)
		}
		return true
	})
}

// CleanExpired removes sessions idle longer than ttl.
func (sm *SessionManager) CleanExpired(ttl time.Duration) {
	now := time.Now()
	sm.sessions.Range(func(key, value any) bool {
		info := value.(*SessionInfo)
		if now.Sub(info.LastRefresh) > ttl {
			sm.sessions.Delete(key)
		}
		return true
	})
}

// Count returns the number of active sessions.
func (sm *SessionManager) Count() int {
	count := 0
	sm.sessions.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// StoreInfo stores a prepared SessionInfo (for tests that manipulate time).
func (sm *SessionManager) StoreInfo(info *SessionInfo) {
	sm.sessions.Store(info.RefreshToken, info)
}
