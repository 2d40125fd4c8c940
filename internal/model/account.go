package model

import "time"

// Editor access levels. Viewers can read content and previews; editors can
// write content; admins can additionally manage accounts.
const (
	AccessViewer = 0
	AccessEditor = 1
	AccessAdmin  = 100
)

// Account represents an editor account stored in the database.
type Account struct {
	Login        string
	PasswordHash string
	AccessLevel  int
	LastIP       string
	LastActive   time.Time
}

// CanEdit reports whether the account may modify content records.
func (a Account) CanEdit() bool {
	return a.AccessLevel >= AccessEditor
}
