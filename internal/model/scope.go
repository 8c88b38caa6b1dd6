package model

// Scope identifies the session a request acts on. The conversation
// history for a scope lives only for the session's lifetime.
type Scope struct {
	SessionID string
	Username  string
}
