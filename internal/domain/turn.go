package domain

import "time"

// ConversationTurn is one user/bot exchange plus its classified intent.
type ConversationTurn struct {
	ID        string
	Timestamp time.Time
	User      string
	Bot       string
	Intent    Intent
}
