package chat

import "time"

// Message is one entry in a chat session
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
	Source    string    `json:"source,omitempty"`
}

// Transcript is a finished (or cleared) session ready for archiving
type Transcript struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Language  string    `json:"language"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Messages  []Message `json:"messages"`
}

// UserMessages counts the messages typed by the user
func (t Transcript) UserMessages() int {
	n := 0
	for _, m := range t.Messages {
		if m.IsUser {
			n++
		}
	}
	return n
}
