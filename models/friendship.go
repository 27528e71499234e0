package models

import "time"

// State is the lifecycle state of a friendship. A friendship starts out
// pending and moves to accepted when the recipient confirms it; accepted is
// terminal.
type State string

const (
	StatePending  State = "pending"
	StateAccepted State = "accepted"
)

type Friendship struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	RecipientID string    `json:"recipient_id"`
	State       State     `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FriendshipWithUser struct {
	Friendship
	Counterpart UserResponse `json:"counterpart"`
	Display     string       `json:"display"`
}

// IsParticipant reports whether userID is either side of the friendship.
func (f *Friendship) IsParticipant(userID string) bool {
	return f.RequesterID == userID || f.RecipientID == userID
}

// CounterpartID returns the participant that is not userID. Callers must
// check IsParticipant first; for a non-participant the recipient is returned.
func (f *Friendship) CounterpartID(userID string) string {
	if f.RequesterID == userID {
		return f.RecipientID
	}
	return f.RequesterID
}

// StatusLine is the human-readable state shown on the friendship index.
func (f *Friendship) StatusLine() string {
	if f.State == StateAccepted {
		return "Friendship started " + f.UpdatedAt.Format(time.RFC1123) + "."
	}
	return "Friendship is pending."
}
