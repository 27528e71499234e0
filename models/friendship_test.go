package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsParticipant(t *testing.T) {
	f := &Friendship{RequesterID: "jason", RecipientID: "mike"}

	assert.True(t, f.IsParticipant("jason"))
	assert.True(t, f.IsParticipant("mike"))
	assert.False(t, f.IsParticipant("jim"))
}

func TestCounterpartID(t *testing.T) {
	f := &Friendship{RequesterID: "jason", RecipientID: "mike"}

	assert.Equal(t, "mike", f.CounterpartID("jason"))
	assert.Equal(t, "jason", f.CounterpartID("mike"))
}

func TestStatusLine(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	pending := &Friendship{State: StatePending, UpdatedAt: at}
	assert.Equal(t, "Friendship is pending.", pending.StatusLine())

	accepted := &Friendship{State: StateAccepted, UpdatedAt: at}
	assert.Equal(t, "Friendship started "+at.Format(time.RFC1123)+".", accepted.StatusLine())
}

func TestFullName(t *testing.T) {
	u := &User{FirstName: "Jason", LastName: "Seifer"}
	assert.Equal(t, "Jason Seifer", u.FullName())
	assert.Equal(t, "Jason Seifer", u.ToResponse().FullName)
}
