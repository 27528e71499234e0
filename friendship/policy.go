package friendship

import "friendbook/models"

// Access rules. Every operation is gated on the acting user's relationship to
// the record: participants may view, only the recipient may accept.

func canView(f *models.Friendship, actorID string) bool {
	return f.IsParticipant(actorID)
}

func canAccept(f *models.Friendship, actorID string) bool {
	return f.RecipientID == actorID
}
