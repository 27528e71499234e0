package friendship

import "errors"

var (
	// ErrFriendRequired means the friend identifier was absent from the
	// request entirely, as opposed to naming a user that does not exist.
	ErrFriendRequired = errors.New("friend id required")

	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor is not the participant allowed to perform
	// the operation on this friendship.
	ErrForbidden = errors.New("forbidden")

	ErrSelfFriend = errors.New("cannot befriend yourself")

	// ErrAlreadyRelated means a friendship already exists between the pair,
	// pending or accepted, in either direction.
	ErrAlreadyRelated = errors.New("friendship already exists")
)
