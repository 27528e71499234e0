// Package friendship implements the friendship lifecycle: requesting,
// accepting, listing, and inspecting friend connections between users.
//
// A friendship is one directional record per pair: the requester creates it
// pending, the recipient accepts it. Every operation takes the acting user's
// id explicitly; there is no ambient current-user state.
package friendship

import (
	"errors"
	"fmt"
	"time"

	"friendbook/models"
	"friendbook/store"
	"friendbook/utils"

	"github.com/sirupsen/logrus"
)

// UserFinder resolves user ids to users.
type UserFinder interface {
	FindByID(id string) (*models.User, error)
}

// RelationshipStore persists friendship records.
type RelationshipStore interface {
	Create(f *models.Friendship) error
	FindByID(id string) (*models.Friendship, error)
	Accept(id string, at time.Time) (bool, error)
	ListForUser(userID string) ([]models.FriendshipWithUser, error)
}

type Service struct {
	users       UserFinder
	friendships RelationshipStore
	now         func() time.Time
	newID       func() string
}

func NewService(users UserFinder, friendships RelationshipStore) *Service {
	return &Service{
		users:       users,
		friendships: friendships,
		now:         time.Now,
		newID:       utils.GenerateUUID,
	}
}

// Draft is the unsaved friendship shown on the new-request view.
type Draft struct {
	Friendship *models.Friendship   `json:"friendship"`
	Recipient  *models.UserResponse `json:"recipient"`
}

// RequestResult is a created friendship plus what the caller needs to render
// the response: a flash-style message and where to send the user next.
type RequestResult struct {
	Friendship *models.Friendship   `json:"friendship"`
	Recipient  *models.UserResponse `json:"recipient"`
	Message    string               `json:"message"`
	Redirect   string               `json:"redirect"`
}

type AcceptResult struct {
	Friendship  *models.Friendship   `json:"friendship"`
	Counterpart *models.UserResponse `json:"counterpart"`
	Message     string               `json:"message"`
}

// Detail is a friendship plus its counterpart user, for the edit view.
type Detail struct {
	Friendship  *models.Friendship   `json:"friendship"`
	Counterpart *models.UserResponse `json:"counterpart"`
}

// List returns every friendship the actor participates in, each carrying the
// counterpart user and a display line describing the state.
func (s *Service) List(actorID string) ([]models.FriendshipWithUser, error) {
	friendships, err := s.friendships.ListForUser(actorID)
	if err != nil {
		return nil, err
	}
	for i := range friendships {
		friendships[i].Display = friendships[i].StatusLine()
	}
	return friendships, nil
}

// Draft resolves the intended friend and returns an unsaved pending
// friendship with the actor as requester. Nothing is persisted.
func (s *Service) Draft(actorID, friendID string) (*Draft, error) {
	if friendID == "" {
		return nil, ErrFriendRequired
	}

	recipient, err := s.users.FindByID(friendID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Draft{
		Friendship: &models.Friendship{
			RequesterID: actorID,
			RecipientID: recipient.ID,
			State:       models.StatePending,
		},
		Recipient: recipient.ToResponse(),
	}, nil
}

// Request creates a pending friendship from the actor to the named user.
// Checks run in order: parameter presence, self-reference, recipient lookup,
// then the conditional insert which enforces pair uniqueness.
func (s *Service) Request(actorID, friendID string) (*RequestResult, error) {
	if friendID == "" {
		return nil, ErrFriendRequired
	}
	if friendID == actorID {
		return nil, ErrSelfFriend
	}

	recipient, err := s.users.FindByID(friendID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	f := &models.Friendship{
		ID:          s.newID(),
		RequesterID: actorID,
		RecipientID: recipient.ID,
		State:       models.StatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.friendships.Create(f); err != nil {
		if errors.Is(err, store.ErrAlreadyRelated) {
			return nil, ErrAlreadyRelated
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"friendship_id": f.ID,
		"requester_id":  actorID,
		"recipient_id":  recipient.ID,
	}).Info("Friendship requested")

	return &RequestResult{
		Friendship: f,
		Recipient:  recipient.ToResponse(),
		Message:    fmt.Sprintf("You are now friends with %s", recipient.FullName()),
		Redirect:   "/profile/" + recipient.ID,
	}, nil
}

// Accept transitions a pending friendship to accepted. Only the recipient may
// accept; accepting an already-accepted friendship is a no-op that still
// succeeds.
func (s *Service) Accept(actorID, friendshipID string) (*AcceptResult, error) {
	f, err := s.friendships.FindByID(friendshipID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !canAccept(f, actorID) {
		return nil, ErrForbidden
	}

	if f.State != models.StateAccepted {
		at := s.now()
		transitioned, err := s.friendships.Accept(f.ID, at)
		if err != nil {
			return nil, err
		}
		f.State = models.StateAccepted
		if transitioned {
			f.UpdatedAt = at
		}

		logrus.WithFields(logrus.Fields{
			"friendship_id": f.ID,
			"recipient_id":  actorID,
		}).Info("Friendship accepted")
	}

	counterpart, err := s.users.FindByID(f.CounterpartID(actorID))
	if err != nil {
		return nil, fmt.Errorf("lookup counterpart: %w", err)
	}

	return &AcceptResult{
		Friendship:  f,
		Counterpart: counterpart.ToResponse(),
		Message:     fmt.Sprintf("You are now friends with %s", counterpart.FirstName),
	}, nil
}

// Get returns a friendship with its counterpart user. Only participants may
// view it.
func (s *Service) Get(actorID, friendshipID string) (*Detail, error) {
	f, err := s.friendships.FindByID(friendshipID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !canView(f, actorID) {
		return nil, ErrForbidden
	}

	counterpart, err := s.users.FindByID(f.CounterpartID(actorID))
	if err != nil {
		return nil, fmt.Errorf("lookup counterpart: %w", err)
	}

	return &Detail{
		Friendship:  f,
		Counterpart: counterpart.ToResponse(),
	}, nil
}
