package handlers

import (
	"errors"

	"friendbook/friendship"
	"friendbook/middleware"
	"friendbook/models"
	"friendbook/utils"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	svc *friendship.Service
}

func NewFriendshipHandler(svc *friendship.Service) *FriendshipHandler {
	return &FriendshipHandler{svc: svc}
}

type CreateFriendshipRequest struct {
	FriendID string `json:"friend_id"`
}

// Index lists the actor's friendships, pending and accepted.
func (h *FriendshipHandler) Index(c *gin.Context) {
	actorID := middleware.GetUserID(c)

	friendships, err := h.svc.List(actorID)
	if err != nil {
		respondError(c, err, "not found")
		return
	}

	if friendships == nil {
		friendships = []models.FriendshipWithUser{}
	}

	utils.Success(c, friendships)
}

// New returns an unsaved friendship draft for the friend named in the query,
// so the client can render a confirmation view before creating.
func (h *FriendshipHandler) New(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	friendID := c.Query("friend_id")

	draft, err := h.svc.Draft(actorID, friendID)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	utils.Success(c, draft)
}

// Create requests a friendship with the friend named in the body. The
// response carries the success message and the recipient's profile as the
// redirect target.
func (h *FriendshipHandler) Create(c *gin.Context) {
	actorID := middleware.GetUserID(c)

	var req CreateFriendshipRequest
	// An absent or empty body is handled as a missing friend id, not a bind
	// failure.
	_ = c.ShouldBindJSON(&req)

	result, err := h.svc.Request(actorID, req.FriendID)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	utils.Success(c, result)
}

// Accept confirms a pending friendship. Only the recipient may accept.
func (h *FriendshipHandler) Accept(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	friendshipID := c.Param("id")

	result, err := h.svc.Accept(actorID, friendshipID)
	if err != nil {
		respondError(c, err, "friendship not found")
		return
	}

	utils.Success(c, result)
}

// Edit returns a friendship with its counterpart user for display.
func (h *FriendshipHandler) Edit(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	friendshipID := c.Param("id")

	detail, err := h.svc.Get(actorID, friendshipID)
	if err != nil {
		respondError(c, err, "friendship not found")
		return
	}

	utils.Success(c, detail)
}

// respondError maps service errors onto the HTTP surface: missing-parameter
// and validation failures carry a redirect to a safe view, not-found is a
// plain 404, and authorization failures are 403.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, friendship.ErrFriendRequired):
		utils.BadRequestRedirect(c, "Friend required", "/")
	case errors.Is(err, friendship.ErrSelfFriend):
		utils.BadRequestRedirect(c, "cannot add yourself as friend", "/")
	case errors.Is(err, friendship.ErrAlreadyRelated):
		utils.BadRequestRedirect(c, "friendship already exists", "/")
	case errors.Is(err, friendship.ErrNotFound):
		utils.NotFound(c, notFoundMsg)
	case errors.Is(err, friendship.ErrForbidden):
		utils.Forbidden(c, "you are not allowed to do that")
	default:
		utils.InternalError(c, "database error")
	}
}
