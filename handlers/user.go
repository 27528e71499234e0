package handlers

import (
	"errors"

	"friendbook/middleware"
	"friendbook/models"
	"friendbook/store"
	"friendbook/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.users.FindByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, user.ToResponse())
}

// SearchUsers finds users by username or name, so the actor can pick a friend
// to request.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.BadRequest(c, "search query required")
		return
	}

	users, err := h.users.Search(q, 20)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	results := []models.UserResponse{}
	for _, user := range users {
		results = append(results, *user.ToResponse())
	}

	utils.Success(c, results)
}
