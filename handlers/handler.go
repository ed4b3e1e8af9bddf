package handlers

import (
	"github.com/bandhive/backend/auth"
	"github.com/bandhive/backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

// maxListLimit bounds the page size a client may request on list endpoints.
const maxListLimit = 200

// Handler carries the dependencies shared by all route handlers. Nothing is
// read from package-level state.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func New(db *gorm.DB, tokens *auth.TokenService) *Handler {
	return &Handler{DB: db, Tokens: tokens}
}

// CurrentUser returns the authenticated user injected by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
