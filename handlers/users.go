package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bandhive/backend/auth"
	"github.com/bandhive/backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserUpdate carries a partial update; nil fields are left untouched.
// Username is immutable after creation and password changes are not part of
// this surface.
type UserUpdate struct {
	ID    uint    `json:"id" binding:"required"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Image *string `json:"image"`
}

// CreateUser handles POST /v1/user/create
func (h *Handler) CreateUser(c *gin.Context) {
	var req Request[CreateUserRequest]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hash, err := auth.HashPassword(req.Parameter.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Parameter.Name,
		Username:     req.Parameter.Username,
		Email:        req.Parameter.Email,
		Image:        req.Parameter.Image,
		PasswordHash: hash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, envelope("User created successfully", user))
}

// GetUsers handles GET /v1/user/ with skip/limit pagination
func (h *Handler) GetUsers(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 || limit > maxListLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	users := []models.User{}
	if err := h.DB.Order("id").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, envelope("Successfully fetched all data", users))
}

// GetUserByID handles GET /v1/user/:id
func (h *Handler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with id %d does not exist", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, envelope("Successfully fetched data", user))
}

// UpdateUser handles PATCH /v1/user/update - only provided fields change
func (h *Handler) UpdateUser(c *gin.Context) {
	var req Request[UserUpdate]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, req.Parameter.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with id %d does not exist", req.Parameter.ID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	updates := map[string]interface{}{}
	if req.Parameter.Name != nil {
		updates["name"] = *req.Parameter.Name
	}
	if req.Parameter.Email != nil {
		updates["email"] = *req.Parameter.Email
	}
	if req.Parameter.Image != nil {
		updates["image"] = *req.Parameter.Image
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	c.JSON(http.StatusOK, envelope("Successfully updated data", user))
}

// DeleteUser handles DELETE /v1/user/delete
func (h *Handler) DeleteUser(c *gin.Context) {
	var req Request[IDParam]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, req.Parameter.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with id %d does not exist", req.Parameter.ID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, envelope[any]("Successfully deleted data", nil))
}
