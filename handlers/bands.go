package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bandhive/backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BandInput is the create body for a band.
type BandInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// BandUpdate carries a partial update; nil fields are left untouched.
type BandUpdate struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// CreateBand handles POST /v1/band/create
func (h *Handler) CreateBand(c *gin.Context) {
	var req Request[BandInput]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	band := models.Band{
		Name:        req.Parameter.Name,
		Description: req.Parameter.Description,
		Image:       req.Parameter.Image,
	}
	if err := h.DB.Create(&band).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create band"})
		return
	}

	c.JSON(http.StatusOK, envelope("Band created successfully", band))
}

// GetBands handles GET /v1/band/ with skip/limit pagination
func (h *Handler) GetBands(c *gin.Context) {
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

	bands := []models.Band{}
	if err := h.DB.Order("id").Offset(skip).Limit(limit).Find(&bands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bands"})
		return
	}

	c.JSON(http.StatusOK, envelope("Successfully fetched all data", bands))
}

// GetBandByID handles GET /v1/band/:id
func (h *Handler) GetBandByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid band id"})
		return
	}

	var band models.Band
	if err := h.DB.First(&band, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Band with id %d does not exist", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch band"})
		return
	}

	c.JSON(http.StatusOK, envelope("Successfully fetched data", band))
}

// UpdateBand handles PATCH /v1/band/update - only provided fields change
func (h *Handler) UpdateBand(c *gin.Context) {
	var req Request[BandUpdate]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var band models.Band
	if err := h.DB.First(&band, req.Parameter.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Band with id %d does not exist", req.Parameter.ID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch band"})
		return
	}

	updates := map[string]interface{}{}
	if req.Parameter.Name != nil {
		updates["name"] = *req.Parameter.Name
	}
	if req.Parameter.Description != nil {
		updates["description"] = *req.Parameter.Description
	}
	if req.Parameter.Image != nil {
		updates["image"] = *req.Parameter.Image
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&band).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update band"})
			return
		}
	}

	c.JSON(http.StatusOK, envelope("Successfully updated data", band))
}

// DeleteBand handles DELETE /v1/band/delete
func (h *Handler) DeleteBand(c *gin.Context) {
	var req Request[IDParam]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var band models.Band
	if err := h.DB.First(&band, req.Parameter.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Band with id %d does not exist", req.Parameter.ID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch band"})
		return
	}

	if err := h.DB.Delete(&band).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete band"})
		return
	}

	c.JSON(http.StatusOK, envelope[any]("Successfully deleted data", nil))
}
