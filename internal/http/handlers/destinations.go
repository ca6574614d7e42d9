package handlers

import (
	"net/http"
	"strings"

	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/destinations
func GetDestinations(c *gin.Context) {
	repo := repositories.DestinationRepository{}
	list, err := repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/destinations/:id
func GetDestinationByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.DestinationRepository{}
	dest, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

type imagePayload struct {
	ImageURL string `json:"image_url"`
}

// POST /api/destinations/:id/image
// A zero-row update is still reported as success; the admin panel
// re-reads the catalog afterwards anyway.
func UpdateDestinationImage(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var payload imagePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	imageURL := strings.TrimSpace(payload.ImageURL)
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
		return
	}

	repo := repositories.DestinationRepository{}
	if err := repo.UpdateImage(id, imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image updated"})
}
