package handlers

import (
	"net/http"

	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/packages
func GetPackages(c *gin.Context) {
	repo := repositories.PackageRepository{}
	list, err := repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/packages/destination/:id
func GetPackagesByDestination(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.PackageRepository{}
	list, err := repo.ListByDestination(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/packages/:id
func GetPackageByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.PackageRepository{}
	pkg, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}
