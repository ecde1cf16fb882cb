package provider

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ProviderController struct {
	ProviderService ProviderServiceAPI
}

func (pc *ProviderController) GetAllProviders(c *gin.Context) {
	providers, err := pc.ProviderService.GetAllProviders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Providers fetched successfully",
		"providers": providers,
	})
}

func (pc *ProviderController) AddProvider(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Website *string `json:"website"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider name is required"})
		return
	}

	prov, err := pc.ProviderService.AddProvider(req.Name, req.Website)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Provider added successfully",
		"provider": prov,
	})
}
