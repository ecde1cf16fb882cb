package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService SettingsServiceAPI
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	classes, err := sc.SettingsService.GetAssetClasses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset_classes": classes,
	})
}

func (sc *SettingsController) SetAssetClasses(c *gin.Context) {
	var req struct {
		AssetClasses []string `json:"asset_classes" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.SettingsService.SetAssetClasses(req.AssetClasses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset classes updated successfully",
	})
}
