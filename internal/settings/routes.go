package settings

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, settingsService SettingsServiceAPI) {
	settingsController := &SettingsController{SettingsService: settingsService}

	settingsGroup := r.Group("/api/settings")
	{
		settingsGroup.GET("", settingsController.GetSettings)
		settingsGroup.PUT("/asset-classes", settingsController.SetAssetClasses)
	}
}
