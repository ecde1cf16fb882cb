package provider

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, providerService ProviderServiceAPI) {
	providerController := &ProviderController{ProviderService: providerService}

	providerGroup := r.Group("/api/providers")
	{
		providerGroup.GET("", providerController.GetAllProviders)
		providerGroup.POST("", providerController.AddProvider)
	}
}
