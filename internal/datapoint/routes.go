package datapoint

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dataPointService DataPointServiceAPI, logService LogServicePort) {
	dataPointController := &DataPointController{
		DataPointService: dataPointService,
		LogService:       logService,
	}

	dataPointGroup := r.Group("/api/datapoints")
	{
		dataPointGroup.GET("", dataPointController.GetAllDataPoints)
		dataPointGroup.POST("", dataPointController.CreateDataPoint)
		dataPointGroup.PUT("/:id", dataPointController.UpdateDataPoint)
		dataPointGroup.DELETE("/:id", dataPointController.DeleteDataPoint)
	}
}
