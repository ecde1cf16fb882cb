package datapoint

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pricepoint-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DataPointController struct {
	DataPointService DataPointServiceAPI
	LogService       LogServicePort
}

func (dc *DataPointController) GetAllDataPoints(c *gin.Context) {
	var filters DataPointFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataPoints, err := dc.DataPointService.GetAllDataPoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Data points fetched successfully",
		"data_points": FilterDataPoints(dataPoints, filters),
	})
}

func (dc *DataPointController) CreateDataPoint(c *gin.Context) {
	var input DataPointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msgs := ValidateDataPoint(input); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	dp, err := dc.DataPointService.CreateDataPoint(input)
	if err != nil {
		dc.respondServiceError(c, err)
		return
	}

	dc.audit("create_data_point", "Data point created", dp)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Data point created successfully",
		"data_point": dp,
	})
}

func (dc *DataPointController) UpdateDataPoint(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input DataPointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msgs := ValidateDataPoint(input); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	dp, err := dc.DataPointService.UpdateDataPoint(id, input)
	if err != nil {
		dc.respondServiceError(c, err)
		return
	}

	dc.audit("update_data_point", "Data point updated", dp)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Data point updated successfully",
		"data_point": dp,
	})
}

func (dc *DataPointController) DeleteDataPoint(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := dc.DataPointService.DeleteDataPoint(id); err != nil {
		dc.respondServiceError(c, err)
		return
	}

	dc.audit("delete_data_point", "Data point deleted", map[string]int{"id": id})

	c.JSON(http.StatusOK, gin.H{
		"message": "Data point deleted successfully",
	})
}

func (dc *DataPointController) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidProviderRef):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrProviderNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (dc *DataPointController) audit(action, message string, metadata interface{}) {
	if dc.LogService == nil {
		return
	}

	entry := logs.SystemLog{
		Level:   "info",
		Service: "datapoint",
		Action:  action,
		Message: message,
	}
	if dp, ok := metadata.(*DataPoint); ok && dp != nil {
		entry.Tags = pq.StringArray{dp.AssetClass, dp.Quarter}
	}

	// Audit failures must not fail the request
	_ = dc.LogService.Log(entry, metadata)
}

func parseIDParam(c *gin.Context) (int, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid data point id is required"})
		return 0, false
	}
	return id, true
}
