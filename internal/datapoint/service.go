package datapoint

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"pricepoint-api/internal/provider"

	"gorm.io/gorm"
)

var (
	// ErrInvalidProviderRef means the draft's provider field did not
	// parse to a positive integer id.
	ErrInvalidProviderRef = errors.New("provider reference is not a valid id")

	// ErrProviderNotFound means the referenced provider row does not exist.
	ErrProviderNotFound = errors.New("provider not found")
)

type DataPointService struct {
	DB *gorm.DB
}

func NewDataPointService(db *gorm.DB) *DataPointService {
	return &DataPointService{DB: db}
}

func (ds *DataPointService) resolveProvider(ref string) (int, error) {
	providerID, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil || providerID <= 0 {
		return 0, ErrInvalidProviderRef
	}

	var prov provider.Provider
	if err := ds.DB.First(&prov, providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProviderNotFound
		}
		return 0, err
	}
	return providerID, nil
}

func (ds *DataPointService) CreateDataPoint(in DataPointInput) (*DataPoint, error) {
	providerID, err := ds.resolveProvider(in.Provider)
	if err != nil {
		return nil, err
	}

	dp := DataPoint{
		ProviderID: providerID,
		AssetClass: strings.TrimSpace(in.AssetClass),
		Quarter:    strings.TrimSpace(in.Quarter),
		Date:       time.Now(),
	}
	if in.MinPrice != nil {
		dp.MinPrice = *in.MinPrice
	}
	if in.MaxPrice != nil {
		dp.MaxPrice = *in.MaxPrice
	}

	if err := ds.DB.Create(&dp).Error; err != nil {
		return nil, err
	}

	// Return the record with its provider resolved, like the list endpoint
	if err := ds.DB.Preload("Provider").First(&dp, dp.ID).Error; err != nil {
		return nil, err
	}
	return &dp, nil
}

func (ds *DataPointService) GetAllDataPoints() ([]DataPoint, error) {
	var dataPoints []DataPoint
	result := ds.DB.
		Preload("Provider").
		Order("date DESC").
		Find(&dataPoints)
	if result.Error != nil {
		return nil, result.Error
	}
	return dataPoints, nil
}

func (ds *DataPointService) UpdateDataPoint(id int, in DataPointInput) (*DataPoint, error) {
	var dp DataPoint
	if err := ds.DB.First(&dp, id).Error; err != nil {
		return nil, err
	}

	providerID, err := ds.resolveProvider(in.Provider)
	if err != nil {
		return nil, err
	}

	// Full replace of the mutable fields; id and date stay as created
	dp.ProviderID = providerID
	dp.AssetClass = strings.TrimSpace(in.AssetClass)
	dp.Quarter = strings.TrimSpace(in.Quarter)
	if in.MinPrice != nil {
		dp.MinPrice = *in.MinPrice
	}
	if in.MaxPrice != nil {
		dp.MaxPrice = *in.MaxPrice
	}

	if err := ds.DB.Save(&dp).Error; err != nil {
		return nil, err
	}

	if err := ds.DB.Preload("Provider").First(&dp, dp.ID).Error; err != nil {
		return nil, err
	}
	return &dp, nil
}

func (ds *DataPointService) DeleteDataPoint(id int) error {
	result := ds.DB.Delete(&DataPoint{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
