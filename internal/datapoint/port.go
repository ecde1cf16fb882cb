package datapoint

import (
	"pricepoint-api/internal/logs"
)

type DataPointServiceAPI interface {
	CreateDataPoint(in DataPointInput) (*DataPoint, error)
	GetAllDataPoints() ([]DataPoint, error)
	UpdateDataPoint(id int, in DataPointInput) (*DataPoint, error)
	DeleteDataPoint(id int) error
}

type LogServicePort interface {
	Log(log logs.SystemLog, metadata interface{}) error
}
