package provider

import (
	"strings"

	"gorm.io/gorm"
)

type ProviderServiceAPI interface {
	GetAllProviders() ([]Provider, error)
	AddProvider(name string, website *string) (*Provider, error)
}

type ProviderService struct {
	DB *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{DB: db}
}

func (ps *ProviderService) GetAllProviders() ([]Provider, error) {
	var providers []Provider
	result := ps.DB.Order("name ASC").Find(&providers)
	if result.Error != nil {
		return nil, result.Error
	}
	return providers, nil
}

func (ps *ProviderService) AddProvider(name string, website *string) (*Provider, error) {
	prov := Provider{Name: strings.TrimSpace(name), Website: website}
	if err := ps.DB.Create(&prov).Error; err != nil {
		return nil, err
	}
	return &prov, nil
}
