package repository

import (
	"errors"

	"uninest-housing-api/internal/models"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListRequests retrieves all maintenance requests, most recent first
func (r *MaintenanceRepository) ListRequests() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.Preload("Room").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// GetRequestByID retrieves a maintenance request by ID with the room preloaded
func (r *MaintenanceRepository) GetRequestByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.Preload("Room").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// CreateRequest creates a new maintenance request
func (r *MaintenanceRepository) CreateRequest(request *models.MaintenanceRequest) error {
	return r.db.Create(request).Error
}

// UpdateRequest updates an existing maintenance request
func (r *MaintenanceRepository) UpdateRequest(request *models.MaintenanceRequest) error {
	return r.db.Save(request).Error
}

// DeleteRequest deletes a maintenance request
func (r *MaintenanceRepository) DeleteRequest(id uint) error {
	return r.db.Delete(&models.MaintenanceRequest{}, id).Error
}
