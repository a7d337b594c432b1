package repository

import (
	"errors"

	"uninest-housing-api/internal/models"

	"gorm.io/gorm"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// GetAllBuildings retrieves all buildings ordered by name
func (r *BuildingRepository) GetAllBuildings() ([]models.Building, error) {
	var buildings []models.Building
	err := r.db.Order("name ASC").Find(&buildings).Error
	return buildings, err
}

// GetBuildingByID retrieves a building by ID
func (r *BuildingRepository) GetBuildingByID(id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	return &building, nil
}

// CreateBuilding creates a new building
func (r *BuildingRepository) CreateBuilding(building *models.Building) error {
	return r.db.Create(building).Error
}

// UpdateBuilding updates an existing building
func (r *BuildingRepository) UpdateBuilding(building *models.Building) error {
	return r.db.Save(building).Error
}

// DeleteBuilding deletes a building; owned rooms cascade at the store level
func (r *BuildingRepository) DeleteBuilding(id uint) error {
	return r.db.Delete(&models.Building{}, id).Error
}

// CountRooms returns the number of rooms referencing a building
func (r *BuildingRepository) CountRooms(buildingID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).
		Where("building_id = ?", buildingID).
		Count(&count).Error
	return count, err
}
