package repository

import (
	"errors"

	"uninest-housing-api/internal/models"

	"gorm.io/gorm"
)

type ResidentRepository struct {
	db *gorm.DB
}

func NewResidentRepo(db *gorm.DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

// ResidentFilter carries the list query parameters for residents
type ResidentFilter struct {
	RoomID     *uint
	BuildingID *uint
	Search     string
	Ordering   string
}

var residentOrderColumns = map[string]string{
	"last_name":  "residents.last_name",
	"first_name": "residents.first_name",
}

// ListResidents retrieves residents matching the filter with rooms preloaded
func (r *ResidentRepository) ListResidents(filter ResidentFilter) ([]models.Resident, error) {
	q := r.db.Model(&models.Resident{}).Preload("Room")

	if filter.RoomID != nil {
		q = q.Where("residents.room_id = ?", *filter.RoomID)
	}
	if filter.BuildingID != nil {
		q = q.Joins("JOIN rooms ON rooms.id = residents.room_id").
			Where("rooms.building_id = ?", *filter.BuildingID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("residents.first_name LIKE ? OR residents.last_name LIKE ? OR residents.email LIKE ?",
			like, like, like)
	}

	q = q.Order(orderClause(filter.Ordering, residentOrderColumns, "residents.last_name ASC, residents.first_name ASC"))

	var residents []models.Resident
	err := q.Find(&residents).Error
	return residents, err
}

// GetResidentByID retrieves a resident by ID with the room preloaded
func (r *ResidentRepository) GetResidentByID(id uint) (*models.Resident, error) {
	var resident models.Resident
	err := r.db.Preload("Room").First(&resident, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidentNotFound
		}
		return nil, err
	}
	return &resident, nil
}

// FindResidentByEmail retrieves a resident by exact email match
func (r *ResidentRepository) FindResidentByEmail(email string) (*models.Resident, error) {
	var resident models.Resident
	err := r.db.Preload("Room").Where("email = ?", email).First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidentNotFound
		}
		return nil, err
	}
	return &resident, nil
}

// DeleteResident deletes a resident
func (r *ResidentRepository) DeleteResident(id uint) error {
	return r.db.Delete(&models.Resident{}, id).Error
}
