package service

import (
	"fmt"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"
)

type BuildingService struct {
	buildingRepo *repository.BuildingRepository
	auditRepo    *repository.AuditRepository
}

func NewBuildingService(
	buildingRepo *repository.BuildingRepository,
	auditRepo *repository.AuditRepository,
) *BuildingService {
	return &BuildingService{
		buildingRepo: buildingRepo,
		auditRepo:    auditRepo,
	}
}

// GetAllBuildings retrieves all buildings
func (s *BuildingService) GetAllBuildings() ([]models.Building, error) {
	return s.buildingRepo.GetAllBuildings()
}

// GetBuildingByID retrieves a building by ID
func (s *BuildingService) GetBuildingByID(id uint) (*models.Building, error) {
	return s.buildingRepo.GetBuildingByID(id)
}

// CreateBuilding creates a new building (admin only)
func (s *BuildingService) CreateBuilding(building *models.Building, userID uint) error {
	if err := s.buildingRepo.CreateBuilding(building); err != nil {
		return fmt.Errorf("failed to create building: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created building: %s (total rooms: %d)", building.Name, building.TotalRooms)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "building_create", details)

	return nil
}

// UpdateBuilding updates an existing building (admin only)
func (s *BuildingService) UpdateBuilding(building *models.Building, userID uint) error {
	if _, err := s.buildingRepo.GetBuildingByID(building.ID); err != nil {
		return err
	}

	if err := s.buildingRepo.UpdateBuilding(building); err != nil {
		return fmt.Errorf("failed to update building: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated building: %s (ID: %d)", building.Name, building.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "building_update", details)

	return nil
}

// DeleteBuilding deletes a building and, by cascade, its rooms (admin only)
func (s *BuildingService) DeleteBuilding(id uint, userID uint) error {
	building, err := s.buildingRepo.GetBuildingByID(id)
	if err != nil {
		return err
	}

	if err := s.buildingRepo.DeleteBuilding(id); err != nil {
		return fmt.Errorf("failed to delete building: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted building: %s (ID: %d)", building.Name, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "building_delete", details)

	return nil
}
