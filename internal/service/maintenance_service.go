package service

import (
	"fmt"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"
)

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	roomRepo        *repository.RoomRepository
	auditRepo       *repository.AuditRepository
}

func NewMaintenanceService(
	maintenanceRepo *repository.MaintenanceRepository,
	roomRepo *repository.RoomRepository,
	auditRepo *repository.AuditRepository,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
		auditRepo:       auditRepo,
	}
}

// ListRequests retrieves all maintenance requests
func (s *MaintenanceService) ListRequests() ([]models.MaintenanceRequestResponse, error) {
	requests, err := s.maintenanceRepo.ListRequests()
	if err != nil {
		return nil, err
	}

	responses := make([]models.MaintenanceRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].Response())
	}
	return responses, nil
}

// GetRequest retrieves a maintenance request by ID
func (s *MaintenanceService) GetRequest(id uint) (*models.MaintenanceRequestResponse, error) {
	request, err := s.maintenanceRepo.GetRequestByID(id)
	if err != nil {
		return nil, err
	}
	resp := request.Response()
	return &resp, nil
}

// CreateRequest files a maintenance request against a room. The room must be
// occupied at the time of the call; its persisted flag is the authority.
func (s *MaintenanceService) CreateRequest(roomID uint, description string, userID uint) (*models.MaintenanceRequestResponse, error) {
	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if !room.IsOccupied {
		return nil, ErrRoomNotOccupied
	}

	request := &models.MaintenanceRequest{
		RoomID:      roomID,
		Description: description,
		Status:      models.StatusPending,
	}
	if err := s.maintenanceRepo.CreateRequest(request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Filed maintenance request for room %s (ID: %d)", room.RoomNumber, request.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "maintenance_create", details)

	return s.GetRequest(request.ID)
}

// UpdateRequest updates a request's description and status. Timestamps stay
// server-managed; the room reference is fixed at creation.
func (s *MaintenanceService) UpdateRequest(id uint, description string, status models.RequestStatus, userID uint) (*models.MaintenanceRequestResponse, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	request, err := s.maintenanceRepo.GetRequestByID(id)
	if err != nil {
		return nil, err
	}

	request.Description = description
	request.Status = status
	if err := s.maintenanceRepo.UpdateRequest(request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated maintenance request ID %d (status: %s)", id, status)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "maintenance_update", details)

	return s.GetRequest(id)
}

// DeleteRequest deletes a maintenance request
func (s *MaintenanceService) DeleteRequest(id uint, userID uint) error {
	if _, err := s.maintenanceRepo.GetRequestByID(id); err != nil {
		return err
	}

	if err := s.maintenanceRepo.DeleteRequest(id); err != nil {
		return fmt.Errorf("failed to delete maintenance request: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted maintenance request ID %d", id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "maintenance_delete", details)

	return nil
}
