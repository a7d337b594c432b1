package service

import (
	"errors"
	"fmt"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"

	"gorm.io/gorm"
)

type RoomService struct {
	db        *gorm.DB
	roomRepo  *repository.RoomRepository
	auditRepo *repository.AuditRepository
}

func NewRoomService(
	db *gorm.DB,
	roomRepo *repository.RoomRepository,
	auditRepo *repository.AuditRepository,
) *RoomService {
	return &RoomService{
		db:        db,
		roomRepo:  roomRepo,
		auditRepo: auditRepo,
	}
}

// ListRooms retrieves rooms matching the filter
func (s *RoomService) ListRooms(filter repository.RoomFilter) ([]models.RoomResponse, error) {
	rooms, err := s.roomRepo.ListRooms(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]models.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, rooms[i].Response())
	}
	return responses, nil
}

// GetRoom retrieves a room by ID with its derived fields computed from
// current store state
func (s *RoomService) GetRoom(id uint) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetRoomWithStats(id)
	if err != nil {
		return nil, err
	}
	resp := room.Response()
	return &resp, nil
}

// CreateRoom creates a new room (admin only).
// The building's room-count ceiling is checked against persisted state
// under a row lock, so two concurrent creates cannot both pass.
func (s *RoomService) CreateRoom(room *models.Room, userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var building models.Building
		if err := forUpdate(tx).First(&building, room.BuildingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrBuildingNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Room{}).
			Where("building_id = ?", room.BuildingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(building.TotalRooms) {
			return ErrBuildingFull
		}

		room.IsOccupied = false
		return tx.Create(room).Error
	})
	if err != nil {
		return err
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created room %s in building ID %d (capacity: %d)", room.RoomNumber, room.BuildingID, room.Capacity)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "room_create", details)

	return nil
}

// UpdateRoom updates a room's number and capacity (admin only).
// The building reference and occupancy flag are not caller-writable here;
// occupancy only moves through resident assignment.
func (s *RoomService) UpdateRoom(id uint, roomNumber string, capacity int, userID uint) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	room.RoomNumber = roomNumber
	room.Capacity = capacity
	if err := s.roomRepo.UpdateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated room %s (ID: %d, capacity: %d)", room.RoomNumber, room.ID, room.Capacity)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "room_update", details)

	return s.GetRoom(id)
}

// DeleteRoom deletes a room (admin only). Residents are detached and
// maintenance requests cascade at the store level.
func (s *RoomService) DeleteRoom(id uint, userID uint) error {
	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		return err
	}

	if err := s.roomRepo.DeleteRoom(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted room %s (ID: %d)", room.RoomNumber, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "room_delete", details)

	return nil
}
