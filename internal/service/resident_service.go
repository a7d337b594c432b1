package service

import (
	"errors"
	"fmt"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"

	"gorm.io/gorm"
)

type ResidentService struct {
	db           *gorm.DB
	residentRepo *repository.ResidentRepository
	roomRepo     *repository.RoomRepository
	userRepo     *repository.UserRepository
	auditRepo    *repository.AuditRepository
}

func NewResidentService(
	db *gorm.DB,
	residentRepo *repository.ResidentRepository,
	roomRepo *repository.RoomRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *ResidentService {
	return &ResidentService{
		db:           db,
		residentRepo: residentRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
	}
}

// ListResidents retrieves residents matching the filter
func (s *ResidentService) ListResidents(filter repository.ResidentFilter) ([]models.ResidentResponse, error) {
	residents, err := s.residentRepo.ListResidents(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ResidentResponse, 0, len(residents))
	for i := range residents {
		responses = append(responses, residents[i].Response())
	}
	return responses, nil
}

// GetResident retrieves a resident by ID
func (s *ResidentService) GetResident(id uint) (*models.ResidentResponse, error) {
	resident, err := s.residentRepo.GetResidentByID(id)
	if err != nil {
		return nil, err
	}
	resp := resident.Response()
	return &resp, nil
}

// CreateResident creates a resident, optionally assigned to a room (admin only).
// The room's capacity is checked and its occupancy flag updated in the same
// transaction as the insert.
func (s *ResidentService) CreateResident(resident *models.Resident, userID uint) (*models.ResidentResponse, error) {
	if existing, err := s.residentRepo.FindResidentByEmail(resident.Email); err == nil && existing != nil {
		return nil, ErrEmailConflict
	}

	roomID := resident.RoomID
	resident.RoomID = nil
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.moveResident(tx, resident, roomID)
	})
	if err != nil {
		return nil, err
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created resident %s %s (%s)", resident.FirstName, resident.LastName, resident.Email)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "resident_create", details)

	return s.GetResident(resident.ID)
}

// UpdateResident updates a resident (admin only). When the room reference
// changes, the capacity check and the occupancy recompute of both rooms run
// atomically with the write.
func (s *ResidentService) UpdateResident(id uint, firstName, lastName, email string, roomID *uint, userID uint) (*models.ResidentResponse, error) {
	resident, err := s.residentRepo.GetResidentByID(id)
	if err != nil {
		return nil, err
	}

	if email != resident.Email {
		if existing, err := s.residentRepo.FindResidentByEmail(email); err == nil && existing.ID != id {
			return nil, ErrEmailConflict
		}
	}

	resident.FirstName = firstName
	resident.LastName = lastName
	resident.Email = email
	resident.Room = nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.moveResident(tx, resident, roomID)
	})
	if err != nil {
		return nil, err
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated resident %s %s (ID: %d)", resident.FirstName, resident.LastName, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "resident_update", details)

	return s.GetResident(id)
}

// AssignRoom is the explicit assign-by-id action. It resolves the room,
// applies the same capacity check as the general update path, and moves the
// resident.
func (s *ResidentService) AssignRoom(residentID uint, roomID uint, userID uint) (*models.ResidentResponse, error) {
	resident, err := s.residentRepo.GetResidentByID(residentID)
	if err != nil {
		return nil, err
	}
	resident.Room = nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.moveResident(tx, resident, &roomID)
	})
	if err != nil {
		return nil, err
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Assigned resident ID %d to room ID %d", residentID, roomID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "resident_assign_room", details)

	return s.GetResident(residentID)
}

// DeleteResident deletes a resident and recomputes the vacated room's
// occupancy flag (admin only)
func (s *ResidentService) DeleteResident(id uint, userID uint) error {
	resident, err := s.residentRepo.GetResidentByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Resident{}, id).Error; err != nil {
			return err
		}
		if resident.RoomID != nil {
			return recomputeOccupancy(tx, *resident.RoomID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted resident %s %s (ID: %d)", resident.FirstName, resident.LastName, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "resident_delete", details)

	return nil
}

// MyRoom resolves the calling student's room through the user's typed
// resident reference. When the account predates its resident record, the
// reference is established once by exact email match and persisted.
func (s *ResidentService) MyRoom(userID uint) (*models.RoomResponse, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	var resident *models.Resident
	if user.ResidentID != nil {
		resident, err = s.residentRepo.GetResidentByID(*user.ResidentID)
	} else {
		resident, err = s.residentRepo.FindResidentByEmail(user.Email)
		if err == nil {
			_ = s.userRepo.LinkResident(user.ID, resident.ID)
		}
	}
	if err != nil {
		return nil, err
	}

	if resident.RoomID == nil {
		return nil, ErrNotHoused
	}

	room, err := s.roomRepo.GetRoomWithStats(*resident.RoomID)
	if err != nil {
		return nil, err
	}
	resp := room.Response()
	return &resp, nil
}

// moveResident persists the resident with the new room reference while
// holding the occupancy/capacity invariants:
//  1. the target room, if any, is locked and its resident count checked
//     against capacity before the write;
//  2. the resident row is written;
//  3. the previous room's is_occupied is recomputed only when the room
//     actually changed;
//  4. the new room's is_occupied is set true.
//
// Must run inside a transaction so the check and the writes are atomic.
func (s *ResidentService) moveResident(tx *gorm.DB, resident *models.Resident, newRoomID *uint) error {
	oldRoomID := resident.RoomID
	sameRoom := roomIDEqual(oldRoomID, newRoomID)

	if newRoomID != nil && !sameRoom {
		var room models.Room
		if err := forUpdate(tx).First(&room, *newRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrRoomNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Resident{}).
			Where("room_id = ? AND id <> ?", *newRoomID, resident.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return ErrRoomFull
		}
	}

	resident.RoomID = newRoomID
	if resident.ID == 0 {
		if err := tx.Create(resident).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Save(resident).Error; err != nil {
			return err
		}
	}

	if sameRoom {
		return nil
	}
	if oldRoomID != nil {
		if err := recomputeOccupancy(tx, *oldRoomID); err != nil {
			return err
		}
	}
	if newRoomID != nil {
		// Count just became >= 1
		if err := tx.Model(&models.Room{}).
			Where("id = ?", *newRoomID).
			Update("is_occupied", true).Error; err != nil {
			return err
		}
	}
	return nil
}

// recomputeOccupancy sets a room's is_occupied flag from its current
// resident count
func recomputeOccupancy(tx *gorm.DB, roomID uint) error {
	var count int64
	if err := tx.Model(&models.Resident{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("is_occupied", count > 0).Error
}

func roomIDEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
