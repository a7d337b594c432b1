package repository

import (
	"errors"
	"strings"

	"uninest-housing-api/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilter carries the list query parameters for rooms.
// Nil pointer fields mean "not filtered".
type RoomFilter struct {
	BuildingID  *uint
	IsOccupied  *bool
	MinCapacity *int
	MaxCapacity *int
	Search      string
	Ordering    string
}

// roomOrderColumns is the allowlist of orderable columns
var roomOrderColumns = map[string]string{
	"room_number": "rooms.room_number",
	"capacity":    "rooms.capacity",
}

// ListRooms retrieves rooms matching the filter, with building name and
// resident count aggregated in a single query
func (r *RoomRepository) ListRooms(filter RoomFilter) ([]models.RoomWithStats, error) {
	q := r.db.Model(&models.Room{}).
		Select("rooms.*, buildings.name AS building_name, COUNT(residents.id) AS resident_count").
		Joins("JOIN buildings ON buildings.id = rooms.building_id").
		Joins("LEFT JOIN residents ON residents.room_id = rooms.id").
		Group("rooms.id, buildings.name")

	if filter.BuildingID != nil {
		q = q.Where("rooms.building_id = ?", *filter.BuildingID)
	}
	if filter.IsOccupied != nil {
		q = q.Where("rooms.is_occupied = ?", *filter.IsOccupied)
	}
	if filter.MinCapacity != nil {
		q = q.Where("rooms.capacity >= ?", *filter.MinCapacity)
	}
	if filter.MaxCapacity != nil {
		q = q.Where("rooms.capacity <= ?", *filter.MaxCapacity)
	}
	if filter.Search != "" {
		q = q.Where("rooms.room_number LIKE ?", "%"+filter.Search+"%")
	}

	q = q.Order(orderClause(filter.Ordering, roomOrderColumns, "rooms.building_id ASC, rooms.room_number ASC"))

	var rooms []models.RoomWithStats
	err := q.Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetRoomWithStats retrieves a room with its building name and resident count
func (r *RoomRepository) GetRoomWithStats(id uint) (*models.RoomWithStats, error) {
	var room models.RoomWithStats
	err := r.db.Model(&models.Room{}).
		Select("rooms.*, buildings.name AS building_name, COUNT(residents.id) AS resident_count").
		Joins("JOIN buildings ON buildings.id = rooms.building_id").
		Joins("LEFT JOIN residents ON residents.room_id = rooms.id").
		Where("rooms.id = ?", id).
		Group("rooms.id, buildings.name").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// UpdateRoom updates an existing room
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom deletes a room; residents are detached and maintenance
// requests cascade at the store level
func (r *RoomRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}

// CountResidents returns the number of residents assigned to a room
func (r *RoomRepository) CountResidents(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resident{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}

// orderClause resolves an ordering parameter ("field" or "-field") against
// an allowlist of columns, falling back to the given default
func orderClause(ordering string, allowed map[string]string, fallback string) string {
	if ordering == "" {
		return fallback
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")
	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
