package repository

import (
	"fmt"
	"testing"

	"uninest-housing-api/internal/database"
	"uninest-housing-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedRooms creates two buildings with three rooms and one resident in A-101
func seedRooms(t *testing.T, db *gorm.DB) (models.Building, models.Building) {
	t.Helper()

	north := models.Building{Name: "North Hall", TotalRooms: 10}
	south := models.Building{Name: "South Hall", TotalRooms: 10}
	require.NoError(t, db.Create(&north).Error)
	require.NoError(t, db.Create(&south).Error)

	rooms := []models.Room{
		{BuildingID: north.ID, RoomNumber: "A-101", Capacity: 2, IsOccupied: true},
		{BuildingID: north.ID, RoomNumber: "A-102", Capacity: 4},
		{BuildingID: south.ID, RoomNumber: "B-201", Capacity: 1},
	}
	require.NoError(t, db.Create(&rooms).Error)

	resident := models.Resident{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", RoomID: &rooms[0].ID}
	require.NoError(t, db.Create(&resident).Error)

	return north, south
}

func roomNumbers(rooms []models.RoomWithStats) []string {
	numbers := make([]string, 0, len(rooms))
	for i := range rooms {
		numbers = append(numbers, rooms[i].RoomNumber)
	}
	return numbers
}

func TestListRoomsFilters(t *testing.T) {
	db := newTestDB(t)
	north, _ := seedRooms(t, db)
	repo := NewRoomRepo(db)

	all, err := repo.ListRooms(RoomFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"A-101", "A-102", "B-201"}, roomNumbers(all))

	byBuilding, err := repo.ListRooms(RoomFilter{BuildingID: &north.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"A-101", "A-102"}, roomNumbers(byBuilding))

	occupied := true
	byOccupancy, err := repo.ListRooms(RoomFilter{IsOccupied: &occupied})
	require.NoError(t, err)
	require.Equal(t, []string{"A-101"}, roomNumbers(byOccupancy))

	minCap, maxCap := 2, 4
	byCapacity, err := repo.ListRooms(RoomFilter{MinCapacity: &minCap, MaxCapacity: &maxCap})
	require.NoError(t, err)
	require.Equal(t, []string{"A-101", "A-102"}, roomNumbers(byCapacity))

	bySearch, err := repo.ListRooms(RoomFilter{Search: "B-2"})
	require.NoError(t, err)
	require.Equal(t, []string{"B-201"}, roomNumbers(bySearch))
}

func TestListRoomsOrdering(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	repo := NewRoomRepo(db)

	byCapacityDesc, err := repo.ListRooms(RoomFilter{Ordering: "-capacity"})
	require.NoError(t, err)
	require.Equal(t, []string{"A-102", "A-101", "B-201"}, roomNumbers(byCapacityDesc))

	byNumber, err := repo.ListRooms(RoomFilter{Ordering: "room_number"})
	require.NoError(t, err)
	require.Equal(t, []string{"A-101", "A-102", "B-201"}, roomNumbers(byNumber))

	// Unknown ordering fields fall back to the default order
	unknown, err := repo.ListRooms(RoomFilter{Ordering: "capacity; DROP TABLE rooms"})
	require.NoError(t, err)
	require.Len(t, unknown, 3)
}

func TestListRoomsResidentCount(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	repo := NewRoomRepo(db)

	rooms, err := repo.ListRooms(RoomFilter{Search: "A-101"})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, 1, rooms[0].ResidentCount)
	require.Equal(t, "North Hall", rooms[0].BuildingName)
	require.False(t, rooms[0].Response().IsAtCapacity)
}

func TestListResidentsFilters(t *testing.T) {
	db := newTestDB(t)
	north, _ := seedRooms(t, db)
	repo := NewResidentRepo(db)

	var room models.Room
	require.NoError(t, db.Where("room_number = ?", "A-101").First(&room).Error)

	grace := models.Resident{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
	require.NoError(t, db.Create(&grace).Error)

	all, err := repo.ListResidents(ResidentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Default ordering is by last name
	require.Equal(t, "Hopper", all[0].LastName)

	byRoom, err := repo.ListResidents(ResidentFilter{RoomID: &room.ID})
	require.NoError(t, err)
	require.Len(t, byRoom, 1)
	require.Equal(t, "Ada", byRoom[0].FirstName)

	byBuilding, err := repo.ListResidents(ResidentFilter{BuildingID: &north.ID})
	require.NoError(t, err)
	require.Len(t, byBuilding, 1)

	bySearch, err := repo.ListResidents(ResidentFilter{Search: "grace@"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, "Grace", bySearch[0].FirstName)

	byFirstName, err := repo.ListResidents(ResidentFilter{Ordering: "-first_name"})
	require.NoError(t, err)
	require.Equal(t, "Grace", byFirstName[0].FirstName)
}
