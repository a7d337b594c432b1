package handler

import (
	"net/http"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=10"`
	BuildingID uint   `json:"building_id" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

type UpdateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=10"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

// roomListQuery carries the supported list filters
type roomListQuery struct {
	Building    *uint  `form:"building"`
	IsOccupied  *bool  `form:"is_occupied"`
	MinCapacity *int   `form:"min_capacity"`
	MaxCapacity *int   `form:"max_capacity"`
	Search      string `form:"search"`
	Ordering    string `form:"ordering"`
}

// ListRooms retrieves rooms with filtering by building, occupancy and
// capacity bounds, search on room number, and ordering
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q roomListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	rooms, err := h.roomService.ListRooms(repository.RoomFilter{
		BuildingID:  q.Building,
		IsOccupied:  q.IsOccupied,
		MinCapacity: q.MinCapacity,
		MaxCapacity: q.MaxCapacity,
		Search:      q.Search,
		Ordering:    q.Ordering,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// GetRoom retrieves a specific room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, room)
}

// CreateRoom creates a new room (admin only)
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		BuildingID: req.BuildingID,
		Capacity:   req.Capacity,
	}

	if err := h.roomService.CreateRoom(&room, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	created, err := h.roomService.GetRoom(room.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// UpdateRoom updates a room's number and capacity (admin only)
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.UpdateRoom(id, req.RoomNumber, req.Capacity, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, room)
}

// DeleteRoom deletes a room (admin only)
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}
