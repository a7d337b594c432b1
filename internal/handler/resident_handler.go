package handler

import (
	"net/http"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ResidentHandler struct {
	residentService *service.ResidentService
}

func NewResidentHandler(residentService *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
	}
}

type ResidentRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	RoomID    *uint  `json:"room_id"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required"`
}

type residentListQuery struct {
	Room     *uint  `form:"room"`
	Building *uint  `form:"building"`
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
}

// ListResidents retrieves residents with filtering by room and building,
// search on names and email, and ordering by name
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	var q residentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	residents, err := h.residentService.ListResidents(repository.ResidentFilter{
		RoomID:     q.Room,
		BuildingID: q.Building,
		Search:     q.Search,
		Ordering:   q.Ordering,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"residents": residents,
		"count":     len(residents),
	})
}

// GetResident retrieves a specific resident by ID
func (h *ResidentHandler) GetResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resident, err := h.residentService.GetResident(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resident)
}

// CreateResident creates a resident, optionally assigned to a room (admin only)
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var req ResidentRequest
	if !bindJSON(c, &req) {
		return
	}

	resident := models.Resident{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		RoomID:    req.RoomID,
	}

	created, err := h.residentService.CreateResident(&resident, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// UpdateResident updates a resident; room changes go through the same
// capacity and occupancy rules as creation (admin only)
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ResidentRequest
	if !bindJSON(c, &req) {
		return
	}

	resident, err := h.residentService.UpdateResident(id, req.FirstName, req.LastName, req.Email, req.RoomID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resident)
}

// AssignRoom is the explicit assign-by-id action (admin only)
func (h *ResidentHandler) AssignRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AssignRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	resident, err := h.residentService.AssignRoom(id, req.RoomID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Room assigned successfully",
		"resident": resident,
	})
}

// DeleteResident deletes a resident (admin only)
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.residentService.DeleteResident(id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Resident deleted successfully")
}
