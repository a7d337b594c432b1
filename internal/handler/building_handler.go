package handler

import (
	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BuildingHandler struct {
	buildingService *service.BuildingService
}

func NewBuildingHandler(buildingService *service.BuildingService) *BuildingHandler {
	return &BuildingHandler{
		buildingService: buildingService,
	}
}

type BuildingRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Address    string `json:"address"`
	TotalRooms int    `json:"total_rooms" binding:"required,min=1"`
}

// ListBuildings retrieves all buildings
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"buildings": buildings,
		"count":     len(buildings),
	})
}

// GetBuilding retrieves a specific building by ID
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	building, err := h.buildingService.GetBuildingByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, building)
}

// CreateBuilding creates a new building (admin only)
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req BuildingRequest
	if !bindJSON(c, &req) {
		return
	}

	building := models.Building{
		Name:       req.Name,
		Address:    req.Address,
		TotalRooms: req.TotalRooms,
	}

	if err := h.buildingService.CreateBuilding(&building, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, building)
}

// UpdateBuilding updates an existing building (admin only)
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req BuildingRequest
	if !bindJSON(c, &req) {
		return
	}

	building := models.Building{
		ID:         id,
		Name:       req.Name,
		Address:    req.Address,
		TotalRooms: req.TotalRooms,
	}

	if err := h.buildingService.UpdateBuilding(&building, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, building)
}

// DeleteBuilding deletes a building and its rooms (admin only)
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.buildingService.DeleteBuilding(id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Building deleted successfully")
}
