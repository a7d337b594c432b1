package handler

import (
	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

type CreateMaintenanceRequest struct {
	RoomID      uint   `json:"room_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateMaintenanceRequest struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// ListRequests retrieves all maintenance requests, most recent first
func (h *MaintenanceHandler) ListRequests(c *gin.Context) {
	requests, err := h.maintenanceService.ListRequests()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"maintenance_requests": requests,
		"count":                len(requests),
	})
}

// GetRequest retrieves a specific maintenance request by ID
func (h *MaintenanceHandler) GetRequest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	request, err := h.maintenanceService.GetRequest(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, request)
}

// CreateRequest files a maintenance request against an occupied room.
// Any authenticated caller may file one.
func (h *MaintenanceHandler) CreateRequest(c *gin.Context) {
	var req CreateMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.maintenanceService.CreateRequest(req.RoomID, req.Description, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// UpdateRequest updates a request's description and status
func (h *MaintenanceHandler) UpdateRequest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.maintenanceService.UpdateRequest(id, req.Description, models.RequestStatus(req.Status), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, request)
}

// DeleteRequest deletes a maintenance request
func (h *MaintenanceHandler) DeleteRequest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.maintenanceService.DeleteRequest(id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Maintenance request deleted successfully")
}
