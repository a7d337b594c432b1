package handler

import (
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	residentService *service.ResidentService
}

func NewStudentHandler(residentService *service.ResidentService) *StudentHandler {
	return &StudentHandler{
		residentService: residentService,
	}
}

// MyRoom returns the calling student's assigned room, resolved through the
// account's resident reference. Responds 404 when the caller has no resident
// record or is unhoused.
func (h *StudentHandler) MyRoom(c *gin.Context) {
	room, err := h.residentService.MyRoom(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, room)
}
