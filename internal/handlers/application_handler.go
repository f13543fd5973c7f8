package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/services"
	"talenthive_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Router /api/applications/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, app, "Application submitted successfully")
}

// UpdateStatus godoc
// @Summary Change an application's status
// @Tags applications
// @Router /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, app, "Application status updated successfully")
}

// Mine godoc
// @Summary Applications submitted by the current jobseeker
// @Tags applications
// @Router /api/applications/my-applications [get]
func (h *ApplicationHandler) Mine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.MyApplications(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, apps, "Applications fetched successfully")
}

// ForEmployer godoc
// @Summary Applications across the employer's jobs
// @Tags applications
// @Router /api/applications/employer-applications [get]
func (h *ApplicationHandler) ForEmployer(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.EmployerApplications(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, apps, "Applications fetched successfully")
}
