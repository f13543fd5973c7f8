package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/services"
	"talenthive_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService      services.JobService
	matchingService services.MatchingService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, matchingService services.MatchingService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, matchingService: matchingService}
}

// Create godoc
// @Summary Post a new job
// @Tags jobs
// @Router /api/jobs/create [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusCreated, job, "Job created successfully")
}

// List godoc
// @Summary List the employer's own jobs with pagination
// @Tags jobs
// @Router /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	page := parseQueryInt(c, "page", 1)
	limit := parseQueryInt(c, "limit", 10)

	result, err := h.jobService.GetJobs(c.Request.Context(), userID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondWithTotal(c, http.StatusOK, result.Jobs, "Jobs fetched successfully", result.Total)
}

// Get godoc
// @Summary Fetch one job
// @Tags jobs
// @Router /api/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, job, "Job fetched successfully")
}

// Update godoc
// @Summary Update an owned job
// @Tags jobs
// @Router /api/jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, job, "Job updated successfully")
}

// Delete godoc
// @Summary Delete an owned job
// @Tags jobs
// @Router /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, nil, "Job deleted successfully")
}

// Recommended godoc
// @Summary Jobs matched to the jobseeker's profile
// @Tags jobs
// @Router /api/jobs/recommended [get]
func (h *JobHandler) Recommended(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	matched, total, err := h.matchingService.RecommendedJobs(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondWithTotal(c, http.StatusOK, matched, "Recommended jobs fetched successfully", total)
}

func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return fallback
	}
	return val
}
