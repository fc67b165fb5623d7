package handler

import (
	"errors"
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/model"
	"jobportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// JobHandler handles job posting requests
type JobHandler struct {
	service service.JobService
	logger  *zerolog.Logger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService, logger *zerolog.Logger) *JobHandler {
	return &JobHandler{service: s, logger: logger}
}

func (h *JobHandler) PostJob(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "user not authenticated",
			"success": false,
		})
		return
	}

	var req model.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": service.ErrMissingFields.Error(),
			"success": false,
		})
		return
	}

	job, err := h.service.PostJob(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "new job created successfully",
		"success": true,
		"job":     job,
	})
}

func (h *JobHandler) GetAllJobs(c *gin.Context) {
	filters := model.JobFilters{Keyword: c.Query("keyword")}

	jobs, err := h.service.GetAllJobs(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "jobs not found",
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "jobs found",
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.service.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "job found",
		"success": true,
		"job":     job,
	})
}

func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "user not authenticated",
			"success": false,
		})
		return
	}

	jobs, err := h.service.GetJobsByRecruiter(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "jobs found",
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
			"success": false,
		})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "server error, please try again later",
			"success": false,
		})
	}
}

// RegisterJobRoutes registers job routes. Posting and the recruiter dashboard
// listing require the recruiter role.
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, authMW, recruiterMW gin.HandlerFunc) {
	jobGroup := rg.Group("/job")
	jobGroup.Use(authMW)
	{
		jobGroup.POST("/post", recruiterMW, h.PostJob)
		jobGroup.GET("/get", h.GetAllJobs)
		jobGroup.GET("/get/:id", h.GetJobByID)
		jobGroup.GET("/getadminjobs", recruiterMW, h.GetAdminJobs)
	}
}
