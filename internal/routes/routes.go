package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/auth"
	"talenthive_backend/internal/handlers"
	"talenthive_backend/internal/middleware"
	"talenthive_backend/internal/models"
)

// Register mounts all API routes under /api.
func Register(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager, uploadsDir string) {
	api := router.Group("/api")

	api.GET("/", func(c *gin.Context) {
		handlers.Respond(c, http.StatusOK, nil, "Welcome to TalentHive!")
	})

	if uploadsDir != "" {
		api.Static("/files", uploadsDir)
	}

	authRequired := middleware.AuthMiddleware(tokens)
	jobseekerOnly := middleware.RequireRoles(models.UserRoleJobseeker)
	employerOnly := middleware.RequireRoles(models.UserRoleEmployer)
	anyRole := middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleJobseeker)

	users := api.Group("/auth/users")
	{
		users.POST("/signup", h.Auth.SignUp)
		users.POST("/signin", h.Auth.SignIn)
		users.GET("/signout", authRequired, h.Auth.SignOut)
		users.GET("/verifyEmail/:token", h.Auth.VerifyEmail)
		users.GET("/resendVerificationEmail", authRequired, h.Auth.ResendVerificationEmail)
		users.GET("/isEmailVerified", authRequired, h.Auth.IsEmailVerified)
		users.POST("/sendPasswordResetEmail", h.Auth.SendPasswordResetEmail)
		users.POST("/resetPassword", h.Auth.ResetPassword)
		users.GET("/me", authRequired, h.Auth.Me)
		users.POST("/setProfile", authRequired, h.Auth.SetProfile)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", authRequired, employerOnly, h.Job.List)
		jobs.GET("/recommended", authRequired, jobseekerOnly, h.Job.Recommended)
		jobs.GET("/:id", authRequired, anyRole, h.Job.Get)
		jobs.POST("/create", authRequired, employerOnly, h.Job.Create)
		jobs.PUT("/:id", authRequired, employerOnly, h.Job.Update)
		jobs.DELETE("/:id", authRequired, employerOnly, h.Job.Delete)
	}

	// gin requires one wildcard name per segment, so the application id and
	// the job id both travel as :id here.
	applications := api.Group("/applications")
	applications.Use(authRequired)
	{
		applications.POST("/:id/apply", jobseekerOnly, h.Application.Apply)
		applications.GET("/my-applications", jobseekerOnly, h.Application.Mine)
		applications.GET("/employer-applications", employerOnly, h.Application.ForEmployer)
		applications.PUT("/:id/status", employerOnly, h.Application.UpdateStatus)
	}
}
