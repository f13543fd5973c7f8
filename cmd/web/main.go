package main

import (
	"talenthive_backend/internal/app"
	"talenthive_backend/internal/logger"
)

// @title TalentHive API
// @version 1.0
// @description Job board backend: auth, jobs, applications and resume-based job matching.
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err)
	}
}
