package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Home lists the available endpoints, handy when poking the API by hand.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BotBoss API is running!",
		"endpoints": gin.H{
			"signup":               "/api/signup (POST)",
			"login":                "/api/login (POST)",
			"users":                "/api/users (GET)",
			"jobs":                 "/api/jobs (GET, POST)",
			"applications":         "/api/applications (GET, POST)",
			"company_jobs":         "/api/company/:companyId/jobs (GET)",
			"company_applications": "/api/company/:companyId/applications (GET)",
			"interview_start":      "/api/interview/start (POST)",
			"interview_answer":     "/api/interview/submit-answer (POST)",
		},
	})
}
