package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every endpoint onto the router. Kept out of main so
// handler tests can spin up the exact same surface.
func RegisterRoutes(r *gin.Engine, auth *AuthHandler, jobs *JobHandler, applications *ApplicationHandler, interviews *InterviewHandler) {
	r.GET("/", Home)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		// Auth Routes
		api.POST("/signup", auth.Signup)
		api.POST("/login", auth.Login)
		api.GET("/users", auth.ListUsers)

		// Job Routes
		api.GET("/jobs", jobs.ListJobs)
		api.POST("/jobs", jobs.CreateJob)
		api.PUT("/jobs/:id", jobs.UpdateJob)
		api.DELETE("/jobs/:id", jobs.DeleteJob)
		api.GET("/company/:companyId/jobs", jobs.CompanyJobs)

		// Application Routes
		api.GET("/applications", applications.ListApplications)
		api.POST("/applications", applications.CreateApplication)
		api.PUT("/applications/:id", applications.UpdateApplication)
		api.GET("/company/:companyId/applications", applications.CompanyApplications)

		// Interview Routes
		interview := api.Group("/interview")
		{
			interview.POST("/start", interviews.Start)
			interview.POST("/submit-answer", interviews.SubmitAnswer)
			interview.GET("/company/:companyId", interviews.CompanyInterviews)
			interview.GET("/:id", interviews.GetInterview)
		}
	}
}
