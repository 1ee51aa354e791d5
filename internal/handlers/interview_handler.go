package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/services"
	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	Interviews *services.InterviewService
}

func NewInterviewHandler(interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{Interviews: interviews}
}

// Start is the POST /api/interview/start endpoint
func (h *InterviewHandler) Start(c *gin.Context) {
	var req dtos.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.Interviews.StartInterview(c.Request.Context(), req.ApplicationID, req.JobID, req.CandidateName)
	if err != nil {
		respondError(c, err, "Interview start failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"interviewId":    result.InterviewID,
		"question":       result.Question,
		"questionNumber": result.QuestionNumber,
		"totalQuestions": result.TotalQuestions,
	})
}

// SubmitAnswer is the POST /api/interview/submit-answer endpoint. The answer
// arrives as a multipart form: interviewId, questionNumber and an audio file.
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	interviewID := c.PostForm("interviewId")
	if interviewID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interviewId is required"})
		return
	}
	questionNumber, err := strconv.Atoi(c.PostForm("questionNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionNumber must be a number"})
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read audio file"})
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read audio file"})
		return
	}

	result, err := h.Interviews.SubmitAnswer(c.Request.Context(), interviewID, questionNumber, audio)
	if err != nil {
		respondError(c, err, "Submit answer failed")
		return
	}

	if result.IsComplete {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"isComplete": true,
			"message":    "Interview completed successfully!",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"question":       result.Question,
		"questionNumber": result.QuestionNumber,
		"totalQuestions": result.TotalQuestions,
		"isComplete":     false,
	})
}

// GetInterview is the GET /api/interview/:id endpoint
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	interview, err := h.Interviews.GetInterview(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

// CompanyInterviews is the GET /api/interview/company/:companyId endpoint
func (h *InterviewHandler) CompanyInterviews(c *gin.Context) {
	interviews, err := h.Interviews.ListCompanyInterviews(c.Param("companyId"))
	if err != nil {
		respondError(c, err, "Failed to fetch company interviews")
		return
	}
	c.JSON(http.StatusOK, interviews)
}
