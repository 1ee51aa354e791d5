package dtos

type StartInterviewRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	JobID         string `json:"jobId" binding:"required"`
	CandidateName string `json:"candidateName" binding:"required"`
}
