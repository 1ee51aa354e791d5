package dtos

type ApplicationRequest struct {
	JobID          string `json:"jobId" binding:"required"`
	JobTitle       string `json:"jobTitle" binding:"required"`
	CandidateName  string `json:"candidateName" binding:"required"`
	CandidateEmail string `json:"candidateEmail" binding:"required"`

	// Optional Fields
	ResumeURL      string `json:"resumeUrl"`
	AdditionalInfo string `json:"additionalInfo"`
}

type ApplicationUpdateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}
