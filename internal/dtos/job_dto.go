package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	CompanyID   string `json:"companyId" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`

	// Optional Fields
	Requirements string `json:"requirements"`
	Questions    string `json:"questions"`
}

// JobUpdateRequest carries a partial update; nil fields keep their current
// value.
type JobUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	Type         *string `json:"type"`
	Salary       *string `json:"salary"`
	Questions    *string `json:"questions"`
	Status       *string `json:"status"`
}
