package models

import "time"

// Roles a user can sign up with.
const (
	RoleSeeker  = "seeker"
	RoleCompany = "company"
)

// Job posting lifecycle.
const (
	JobActive = "active"
	JobClosed = "closed"
)

// Application lifecycle. Companies move applications past pending manually.
const (
	ApplicationPending = "pending"
)

// Interview session lifecycle. A session moves to completed exactly once,
// when the answer for the last question is recorded.
const (
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"` // plain text for now, hashing is out of scope
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Company-only fields
	CompanyName string `json:"companyName,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Sanitized returns a copy safe for API responses (no password).
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary"`
	Questions    string    `json:"questions"`
	Status       string    `json:"status"`
	PostedDate   time.Time `json:"postedDate"`
	CompanyID    string    `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	Applicants   int       `json:"applicants"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	JobTitle       string    `json:"jobTitle"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	ResumeURL      string    `json:"resumeUrl"`
	AdditionalInfo string    `json:"additionalInfo"`
	AppliedDate    time.Time `json:"appliedDate"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InterviewSession is one candidate's end-to-end AI interview for one
// application. QAPairs is append-only and kept in question order; the only
// in-place mutation is filling in an answer on an existing pair.
type InterviewSession struct {
	ID              string     `json:"id"`
	ApplicationID   string     `json:"applicationId"`
	JobID           string     `json:"jobId"`
	JobTitle        string     `json:"jobTitle"`
	CandidateName   string     `json:"candidateName"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Status          string     `json:"status"`
	CurrentQuestion int        `json:"currentQuestion"`
	TotalQuestions  int        `json:"totalQuestions"`
	QAPairs         []QAPair   `json:"qa_pairs"`
}

// QAPair is one question/answer turn. Answer stays nil until the candidate's
// audio has been transcribed.
type QAPair struct {
	QuestionNumber int       `json:"questionNumber"`
	Question       string    `json:"question"`
	Answer         *string   `json:"answer"`
	AudioPath      string    `json:"audioPath,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
