package store

import "github.com/botboss/botboss-api/internal/models"

// Store is the record store the services depend on. Every collection is
// loaded and saved whole; there are no partial updates and the last writer
// wins. Audio recordings live next to the collections, keyed by interview id
// and question number.
type Store interface {
	Users() ([]models.User, error)
	SaveUsers(users []models.User) error

	Jobs() ([]models.Job, error)
	SaveJobs(jobs []models.Job) error

	Applications() ([]models.Application, error)
	SaveApplications(applications []models.Application) error

	Interviews() ([]models.InterviewSession, error)
	SaveInterviews(interviews []models.InterviewSession) error

	// SaveAudio writes a raw answer recording and returns the path it was
	// stored under. Resubmitting the same question overwrites the file.
	SaveAudio(interviewID string, questionNumber int, data []byte) (string, error)
}
