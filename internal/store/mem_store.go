package store

import (
	"fmt"

	"github.com/botboss/botboss-api/internal/models"
)

// MemStore is an in-memory Store used by tests. It mirrors FileStore's
// whole-collection semantics: loads return copies, saves replace the
// collection outright.
type MemStore struct {
	UserRecords        []models.User
	JobRecords         []models.Job
	ApplicationRecords []models.Application
	InterviewRecords   []models.InterviewSession
	AudioFiles         map[string][]byte

	// FailSaves makes every save return an error, for persistence-failure
	// paths.
	FailSaves bool
}

func NewMemStore() *MemStore {
	return &MemStore{AudioFiles: map[string][]byte{}}
}

func (s *MemStore) Users() ([]models.User, error) {
	return append([]models.User{}, s.UserRecords...), nil
}

func (s *MemStore) SaveUsers(users []models.User) error {
	if s.FailSaves {
		return fmt.Errorf("save disabled")
	}
	s.UserRecords = append([]models.User{}, users...)
	return nil
}

func (s *MemStore) Jobs() ([]models.Job, error) {
	return append([]models.Job{}, s.JobRecords...), nil
}

func (s *MemStore) SaveJobs(jobs []models.Job) error {
	if s.FailSaves {
		return fmt.Errorf("save disabled")
	}
	s.JobRecords = append([]models.Job{}, jobs...)
	return nil
}

func (s *MemStore) Applications() ([]models.Application, error) {
	return append([]models.Application{}, s.ApplicationRecords...), nil
}

func (s *MemStore) SaveApplications(applications []models.Application) error {
	if s.FailSaves {
		return fmt.Errorf("save disabled")
	}
	s.ApplicationRecords = append([]models.Application{}, applications...)
	return nil
}

func (s *MemStore) Interviews() ([]models.InterviewSession, error) {
	return copyInterviews(s.InterviewRecords), nil
}

func (s *MemStore) SaveInterviews(interviews []models.InterviewSession) error {
	if s.FailSaves {
		return fmt.Errorf("save disabled")
	}
	s.InterviewRecords = copyInterviews(interviews)
	return nil
}

// Sessions carry a nested QAPairs slice; copy it too so callers can't reach
// stored state through a loaded session, matching file round-trip semantics.
func copyInterviews(in []models.InterviewSession) []models.InterviewSession {
	out := append([]models.InterviewSession{}, in...)
	for i := range out {
		out[i].QAPairs = append([]models.QAPair{}, out[i].QAPairs...)
	}
	return out
}

func (s *MemStore) SaveAudio(interviewID string, questionNumber int, data []byte) (string, error) {
	path := fmt.Sprintf("%s_q%d.webm", interviewID, questionNumber)
	s.AudioFiles[path] = append([]byte{}, data...)
	return path, nil
}
