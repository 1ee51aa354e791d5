package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/botboss/botboss-api/internal/models"
)

const (
	usersFile        = "users.json"
	jobsFile         = "jobs.json"
	applicationsFile = "applications.json"
	interviewsFile   = "interviews.json"
	recordingsDir    = "recordings"
)

// FileStore keeps every collection in a pretty-printed JSON file under a
// single data directory. Saves rewrite the whole file.
type FileStore struct {
	dataDir string
}

// NewFileStore creates the data and recordings directories if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dataDir, recordingsDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	log.Printf("Data will be saved in: %s", dataDir)
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) Users() ([]models.User, error) {
	return readCollection[models.User](filepath.Join(s.dataDir, usersFile))
}

func (s *FileStore) SaveUsers(users []models.User) error {
	return writeCollection(filepath.Join(s.dataDir, usersFile), users)
}

func (s *FileStore) Jobs() ([]models.Job, error) {
	return readCollection[models.Job](filepath.Join(s.dataDir, jobsFile))
}

func (s *FileStore) SaveJobs(jobs []models.Job) error {
	return writeCollection(filepath.Join(s.dataDir, jobsFile), jobs)
}

func (s *FileStore) Applications() ([]models.Application, error) {
	return readCollection[models.Application](filepath.Join(s.dataDir, applicationsFile))
}

func (s *FileStore) SaveApplications(applications []models.Application) error {
	return writeCollection(filepath.Join(s.dataDir, applicationsFile), applications)
}

func (s *FileStore) Interviews() ([]models.InterviewSession, error) {
	return readCollection[models.InterviewSession](filepath.Join(s.dataDir, interviewsFile))
}

func (s *FileStore) SaveInterviews(interviews []models.InterviewSession) error {
	return writeCollection(filepath.Join(s.dataDir, interviewsFile), interviews)
}

func (s *FileStore) SaveAudio(interviewID string, questionNumber int, data []byte) (string, error) {
	name := fmt.Sprintf("%s_q%d.webm", interviewID, questionNumber)
	path := filepath.Join(s.dataDir, recordingsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing audio file %s: %w", path, err)
	}
	return path, nil
}

// A missing or empty file reads as an empty collection, so fresh
// installations need no seeding step.
func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

func writeCollection[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
