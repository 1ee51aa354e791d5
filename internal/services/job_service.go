package services

import (
	"fmt"
	"time"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
)

type JobService struct {
	Store store.Store
}

func NewJobService(s store.Store) *JobService {
	return &JobService{Store: s}
}

// ListActive returns only jobs still accepting applications, for the public
// board.
func (s *JobService) ListActive() ([]models.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	active := []models.Job{}
	for _, job := range jobs {
		if job.Status == models.JobActive {
			active = append(active, job)
		}
	}
	return active, nil
}

func (s *JobService) Create(req dtos.JobCreationRequest) (models.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return models.Job{}, err
	}

	now := time.Now()
	job := models.Job{
		ID:           fmt.Sprintf("job_%s_%d", now.Format("20060102150405"), len(jobs)+1),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Questions:    req.Questions,
		Status:       models.JobActive,
		PostedDate:   now,
		CompanyID:    req.CompanyID,
		CompanyName:  req.CompanyName,
		Applicants:   0,
		UpdatedAt:    now,
	}

	jobs = append(jobs, job)
	if err := s.Store.SaveJobs(jobs); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *JobService) Update(id string, req dtos.JobUpdateRequest) (models.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return models.Job{}, err
	}
	job := findJob(jobs, id)
	if job == nil {
		return models.Job{}, fmt.Errorf("%w: job %s", ErrNotFound, id)
	}

	applyIfSet(&job.Title, req.Title)
	applyIfSet(&job.Description, req.Description)
	applyIfSet(&job.Requirements, req.Requirements)
	applyIfSet(&job.Location, req.Location)
	applyIfSet(&job.Type, req.Type)
	applyIfSet(&job.Salary, req.Salary)
	applyIfSet(&job.Questions, req.Questions)
	applyIfSet(&job.Status, req.Status)
	job.UpdatedAt = time.Now()

	if err := s.Store.SaveJobs(jobs); err != nil {
		return models.Job{}, err
	}
	return *job, nil
}

// Delete removes the job and any applications that were made to it.
func (s *JobService) Delete(id string) (models.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return models.Job{}, err
	}
	idx := -1
	for i := range jobs {
		if jobs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Job{}, fmt.Errorf("%w: job %s", ErrNotFound, id)
	}
	deleted := jobs[idx]
	jobs = append(jobs[:idx], jobs[idx+1:]...)
	if err := s.Store.SaveJobs(jobs); err != nil {
		return models.Job{}, err
	}

	applications, err := s.Store.Applications()
	if err != nil {
		return models.Job{}, err
	}
	remaining := []models.Application{}
	for _, app := range applications {
		if app.JobID != id {
			remaining = append(remaining, app)
		}
	}
	if err := s.Store.SaveApplications(remaining); err != nil {
		return models.Job{}, err
	}

	return deleted, nil
}

func (s *JobService) ListForCompany(companyID string) ([]models.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	companyJobs := []models.Job{}
	for _, job := range jobs {
		if job.CompanyID == companyID {
			companyJobs = append(companyJobs, job)
		}
	}
	return companyJobs, nil
}

func findJob(jobs []models.Job, id string) *models.Job {
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
