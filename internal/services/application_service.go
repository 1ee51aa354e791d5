package services

import (
	"fmt"
	"time"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
)

type ApplicationService struct {
	Store store.Store
}

func NewApplicationService(s store.Store) *ApplicationService {
	return &ApplicationService{Store: s}
}

func (s *ApplicationService) List() ([]models.Application, error) {
	return s.Store.Applications()
}

// Create files an application against an active job. One application per
// (job, candidate email); the job's applicant counter is bumped alongside.
func (s *ApplicationService) Create(req dtos.ApplicationRequest) (models.Application, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return models.Application{}, err
	}
	job := findJob(jobs, req.JobID)
	if job == nil {
		return models.Application{}, fmt.Errorf("%w: job %s", ErrNotFound, req.JobID)
	}
	if job.Status != models.JobActive {
		return models.Application{}, fmt.Errorf("%w: this job is no longer accepting applications", ErrBadRequest)
	}

	applications, err := s.Store.Applications()
	if err != nil {
		return models.Application{}, err
	}
	for _, app := range applications {
		if app.JobID == req.JobID && app.CandidateEmail == req.CandidateEmail {
			return models.Application{}, fmt.Errorf("%w: you have already applied for this job", ErrConflict)
		}
	}

	now := time.Now()
	application := models.Application{
		ID:             fmt.Sprintf("app_%s_%d", now.Format("20060102150405"), len(applications)+1),
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		ResumeURL:      req.ResumeURL,
		AdditionalInfo: req.AdditionalInfo,
		AppliedDate:    now,
		Status:         models.ApplicationPending,
		UpdatedAt:      now,
	}

	job.Applicants++
	job.UpdatedAt = now
	if err := s.Store.SaveJobs(jobs); err != nil {
		return models.Application{}, err
	}

	applications = append(applications, application)
	if err := s.Store.SaveApplications(applications); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

// Update changes an application's status and/or review notes.
func (s *ApplicationService) Update(id string, req dtos.ApplicationUpdateRequest) (models.Application, error) {
	applications, err := s.Store.Applications()
	if err != nil {
		return models.Application{}, err
	}
	idx := -1
	for i := range applications {
		if applications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Application{}, fmt.Errorf("%w: application %s", ErrNotFound, id)
	}

	applyIfSet(&applications[idx].Status, req.Status)
	applyIfSet(&applications[idx].Notes, req.Notes)
	applications[idx].UpdatedAt = time.Now()

	if err := s.Store.SaveApplications(applications); err != nil {
		return models.Application{}, err
	}
	return applications[idx], nil
}

// ListForCompany returns applications made to the company's jobs. A company
// with no jobs gets an empty list.
func (s *ApplicationService) ListForCompany(companyID string) ([]models.Application, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	companyJobs := map[string]bool{}
	for _, job := range jobs {
		if job.CompanyID == companyID {
			companyJobs[job.ID] = true
		}
	}

	applications, err := s.Store.Applications()
	if err != nil {
		return nil, err
	}
	result := []models.Application{}
	for _, app := range applications {
		if companyJobs[app.JobID] {
			result = append(result, app)
		}
	}
	return result, nil
}
