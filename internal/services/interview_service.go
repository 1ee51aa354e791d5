package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
)

const (
	// Every session asks the same number of questions, fixed at creation.
	questionsPerInterview = 5

	questionTemperature = 0.7
)

// InterviewService owns the interview session lifecycle: question
// sequencing, answer ingestion, conversation reconstruction and completion
// detection. The language model and the transcriber are injected ports.
type InterviewService struct {
	Store       store.Store
	LLM         QuestionGenerator
	Transcriber Transcriber
}

func NewInterviewService(s store.Store, llm QuestionGenerator, transcriber Transcriber) *InterviewService {
	return &InterviewService{
		Store:       s,
		LLM:         llm,
		Transcriber: transcriber,
	}
}

type StartResult struct {
	InterviewID    string `json:"interviewId"`
	Question       string `json:"question"`
	QuestionNumber int    `json:"questionNumber"`
	TotalQuestions int    `json:"totalQuestions"`
}

type AnswerResult struct {
	IsComplete     bool   `json:"isComplete"`
	Question       string `json:"question,omitempty"`
	QuestionNumber int    `json:"questionNumber,omitempty"`
	TotalQuestions int    `json:"totalQuestions"`
}

// StartInterview creates a session for a job and asks the model for the
// opening question. Nothing is persisted if the job is unknown or the model
// call fails.
func (s *InterviewService) StartInterview(ctx context.Context, applicationID, jobID, candidateName string) (*StartResult, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	job := findJob(jobs, jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	question, err := s.LLM.Complete(ctx, []ChatMessage{
		{Role: RoleSystem, Content: openingPrompt(job)},
	}, questionTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: generating opening question: %v", ErrUpstream, err)
	}
	question = strings.TrimSpace(question)

	now := time.Now()
	interview := models.InterviewSession{
		ID:              "int_" + now.Format("20060102150405"),
		ApplicationID:   applicationID,
		JobID:           jobID,
		JobTitle:        job.Title,
		CandidateName:   candidateName,
		StartedAt:       now,
		Status:          models.InterviewInProgress,
		CurrentQuestion: 1,
		TotalQuestions:  questionsPerInterview,
		QAPairs: []models.QAPair{
			{
				QuestionNumber: 1,
				Question:       question,
				Answer:         nil,
				Timestamp:      now,
			},
		},
	}

	interviews, err := s.Store.Interviews()
	if err != nil {
		return nil, err
	}
	interviews = append(interviews, interview)
	if err := s.Store.SaveInterviews(interviews); err != nil {
		return nil, err
	}

	return &StartResult{
		InterviewID:    interview.ID,
		Question:       question,
		QuestionNumber: 1,
		TotalQuestions: interview.TotalQuestions,
	}, nil
}

// SubmitAnswer stores the raw recording, transcribes it into the matching
// QAPair, and either completes the session (last question) or asks the model
// for the next question based on the answered history so far.
//
// Resubmitting an already-answered question overwrites that pair's answer
// and recording; the follow-up question is never duplicated, the one issued
// earlier is returned again instead.
func (s *InterviewService) SubmitAnswer(ctx context.Context, interviewID string, questionNumber int, audio []byte) (*AnswerResult, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: no audio provided", ErrBadRequest)
	}

	audioPath, err := s.Store.SaveAudio(interviewID, questionNumber, audio)
	if err != nil {
		return nil, err
	}

	answer, err := s.Transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: transcribing answer: %v", ErrUpstream, err)
	}

	interviews, err := s.Store.Interviews()
	if err != nil {
		return nil, err
	}
	idx := findInterview(interviews, interviewID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: interview %s", ErrNotFound, interviewID)
	}
	interview := &interviews[idx]

	pair := pairByNumber(interview, questionNumber)
	if pair == nil {
		return nil, fmt.Errorf("%w: question %d in interview %s", ErrNotFound, questionNumber, interviewID)
	}
	pair.Answer = &answer
	pair.AudioPath = audioPath

	if questionNumber >= interview.TotalQuestions {
		// Completed transitions exactly once; a resubmitted final answer
		// keeps the original completion time.
		if interview.Status != models.InterviewCompleted {
			now := time.Now()
			interview.Status = models.InterviewCompleted
			interview.CompletedAt = &now
		}
		if err := s.Store.SaveInterviews(interviews); err != nil {
			return nil, err
		}
		return &AnswerResult{
			IsComplete:     true,
			TotalQuestions: interview.TotalQuestions,
		}, nil
	}

	nextNumber := questionNumber + 1
	if existing := pairByNumber(interview, nextNumber); existing != nil {
		// Resubmission: the next question was already issued, don't ask the
		// model again.
		if err := s.Store.SaveInterviews(interviews); err != nil {
			return nil, err
		}
		return &AnswerResult{
			IsComplete:     false,
			Question:       existing.Question,
			QuestionNumber: existing.QuestionNumber,
			TotalQuestions: interview.TotalQuestions,
		}, nil
	}

	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	job := findJob(jobs, interview.JobID)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, interview.JobID)
	}

	nextQuestion, err := s.LLM.Complete(ctx, buildConversation(job, interview.QAPairs), questionTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: generating next question: %v", ErrUpstream, err)
	}
	nextQuestion = strings.TrimSpace(nextQuestion)

	interview.QAPairs = append(interview.QAPairs, models.QAPair{
		QuestionNumber: nextNumber,
		Question:       nextQuestion,
		Answer:         nil,
		Timestamp:      time.Now(),
	})
	if nextNumber > interview.CurrentQuestion {
		interview.CurrentQuestion = nextNumber
	}
	if err := s.Store.SaveInterviews(interviews); err != nil {
		return nil, err
	}

	return &AnswerResult{
		IsComplete:     false,
		Question:       nextQuestion,
		QuestionNumber: nextNumber,
		TotalQuestions: interview.TotalQuestions,
	}, nil
}

func (s *InterviewService) GetInterview(id string) (models.InterviewSession, error) {
	interviews, err := s.Store.Interviews()
	if err != nil {
		return models.InterviewSession{}, err
	}
	idx := findInterview(interviews, id)
	if idx < 0 {
		return models.InterviewSession{}, fmt.Errorf("%w: interview %s", ErrNotFound, id)
	}
	return interviews[idx], nil
}

// ListCompanyInterviews returns the sessions belonging to jobs owned by the
// company. A company with no jobs gets an empty list, not an error.
func (s *InterviewService) ListCompanyInterviews(companyID string) ([]models.InterviewSession, error) {
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

	interviews, err := s.Store.Interviews()
	if err != nil {
		return nil, err
	}
	result := []models.InterviewSession{}
	for _, interview := range interviews {
		if companyJobs[interview.JobID] {
			result = append(result, interview)
		}
	}
	return result, nil
}

// The conversation always opens with one system turn, then one
// assistant/user turn per answered question in question order. Unanswered
// pairs are left out.
func buildConversation(job *models.Job, pairs []models.QAPair) []ChatMessage {
	conversation := []ChatMessage{
		{Role: RoleSystem, Content: nextQuestionPrompt(job)},
	}
	for _, qa := range pairs {
		if qa.Answer == nil {
			continue
		}
		conversation = append(conversation,
			ChatMessage{Role: RoleAssistant, Content: qa.Question},
			ChatMessage{Role: RoleUser, Content: *qa.Answer},
		)
	}
	return conversation
}

func openingPrompt(job *models.Job) string {
	return fmt.Sprintf(`You are conducting a professional interview for the job: %s
Job Description: %s

Ask ONE short opening interview question.`, job.Title, job.Description)
}

func nextQuestionPrompt(job *models.Job) string {
	return fmt.Sprintf(`You are conducting a professional interview for: %s
Job Description: %s

Ask the next relevant interview question based on previous answers.
Ask ONLY one question.`, job.Title, job.Description)
}

func findInterview(interviews []models.InterviewSession, id string) int {
	for i := range interviews {
		if interviews[i].ID == id {
			return i
		}
	}
	return -1
}

func pairByNumber(interview *models.InterviewSession, questionNumber int) *models.QAPair {
	for i := range interview.QAPairs {
		if interview.QAPairs[i].QuestionNumber == questionNumber {
			return &interview.QAPairs[i]
		}
	}
	return nil
}
