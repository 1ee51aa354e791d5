package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backendJob() models.Job {
	return models.Job{
		ID:          "job_1",
		Title:       "Backend Engineer",
		Description: "Build and run Go services.",
		Status:      models.JobActive,
		CompanyID:   "company_1",
	}
}

func newInterviewFixture(t *testing.T) (*InterviewService, *store.MemStore, *fakeLLM, *fakeTranscriber) {
	t.Helper()
	mem := store.NewMemStore()
	mem.JobRecords = []models.Job{backendJob()}
	llm := &fakeLLM{}
	transcriber := &fakeTranscriber{}
	return NewInterviewService(mem, llm, transcriber), mem, llm, transcriber
}

func TestStartInterview(t *testing.T) {
	svc, mem, llm, _ := newInterviewFixture(t)
	llm.responses = []string{"  What drew you to backend work?  "}

	result, err := svc.StartInterview(context.Background(), "app_1", "job_1", "Sam")
	require.NoError(t, err)

	assert.Equal(t, "What drew you to backend work?", result.Question, "question should be trimmed")
	assert.Equal(t, 1, result.QuestionNumber)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.NotEmpty(t, result.InterviewID)

	require.Len(t, mem.InterviewRecords, 1)
	session := mem.InterviewRecords[0]
	assert.Equal(t, models.InterviewInProgress, session.Status)
	assert.Equal(t, 1, session.CurrentQuestion)
	assert.Len(t, session.QAPairs, session.CurrentQuestion)
	assert.Nil(t, session.QAPairs[0].Answer)
	assert.Equal(t, "app_1", session.ApplicationID)
	assert.Equal(t, "Backend Engineer", session.JobTitle)

	// Opening call is a single system turn at the fixed temperature.
	require.Len(t, llm.conversations, 1)
	require.Len(t, llm.conversations[0], 1)
	assert.Equal(t, RoleSystem, llm.conversations[0][0].Role)
	assert.Contains(t, llm.conversations[0][0].Content, "Backend Engineer")
	assert.Contains(t, llm.conversations[0][0].Content, "Build and run Go services.")
	assert.InDelta(t, 0.7, llm.temperatures[0], 0.0001)
}

func TestStartInterviewUnknownJob(t *testing.T) {
	svc, mem, _, _ := newInterviewFixture(t)

	_, err := svc.StartInterview(context.Background(), "app_1", "job_missing", "Sam")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, mem.InterviewRecords, "nothing should be persisted")
}

func TestStartInterviewUpstreamFailure(t *testing.T) {
	svc, mem, llm, _ := newInterviewFixture(t)
	llm.err = errors.New("model unavailable")

	_, err := svc.StartInterview(context.Background(), "app_1", "job_1", "Sam")
	require.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, mem.InterviewRecords)
}

func startSession(t *testing.T, svc *InterviewService) string {
	t.Helper()
	result, err := svc.StartInterview(context.Background(), "app_1", "job_1", "Sam")
	require.NoError(t, err)
	return result.InterviewID
}

func TestSubmitAnswerRejectsEmptyAudio(t *testing.T) {
	svc, _, _, _ := newInterviewFixture(t)
	id := startSession(t, svc)

	_, err := svc.SubmitAnswer(context.Background(), id, 1, nil)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestSubmitAnswerUnknownInterview(t *testing.T) {
	svc, _, _, _ := newInterviewFixture(t)

	_, err := svc.SubmitAnswer(context.Background(), "int_nope", 1, []byte("audio"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	svc, _, _, _ := newInterviewFixture(t)
	id := startSession(t, svc)

	// Question 3 was never issued; the answer must not be silently dropped.
	_, err := svc.SubmitAnswer(context.Background(), id, 3, []byte("audio"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAnswerContinues(t *testing.T) {
	svc, mem, llm, transcriber := newInterviewFixture(t)
	llm.responses = []string{"Opening question?", "Tell me about a service you ran in production."}
	transcriber.text = "I have been writing Go for four years."
	id := startSession(t, svc)

	result, err := svc.SubmitAnswer(context.Background(), id, 1, []byte("audio-bytes"))
	require.NoError(t, err)

	assert.False(t, result.IsComplete)
	assert.Equal(t, "Tell me about a service you ran in production.", result.Question)
	assert.Equal(t, 2, result.QuestionNumber)
	assert.Equal(t, 5, result.TotalQuestions)

	session := mem.InterviewRecords[0]
	assert.Equal(t, models.InterviewInProgress, session.Status)
	assert.Equal(t, 2, session.CurrentQuestion)
	require.Len(t, session.QAPairs, 2)
	require.NotNil(t, session.QAPairs[0].Answer)
	assert.Equal(t, "I have been writing Go for four years.", *session.QAPairs[0].Answer)
	assert.Equal(t, fmt.Sprintf("%s_q1.webm", id), session.QAPairs[0].AudioPath)
	assert.Nil(t, session.QAPairs[1].Answer)
	assert.Equal(t, 2, session.QAPairs[1].QuestionNumber)

	// Audio was stored before transcription, under the deterministic name.
	require.Len(t, transcriber.paths, 1)
	assert.Equal(t, fmt.Sprintf("%s_q1.webm", id), transcriber.paths[0])
	assert.Equal(t, []byte("audio-bytes"), mem.AudioFiles[transcriber.paths[0]])
}

func TestConversationReconstruction(t *testing.T) {
	svc, _, llm, transcriber := newInterviewFixture(t)
	llm.responses = []string{"Q1?", "Q2?", "Q3?"}
	id := startSession(t, svc)

	transcriber.text = "Answer one."
	_, err := svc.SubmitAnswer(context.Background(), id, 1, []byte("a1"))
	require.NoError(t, err)

	transcriber.text = "Answer two."
	_, err = svc.SubmitAnswer(context.Background(), id, 2, []byte("a2"))
	require.NoError(t, err)

	// Third call generated question 3: one system turn, then an
	// assistant/user pair per answered question, in question order.
	require.Len(t, llm.conversations, 3)
	conversation := llm.conversations[2]
	require.Len(t, conversation, 5)
	assert.Equal(t, RoleSystem, conversation[0].Role)
	assert.Contains(t, conversation[0].Content, "Backend Engineer")
	assert.Equal(t, RoleAssistant, conversation[1].Role)
	assert.Equal(t, "Q1?", conversation[1].Content)
	assert.Equal(t, RoleUser, conversation[2].Role)
	assert.Equal(t, "Answer one.", conversation[2].Content)
	assert.Equal(t, RoleAssistant, conversation[3].Role)
	assert.Equal(t, "Q2?", conversation[3].Content)
	assert.Equal(t, RoleUser, conversation[4].Role)
	assert.Equal(t, "Answer two.", conversation[4].Content)
}

func TestResubmissionOverwritesWithoutDuplicating(t *testing.T) {
	svc, mem, llm, transcriber := newInterviewFixture(t)
	llm.responses = []string{"Q1?", "Q2?"}
	id := startSession(t, svc)

	transcriber.text = "First take."
	first, err := svc.SubmitAnswer(context.Background(), id, 1, []byte("take-1"))
	require.NoError(t, err)
	require.Equal(t, 2, first.QuestionNumber)

	transcriber.text = "Second take."
	again, err := svc.SubmitAnswer(context.Background(), id, 1, []byte("take-2"))
	require.NoError(t, err)

	// The already-issued question 2 comes back; no duplicate pair, no
	// extra model call.
	assert.False(t, again.IsComplete)
	assert.Equal(t, "Q2?", again.Question)
	assert.Equal(t, 2, again.QuestionNumber)
	require.Len(t, llm.conversations, 2)

	session := mem.InterviewRecords[0]
	require.Len(t, session.QAPairs, 2)
	require.NotNil(t, session.QAPairs[0].Answer)
	assert.Equal(t, "Second take.", *session.QAPairs[0].Answer)
	assert.Equal(t, []byte("take-2"), mem.AudioFiles[session.QAPairs[0].AudioPath])
	assert.Equal(t, 2, session.CurrentQuestion)
}

func TestTranscriptionFailure(t *testing.T) {
	svc, mem, _, transcriber := newInterviewFixture(t)
	id := startSession(t, svc)
	transcriber.err = errors.New("speech service down")

	_, err := svc.SubmitAnswer(context.Background(), id, 1, []byte("audio"))
	require.ErrorIs(t, err, ErrUpstream)

	// The session record stays untouched; only the audio file was written.
	session := mem.InterviewRecords[0]
	require.Len(t, session.QAPairs, 1)
	assert.Nil(t, session.QAPairs[0].Answer)
}

func TestInterviewCompletesEndToEnd(t *testing.T) {
	svc, mem, llm, transcriber := newInterviewFixture(t)
	llm.responses = []string{"Q1?", "Q2?", "Q3?", "Q4?", "Q5?"}
	id := startSession(t, svc)

	for n := 1; n < 5; n++ {
		transcriber.text = fmt.Sprintf("Answer %d.", n)
		result, err := svc.SubmitAnswer(context.Background(), id, n, []byte("audio"))
		require.NoError(t, err)
		assert.False(t, result.IsComplete)
		assert.Equal(t, n+1, result.QuestionNumber)
		assert.Equal(t, 5, result.TotalQuestions)

		session := mem.InterviewRecords[0]
		assert.Len(t, session.QAPairs, session.CurrentQuestion)
	}

	transcriber.text = "Answer 5."
	result, err := svc.SubmitAnswer(context.Background(), id, 5, []byte("audio"))
	require.NoError(t, err)
	assert.True(t, result.IsComplete)
	assert.Empty(t, result.Question, "no further question after the last answer")

	session := mem.InterviewRecords[0]
	assert.Equal(t, models.InterviewCompleted, session.Status)
	require.NotNil(t, session.CompletedAt)
	require.Len(t, session.QAPairs, 5)
	for _, qa := range session.QAPairs {
		require.NotNil(t, qa.Answer)
	}
}

func TestGetInterview(t *testing.T) {
	svc, _, _, _ := newInterviewFixture(t)
	id := startSession(t, svc)

	session, err := svc.GetInterview(id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)

	_, err = svc.GetInterview("int_missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListCompanyInterviews(t *testing.T) {
	svc, mem, _, _ := newInterviewFixture(t)
	id := startSession(t, svc)

	mem.JobRecords = append(mem.JobRecords, models.Job{ID: "job_2", CompanyID: "company_2", Status: models.JobActive})

	mine, err := svc.ListCompanyInterviews("company_1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, id, mine[0].ID)

	theirs, err := svc.ListCompanyInterviews("company_2")
	require.NoError(t, err)
	assert.Empty(t, theirs)

	// A company with no jobs at all gets an empty list, not an error.
	nobody, err := svc.ListCompanyInterviews("company_unknown")
	require.NoError(t, err)
	assert.NotNil(t, nobody)
	assert.Empty(t, nobody)
}
