package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/botboss/botboss-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreFreshDirectory(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Collections that have never been written read as empty, not as errors.
	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)

	interviews, err := s.Interviews()
	require.NoError(t, err)
	assert.Empty(t, interviews)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	answer := "Four years of Go."
	session := models.InterviewSession{
		ID:              "int_20240101120000",
		JobID:           "job_1",
		Status:          models.InterviewInProgress,
		CurrentQuestion: 1,
		TotalQuestions:  5,
		QAPairs: []models.QAPair{
			{QuestionNumber: 1, Question: "Why Go?", Answer: &answer},
		},
	}
	require.NoError(t, s.SaveInterviews([]models.InterviewSession{session}))

	loaded, err := s.Interviews()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "int_20240101120000", loaded[0].ID)
	require.NotNil(t, loaded[0].QAPairs[0].Answer)
	assert.Equal(t, answer, *loaded[0].QAPairs[0].Answer)

	// Saves replace the whole collection.
	require.NoError(t, s.SaveInterviews([]models.InterviewSession{}))
	loaded, err = s.Interviews()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStoreEmptyFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobs.json"), []byte("  \n"), 0o644))
	jobs, err := s.Jobs()
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSaveAudio(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	path, err := s.SaveAudio("int_1", 3, []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recordings", "int_1_q3.webm"), path)

	// Resubmission overwrites the same file.
	path2, err := s.SaveAudio("int_1", 3, []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}
