package services

import (
	"context"
	"fmt"
)

// fakeLLM replays scripted question texts and records every conversation it
// was asked to complete.
type fakeLLM struct {
	responses []string
	calls     int

	conversations [][]ChatMessage
	temperatures  []float64

	err error
}

func (f *fakeLLM) Complete(_ context.Context, conversation []ChatMessage, temperature float64) (string, error) {
	f.conversations = append(f.conversations, conversation)
	f.temperatures = append(f.temperatures, temperature)
	if f.err != nil {
		return "", f.err
	}
	f.calls++
	if f.calls <= len(f.responses) {
		return f.responses[f.calls-1], nil
	}
	return fmt.Sprintf("  Scripted question %d?  ", f.calls), nil
}

// fakeTranscriber returns a canned transcript derived from the audio path.
type fakeTranscriber struct {
	text  string
	err   error
	paths []string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	f.paths = append(f.paths, audioPath)
	if f.err != nil {
		return "", f.err
	}
	if f.text != "" {
		return f.text, nil
	}
	return "transcript of " + audioPath, nil
}
