package service

import "context"

// PlaceholderTranscript stands in for speech-to-text when no recognizer is configured.
const PlaceholderTranscript = "Hello, how are you today?"

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// PlaceholderTranscriber ignores the audio and returns PlaceholderTranscript.
type PlaceholderTranscriber struct{}

// Transcribe implements Transcriber.
func (PlaceholderTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return PlaceholderTranscript, nil
}
