package service

import (
	"context"
	"encoding/base64"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/errors"
	"github.com/windfall/lingua_service/pkg/models"
)

// DefaultPronunciationScore is reported when the model reply cannot be parsed.
const DefaultPronunciationScore = 85

var defaultSuggestions = []string{
	"Focus on clear enunciation of consonants",
	"Practice vowel sounds",
	"Maintain consistent pace",
}

// PronunciationService scores a spoken recording.
type PronunciationService struct {
	ai          TextGenerator
	transcriber Transcriber
	language    string
	log         zerolog.Logger
}

// NewPronunciationService creates a new PronunciationService. A nil
// transcriber falls back to PlaceholderTranscriber.
func NewPronunciationService(ai TextGenerator, transcriber Transcriber, language string, log zerolog.Logger) *PronunciationService {
	if transcriber == nil {
		transcriber = PlaceholderTranscriber{}
	}
	return &PronunciationService{
		ai:          ai,
		transcriber: transcriber,
		language:    language,
		log:         log.With().Str("service", "pronunciation").Logger(),
	}
}

// Analyze decodes the base64 recording, transcribes it and asks the model for
// feedback. An unparsable reply yields a canned result.
func (s *PronunciationService) Analyze(ctx context.Context, audioB64 string) (*models.PronunciationResult, error) {
	audio, err := decodeAudio(audioB64)
	if err != nil {
		return nil, err
	}

	transcript := s.transcribe(ctx, audio)

	reply, err := s.ai.Generate(ctx, pronunciationSystemPrompt, pronunciationUserPrompt(transcript))
	if err != nil {
		return nil, upstreamError("AI analysis failed", err)
	}

	result, ok := parsePronunciationReply(reply)
	if !ok {
		s.log.Warn().Int("reply_len", len(reply)).Msg("unparsable pronunciation reply, returning default feedback")
		result = defaultPronunciation(transcript)
	}
	if result.Transcription == "" {
		result.Transcription = transcript
	}
	result.Normalize()
	return result, nil
}

func (s *PronunciationService) transcribe(ctx context.Context, audio []byte) string {
	text, err := s.transcriber.Transcribe(ctx, audio, s.language)
	if err != nil {
		s.log.Warn().Err(err).Msg("transcription failed, using placeholder transcript")
		return PlaceholderTranscript
	}
	if strings.TrimSpace(text) == "" {
		return PlaceholderTranscript
	}
	return text
}

// decodeAudio accepts standard or unpadded base64, optionally behind a data URL prefix.
func decodeAudio(audioB64 string) ([]byte, error) {
	encoded := strings.TrimSpace(audioB64)
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+len(";base64,"):]
	}
	if encoded == "" {
		return nil, errors.Validation("No audio provided")
	}

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		audio, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrValidation, "Invalid audio encoding", err)
	}
	if len(audio) == 0 {
		return nil, errors.Validation("No audio provided")
	}
	return audio, nil
}

func parsePronunciationReply(reply string) (*models.PronunciationResult, bool) {
	var raw struct {
		Score         *float64 `json:"score"`
		Transcription string   `json:"transcription"`
		Suggestions   []string `json:"suggestions"`
	}
	if err := decodeReply(reply, &raw); err != nil {
		return nil, false
	}

	result := &models.PronunciationResult{
		Transcription: raw.Transcription,
		Suggestions:   raw.Suggestions,
	}
	if raw.Score != nil {
		result.Score = int(math.Round(math.Max(0, math.Min(100, *raw.Score))))
	}
	return result, true
}

func defaultPronunciation(transcript string) *models.PronunciationResult {
	suggestions := make([]string, len(defaultSuggestions))
	copy(suggestions, defaultSuggestions)
	return &models.PronunciationResult{
		Score:         DefaultPronunciationScore,
		Transcription: transcript,
		Suggestions:   suggestions,
	}
}
