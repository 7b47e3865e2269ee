package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/errors"
	"github.com/windfall/lingua_service/pkg/models"
)

// GrammarService checks free text for grammar mistakes.
type GrammarService struct {
	ai  TextGenerator
	log zerolog.Logger
}

// NewGrammarService creates a new GrammarService.
func NewGrammarService(ai TextGenerator, log zerolog.Logger) *GrammarService {
	return &GrammarService{
		ai:  ai,
		log: log.With().Str("service", "grammar").Logger(),
	}
}

// Check asks the model for a list of mistakes in text. A reply that cannot be
// parsed yields an empty list, never an error.
func (s *GrammarService) Check(ctx context.Context, text string) (*models.GrammarCheckResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Validation("No text provided")
	}

	reply, err := s.ai.Generate(ctx, grammarSystemPrompt, grammarUserPrompt(text))
	if err != nil {
		return nil, upstreamError("Grammar check failed", err)
	}

	result := parseGrammarReply(reply)
	if result == nil {
		s.log.Warn().Int("reply_len", len(reply)).Msg("unparsable grammar reply, returning no errors")
		result = &models.GrammarCheckResult{}
	}
	result.Normalize()
	return result, nil
}

// parseGrammarReply accepts {"errors": [...]} or a bare array of errors.
func parseGrammarReply(reply string) *models.GrammarCheckResult {
	var wrapped models.GrammarCheckResult
	if err := decodeReply(reply, &wrapped); err == nil {
		return &wrapped
	}

	var bare []models.GrammarError
	if err := decodeReply(reply, &bare); err == nil {
		return &models.GrammarCheckResult{Errors: bare}
	}
	return nil
}
