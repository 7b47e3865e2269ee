package service

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/errors"
	"github.com/windfall/lingua_service/pkg/models"
)

// ErrTryNext tells LookupService to move on to the next strategy.
var ErrTryNext = stderrors.New("lookup: try next strategy")

// LookupStrategy resolves a word to an entry. It returns ErrTryNext when it
// cannot answer and the chain should continue, or any other error to stop it.
type LookupStrategy interface {
	Name() string
	Resolve(ctx context.Context, word string) (*models.WordLookupResult, error)
}

// DictionaryFetcher is the structured data source behind DictionaryStrategy.
type DictionaryFetcher interface {
	FetchEntry(ctx context.Context, word string) (*models.WordLookupResult, error)
}

// DictionaryStrategy answers from a dictionary. Every failure, including a
// missing entry, defers to the next strategy.
type DictionaryStrategy struct {
	dict DictionaryFetcher
	log  zerolog.Logger
}

// NewDictionaryStrategy creates a DictionaryStrategy.
func NewDictionaryStrategy(dict DictionaryFetcher, log zerolog.Logger) *DictionaryStrategy {
	return &DictionaryStrategy{dict: dict, log: log}
}

// Name implements LookupStrategy.
func (s *DictionaryStrategy) Name() string { return "dictionary" }

// Resolve implements LookupStrategy.
func (s *DictionaryStrategy) Resolve(ctx context.Context, word string) (*models.WordLookupResult, error) {
	entry, err := s.dict.FetchEntry(ctx, word)
	if err != nil {
		s.log.Info().Err(err).Str("word", word).Msg("dictionary lookup failed, falling back")
		return nil, ErrTryNext
	}
	return entry, nil
}

// AIStrategy asks the text model to produce the entry.
type AIStrategy struct {
	ai  TextGenerator
	log zerolog.Logger
}

// NewAIStrategy creates an AIStrategy.
func NewAIStrategy(ai TextGenerator, log zerolog.Logger) *AIStrategy {
	return &AIStrategy{ai: ai, log: log}
}

// Name implements LookupStrategy.
func (s *AIStrategy) Name() string { return "ai" }

// Resolve implements LookupStrategy. An unconfigured provider defers to the
// next strategy; an unparsable reply is a hard failure.
func (s *AIStrategy) Resolve(ctx context.Context, word string) (*models.WordLookupResult, error) {
	reply, err := s.ai.Generate(ctx, dictionarySystemPrompt, dictionaryUserPrompt(word))
	if stderrors.Is(err, ErrNoProvider) {
		return nil, ErrTryNext
	}
	if err != nil {
		return nil, upstreamError("Word lookup failed", err)
	}

	var entry models.WordLookupResult
	if err := decodeReply(reply, &entry); err != nil {
		return nil, errors.Wrap(errors.ErrParse, "Could not parse definition", err)
	}
	if strings.TrimSpace(entry.Word) == "" {
		entry.Word = word
	}
	entry.Normalize()
	return &entry, nil
}
