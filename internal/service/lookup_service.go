package service

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/errors"
	"github.com/windfall/lingua_service/pkg/models"
)

// LookupService resolves words through an ordered list of strategies.
type LookupService struct {
	strategies []LookupStrategy
	log        zerolog.Logger
}

// NewLookupService creates a LookupService that tries strategies in order.
func NewLookupService(log zerolog.Logger, strategies ...LookupStrategy) *LookupService {
	return &LookupService{
		strategies: strategies,
		log:        log.With().Str("service", "lookup").Logger(),
	}
}

// NewDefaultLookupService prefers the dictionary and falls back to the model.
func NewDefaultLookupService(dict DictionaryFetcher, ai TextGenerator, log zerolog.Logger) *LookupService {
	return NewLookupService(log,
		NewDictionaryStrategy(dict, log),
		NewAIStrategy(ai, log),
	)
}

// Lookup returns the first entry any strategy produces.
func (s *LookupService) Lookup(ctx context.Context, word string) (*models.WordLookupResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errors.Validation("No word provided")
	}

	for _, strategy := range s.strategies {
		entry, err := strategy.Resolve(ctx, word)
		if stderrors.Is(err, ErrTryNext) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.log.Debug().Str("word", word).Str("strategy", strategy.Name()).Msg("word resolved")
		return entry, nil
	}

	return nil, errors.New(errors.ErrDictionary, "Unable to look up word")
}
