package service

import (
	"context"
	"sync"

	"github.com/windfall/lingua_service/pkg/models"
)

type generateCall struct {
	system string
	user   string
}

type stubGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []generateCall
}

func (g *stubGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, generateCall{system: systemPrompt, user: userPrompt})
	return g.reply, g.err
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type stubFetcher struct {
	entry *models.WordLookupResult
	err   error
	words []string
}

func (f *stubFetcher) FetchEntry(_ context.Context, word string) (*models.WordLookupResult, error) {
	f.words = append(f.words, word)
	return f.entry, f.err
}

type stubTranscriber struct {
	text  string
	err   error
	audio []byte
}

func (t *stubTranscriber) Transcribe(_ context.Context, audio []byte, _ string) (string, error) {
	t.audio = audio
	return t.text, t.err
}
