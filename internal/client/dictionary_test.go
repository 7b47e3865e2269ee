package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictServer(t *testing.T, status int, body string, calls *atomic.Int32, gotPath *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDictionaryClient_FetchEntry_Success(t *testing.T) {
	t.Parallel()

	body := `[{
		"word": "hello",
		"phonetics": [
			{"text": "", "audio": "https://example.com/hello-au.mp3"},
			{"text": "/həˈloʊ/", "audio": "https://example.com/hello-us.mp3"}
		],
		"meanings": [
			{
				"partOfSpeech": "noun",
				"definitions": [{"definition": "A greeting.", "example": "She gave a cheerful hello."}],
				"synonyms": ["greeting", "salutation"]
			},
			{
				"partOfSpeech": "interjection",
				"definitions": [
					{"definition": "Used as a greeting."},
					{"definition": "Used to attract attention."}
				],
				"synonyms": ["hi"]
			}
		]
	}]`

	var path string
	srv := newDictServer(t, http.StatusOK, body, nil, &path)

	c := NewDictionaryClient(srv.URL, 5*time.Second, zerolog.Nop())
	result, err := c.FetchEntry(context.Background(), "  HeLLo ")
	require.NoError(t, err)

	assert.Equal(t, "/hello", path)
	assert.Equal(t, "hello", result.Word)
	assert.Equal(t, "/həˈloʊ/", result.Phonetic)

	require.Len(t, result.Meanings, 2)
	assert.Equal(t, "noun", result.Meanings[0].PartOfSpeech)
	assert.Equal(t, "interjection", result.Meanings[1].PartOfSpeech)
	require.Len(t, result.Meanings[1].Definitions, 2)
	assert.Equal(t, "She gave a cheerful hello.", result.Meanings[0].Definitions[0].Example)
	assert.Empty(t, result.Meanings[1].Definitions[0].Example)

	assert.Equal(t, []string{"greeting", "salutation"}, result.Synonyms)
}

func TestDictionaryClient_FetchEntry_PrefersTopLevelPhonetic(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t, http.StatusOK,
		`[{"word":"run","phonetic":"/rʌn/","phonetics":[{"text":"/ɹʌn/"}],"meanings":[]}]`, nil, nil)

	c := NewDictionaryClient(srv.URL, time.Second, zerolog.Nop())
	result, err := c.FetchEntry(context.Background(), "run")
	require.NoError(t, err)

	assert.Equal(t, "/rʌn/", result.Phonetic)
	assert.NotNil(t, result.Meanings)
	assert.Empty(t, result.Meanings)
	assert.NotNil(t, result.Synonyms)
	assert.Empty(t, result.Synonyms)
}

func TestDictionaryClient_FetchEntry_MissingSynonymsDefaultsToEmpty(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t, http.StatusOK,
		`[{"word":"cat","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A feline."}]}]}]`, nil, nil)

	c := NewDictionaryClient(srv.URL, time.Second, zerolog.Nop())
	result, err := c.FetchEntry(context.Background(), "cat")
	require.NoError(t, err)

	assert.Equal(t, []string{}, result.Synonyms)
}

func TestDictionaryClient_FetchEntry_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		notFound bool
	}{
		{"not found", http.StatusNotFound, `{"title":"No Definitions Found"}`, true},
		{"empty array", http.StatusOK, `[]`, true},
		{"server error", http.StatusInternalServerError, ``, false},
		{"invalid json", http.StatusOK, `not json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := newDictServer(t, tt.status, tt.body, &calls, nil)

			c := NewDictionaryClient(srv.URL, time.Second, zerolog.Nop())
			result, err := c.FetchEntry(context.Background(), "word")
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.notFound, err == ErrWordNotFound)
			assert.Equal(t, int32(1), calls.Load(), "dictionary must not be retried")
		})
	}
}

func TestDictionaryClient_FetchEntry_EscapesWord(t *testing.T) {
	t.Parallel()

	var rawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewDictionaryClient(srv.URL, time.Second, zerolog.Nop())
	_, err := c.FetchEntry(context.Background(), "ice cream")
	require.ErrorIs(t, err, ErrWordNotFound)
	assert.Equal(t, "/ice%20cream", rawPath)
}
