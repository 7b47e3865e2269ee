package client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/pkg/models"
)

// DefaultDictionaryURL is the Free Dictionary API entries endpoint.
const DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// ErrWordNotFound is returned when the dictionary has no entry (HTTP 404).
var ErrWordNotFound = stderrors.New("dictionary: word not found")

// DictionaryClient fetches entries from the Free Dictionary API.
type DictionaryClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewDictionaryClient creates a client against baseURL; an empty baseURL uses the public API.
func NewDictionaryClient(baseURL string, timeout time.Duration, log zerolog.Logger) *DictionaryClient {
	if baseURL == "" {
		baseURL = DefaultDictionaryURL
	}
	return &DictionaryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("client", "dictionary").Logger(),
	}
}

// FetchEntry looks up the lowercase form of word and reshapes the first entry.
// The request is made once; callers decide what to do on failure.
func (c *DictionaryClient) FetchEntry(ctx context.Context, word string) (*models.WordLookupResult, error) {
	key := strings.ToLower(strings.TrimSpace(word))
	reqURL := c.baseURL + "/" + url.PathEscape(key)

	c.log.Debug().Str("word", key).Msg("dictionary request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrWordNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read body: %w", err)
	}

	var entries []dictEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("dictionary: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrWordNotFound
	}

	result := mapDictEntry(entries[0])

	c.log.Debug().
		Str("word", key).
		Int("meanings", len(result.Meanings)).
		Int("synonyms", len(result.Synonyms)).
		Msg("dictionary response")

	return result, nil
}

// mapDictEntry reshapes one API entry. Meaning order is preserved; synonyms
// come from the first meaning, as the API groups them per part of speech.
func mapDictEntry(entry dictEntry) *models.WordLookupResult {
	result := &models.WordLookupResult{
		Word:     entry.Word,
		Phonetic: entry.Phonetic,
		Meanings: make([]models.Meaning, 0, len(entry.Meanings)),
	}

	if result.Phonetic == "" {
		for _, ph := range entry.Phonetics {
			if ph.Text != "" {
				result.Phonetic = ph.Text
				break
			}
		}
	}

	for _, m := range entry.Meanings {
		meaning := models.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]models.Definition, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, models.Definition{
				Definition: d.Definition,
				Example:    d.Example,
			})
		}
		result.Meanings = append(result.Meanings, meaning)
	}

	if len(entry.Meanings) > 0 {
		result.Synonyms = entry.Meanings[0].Synonyms
	}

	result.Normalize()
	return result
}

// dictEntry is a single entry of the API response array (one per etymology).
type dictEntry struct {
	Word      string         `json:"word"`
	Phonetic  string         `json:"phonetic"`
	Phonetics []dictPhonetic `json:"phonetics"`
	Meanings  []dictMeaning  `json:"meanings"`
}

type dictPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type dictMeaning struct {
	PartOfSpeech string           `json:"partOfSpeech"`
	Definitions  []dictDefinition `json:"definitions"`
	Synonyms     []string         `json:"synonyms"`
}

type dictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
