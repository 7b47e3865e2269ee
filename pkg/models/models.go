// Package models holds the request and result payloads exchanged between the
// lingo client and the analysis functions.
package models

// Function names as exposed under /functions/v1/.
const (
	FunctionCheckGrammar         = "check-grammar"
	FunctionAnalyzePronunciation = "analyze-pronunciation"
	FunctionLookupWord           = "lookup-word"
)

// GrammarCheckRequest is the body of check-grammar.
type GrammarCheckRequest struct {
	Text string `json:"text"`
}

// GrammarError describes one grammar mistake.
type GrammarError struct {
	WrongSentence   string `json:"wrongSentence"`
	CorrectSentence string `json:"correctSentence"`
	Message         string `json:"message"`
	Explanation     string `json:"explanation"`
}

// GrammarCheckResult lists every mistake found; empty means none.
type GrammarCheckResult struct {
	Errors []GrammarError `json:"errors"`
}

// Normalize replaces a nil list with an empty one.
func (r *GrammarCheckResult) Normalize() {
	if r.Errors == nil {
		r.Errors = []GrammarError{}
	}
}

// PronunciationRequest is the body of analyze-pronunciation.
type PronunciationRequest struct {
	Audio string `json:"audio"`
}

// PronunciationResult is the feedback for one recording.
type PronunciationResult struct {
	Score         int      `json:"score"`
	Transcription string   `json:"transcription"`
	Suggestions   []string `json:"suggestions"`
}

// Normalize clamps the score to 0..100 and replaces a nil list.
func (r *PronunciationResult) Normalize() {
	switch {
	case r.Score < 0:
		r.Score = 0
	case r.Score > 100:
		r.Score = 100
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
}

// WordLookupRequest is the body of lookup-word.
type WordLookupRequest struct {
	Word string `json:"word"`
}

// Definition is one sense of a word.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// WordLookupResult is a dictionary entry.
type WordLookupResult struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic,omitempty"`
	Meanings []Meaning `json:"meanings"`
	Synonyms []string  `json:"synonyms"`
}

// Normalize replaces nil lists with empty ones.
func (r *WordLookupResult) Normalize() {
	if r.Meanings == nil {
		r.Meanings = []Meaning{}
	}
	for i := range r.Meanings {
		if r.Meanings[i].Definitions == nil {
			r.Meanings[i].Definitions = []Definition{}
		}
	}
	if r.Synonyms == nil {
		r.Synonyms = []string{}
	}
}

// ErrorResponse is returned by every function on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
