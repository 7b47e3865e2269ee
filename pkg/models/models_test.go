package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Variants(t *testing.T) {
	t.Parallel()

	ok := Ok(GrammarCheckResult{Errors: []GrammarError{{Message: "m"}}})
	require.True(t, ok.IsOK())
	v, msg := ok.Unwrap()
	assert.Empty(t, msg)
	assert.Len(t, v.Errors, 1)

	failed := Fail[GrammarCheckResult]("Check failed")
	require.False(t, failed.IsOK())
	v, msg = failed.Unwrap()
	assert.Equal(t, "Check failed", msg)
	assert.Nil(t, v.Errors)
}

func TestPronunciationResult_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"negative clamps to zero", -5, 0},
		{"in range kept", 72, 72},
		{"above hundred clamps", 140, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := PronunciationResult{Score: tt.score}
			r.Normalize()
			assert.Equal(t, tt.want, r.Score)
			assert.NotNil(t, r.Suggestions)
		})
	}
}

func TestWordLookupResult_NormalizeEncodesEmptyLists(t *testing.T) {
	t.Parallel()

	r := WordLookupResult{Word: "run", Meanings: []Meaning{{PartOfSpeech: "verb"}}}
	r.Normalize()

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"word":"run","meanings":[{"partOfSpeech":"verb","definitions":[]}],"synonyms":[]}`,
		string(raw))
}

func TestGrammarCheckResult_NormalizeEncodesEmptyErrors(t *testing.T) {
	t.Parallel()

	var r GrammarCheckResult
	r.Normalize()

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[]}`, string(raw))
}
