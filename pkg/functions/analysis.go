package functions

import (
	"context"

	"github.com/windfall/lingua_service/pkg/models"
)

// CheckGrammar invokes check-grammar.
func (c *Client) CheckGrammar(ctx context.Context, text string) models.Result[models.GrammarCheckResult] {
	var out models.GrammarCheckResult
	if err := c.Invoke(ctx, models.FunctionCheckGrammar, models.GrammarCheckRequest{Text: text}, &out); err != nil {
		return models.Fail[models.GrammarCheckResult](err.Error())
	}
	out.Normalize()
	return models.Ok(out)
}

// AnalyzePronunciation invokes analyze-pronunciation with base64 audio.
func (c *Client) AnalyzePronunciation(ctx context.Context, audioB64 string) models.Result[models.PronunciationResult] {
	var out models.PronunciationResult
	if err := c.Invoke(ctx, models.FunctionAnalyzePronunciation, models.PronunciationRequest{Audio: audioB64}, &out); err != nil {
		return models.Fail[models.PronunciationResult](err.Error())
	}
	out.Normalize()
	return models.Ok(out)
}

// LookupWord invokes lookup-word.
func (c *Client) LookupWord(ctx context.Context, word string) models.Result[models.WordLookupResult] {
	var out models.WordLookupResult
	if err := c.Invoke(ctx, models.FunctionLookupWord, models.WordLookupRequest{Word: word}, &out); err != nil {
		return models.Fail[models.WordLookupResult](err.Error())
	}
	out.Normalize()
	return models.Ok(out)
}
