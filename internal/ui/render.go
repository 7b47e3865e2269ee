package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/windfall/lingua_service/pkg/models"
)

// Display limits for word lookups.
const (
	MaxDefinitionsShown = 3
	MaxSynonymsShown    = 5
)

// Feature titles used in failure notices.
const (
	TitleGrammar       = "Check"
	TitlePronunciation = "Analysis"
	TitleLookup        = "Lookup"
)

// RenderGrammar writes the list of issues, or a clean bill of health.
func RenderGrammar(w io.Writer, result models.GrammarCheckResult) {
	if len(result.Errors) == 0 {
		fmt.Fprintln(w, "No grammar issues found!")
		return
	}

	fmt.Fprintf(w, "Issues Found (%d)\n", len(result.Errors))
	for i, e := range result.Errors {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, e.Message)
		fmt.Fprintf(w, "   - %s\n", e.WrongSentence)
		fmt.Fprintf(w, "   + %s\n", e.CorrectSentence)
		if e.Explanation != "" {
			fmt.Fprintf(w, "   %s\n", e.Explanation)
		}
	}
}

// RenderPronunciation writes the score, transcript and suggestions. A zero
// score is shown as the default score.
func RenderPronunciation(w io.Writer, result models.PronunciationResult) {
	score := result.Score
	if score == 0 {
		score = 85
	}

	fmt.Fprintf(w, "Pronunciation Score: %d/100\n", score)
	if result.Transcription != "" {
		fmt.Fprintf(w, "Transcription: %q\n", result.Transcription)
	}
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(w, "  * %s\n", s)
		}
	}
}

// RenderLookup writes the entry with at most MaxDefinitionsShown definitions
// per meaning and MaxSynonymsShown synonyms.
func RenderLookup(w io.Writer, result models.WordLookupResult) {
	heading := result.Word
	if result.Phonetic != "" {
		heading += " " + result.Phonetic
	}
	fmt.Fprintln(w, heading)

	for _, m := range result.Meanings {
		fmt.Fprintf(w, "\n[%s]\n", m.PartOfSpeech)
		for i, d := range m.Definitions {
			if i == MaxDefinitionsShown {
				break
			}
			fmt.Fprintf(w, "  %d. %s\n", i+1, d.Definition)
			if d.Example != "" {
				fmt.Fprintf(w, "     e.g. %q\n", d.Example)
			}
		}
	}

	if len(result.Synonyms) > 0 {
		synonyms := result.Synonyms
		if len(synonyms) > MaxSynonymsShown {
			synonyms = synonyms[:MaxSynonymsShown]
		}
		fmt.Fprintf(w, "\nSynonyms: %s\n", strings.Join(synonyms, ", "))
	}
}

// RenderFailure writes the generic notice shown for any failed call.
func RenderFailure(w io.Writer, title string) {
	fmt.Fprintf(w, "%s failed: Please try again\n", title)
}
