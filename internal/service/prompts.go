package service

import "fmt"

const grammarSystemPrompt = `You are a grammar expert. Analyze the text for grammar mistakes and provide detailed corrections.
Return as JSON with an array of errors, where each error has:
- wrongSentence: the original incorrect text
- correctSentence: the corrected version
- message: brief description of the issue
- explanation: why it's wrong and how it's fixed
If there are no errors, return an empty errors array.
Return ONLY the JSON object {"errors": [...]}, no markdown.`

const pronunciationSystemPrompt = `You are a pronunciation coach. Analyze the transcribed text and provide pronunciation feedback
with an accuracy score (0-100), the transcription, and specific improvement suggestions.
Return as JSON with fields: score, transcription, suggestions (array of strings).
Return ONLY the JSON object, no markdown.`

const dictionarySystemPrompt = `You are a dictionary. Provide word definitions in JSON format with:
word, phonetic, meanings (array with partOfSpeech and definitions array with definition and example), synonyms (array).
Be concise. Return ONLY the JSON object, no markdown.`

func grammarUserPrompt(text string) string {
	return fmt.Sprintf("Check this text for grammar mistakes: %q", text)
}

func pronunciationUserPrompt(transcript string) string {
	return fmt.Sprintf("Analyze this transcribed speech: %q. Provide pronunciation feedback.", transcript)
}

func dictionaryUserPrompt(word string) string {
	return fmt.Sprintf("Define the word: %q", word)
}
