// Package ui holds the terminal front end of lingo: input capture, the
// per-feature controls and result rendering.
package ui

import (
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// Validation failures reported before any call is made.
var (
	ErrNoText  = stderrors.New("Please enter some text to check")
	ErrNoWord  = stderrors.New("Please enter a word to look up")
	ErrNoAudio = stderrors.New("Please record some audio first")
)

// CaptureText returns text unchanged unless it is blank.
func CaptureText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// CaptureWord trims the word and rejects blanks.
func CaptureWord(word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", ErrNoWord
	}
	return word, nil
}

// CaptureAudio reads a recording and returns it base64-encoded.
func CaptureAudio(r io.Reader) (string, error) {
	if r == nil {
		return "", ErrNoAudio
	}
	audio, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read recording: %w", err)
	}
	if len(audio) == 0 {
		return "", ErrNoAudio
	}
	return base64.StdEncoding.EncodeToString(audio), nil
}
