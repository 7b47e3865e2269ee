package ui

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/windfall/lingua_service/internal/session"
	"github.com/windfall/lingua_service/pkg/models"
)

var (
	// ErrSignedOut is returned when a feature is used without a session.
	ErrSignedOut = stderrors.New("ui: sign in to use the dashboard")
	// ErrRequestFailed is returned after a failure notice has been rendered.
	ErrRequestFailed = stderrors.New("ui: request failed")
)

// Analyzer is the remote side of the dashboard.
type Analyzer interface {
	CheckGrammar(ctx context.Context, text string) models.Result[models.GrammarCheckResult]
	AnalyzePronunciation(ctx context.Context, audioB64 string) models.Result[models.PronunciationResult]
	LookupWord(ctx context.Context, word string) models.Result[models.WordLookupResult]
}

// Submission holds the inputs for RunAll; empty fields are skipped.
type Submission struct {
	Text  string
	Audio io.Reader
	Word  string
}

// Dashboard runs the three features for a signed-in user. Each feature has
// its own Control so features run independently of one another.
type Dashboard struct {
	sessions session.Provider
	api      Analyzer
	log      zerolog.Logger

	grammar       *Control
	pronunciation *Control
	lookup        *Control

	outMu sync.Mutex
	out   io.Writer

	unsubscribe func()
}

// NewDashboard creates a dashboard writing to out and starts watching for sign-out.
func NewDashboard(sessions session.Provider, api Analyzer, out io.Writer, log zerolog.Logger) *Dashboard {
	d := &Dashboard{
		sessions:      sessions,
		api:           api,
		log:           log.With().Str("component", "dashboard").Logger(),
		grammar:       NewControl("grammar"),
		pronunciation: NewControl("pronunciation"),
		lookup:        NewControl("lookup"),
		out:           out,
	}
	d.unsubscribe = sessions.Subscribe(func(event session.Event, _ *session.Session) {
		if event == session.EventSignedOut {
			d.write(func(w io.Writer) {
				fmt.Fprintln(w, "Signed out: You have been signed out successfully")
			})
		}
	})
	return d
}

// Close stops watching the session.
func (d *Dashboard) Close() {
	d.unsubscribe()
}

// Grammar checks text and renders the issues found.
func (d *Dashboard) Grammar(ctx context.Context, text string) error {
	if err := d.requireSession(); err != nil {
		return err
	}
	text, err := CaptureText(text)
	if err != nil {
		return err
	}

	return d.grammar.Run(ctx, func(ctx context.Context) error {
		result, msg := d.api.CheckGrammar(ctx, text).Unwrap()
		if msg != "" {
			return d.fail(TitleGrammar, msg)
		}
		d.write(func(w io.Writer) { RenderGrammar(w, result) })
		return nil
	})
}

// Pronunciation uploads a recording and renders the feedback.
func (d *Dashboard) Pronunciation(ctx context.Context, recording io.Reader) error {
	if err := d.requireSession(); err != nil {
		return err
	}
	// The recording is read only while the control is held.
	return d.pronunciation.Run(ctx, func(ctx context.Context) error {
		audio, err := CaptureAudio(recording)
		if err != nil {
			return err
		}
		result, msg := d.api.AnalyzePronunciation(ctx, audio).Unwrap()
		if msg != "" {
			return d.fail(TitlePronunciation, msg)
		}
		d.write(func(w io.Writer) { RenderPronunciation(w, result) })
		return nil
	})
}

// Lookup defines word and renders the entry.
func (d *Dashboard) Lookup(ctx context.Context, word string) error {
	if err := d.requireSession(); err != nil {
		return err
	}
	word, err := CaptureWord(word)
	if err != nil {
		return err
	}

	return d.lookup.Run(ctx, func(ctx context.Context) error {
		result, msg := d.api.LookupWord(ctx, word).Unwrap()
		if msg != "" {
			return d.fail(TitleLookup, msg)
		}
		d.write(func(w io.Writer) { RenderLookup(w, result) })
		return nil
	})
}

// RunAll runs every submitted feature concurrently. A failing feature does
// not stop the others; all failures are joined into the returned error.
func (d *Dashboard) RunAll(ctx context.Context, sub Submission) error {
	if err := d.requireSession(); err != nil {
		return err
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	collect := func(fn func() error) {
		g.Go(func() error {
			err := fn()
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return err
		})
	}

	if sub.Text != "" {
		collect(func() error { return d.Grammar(ctx, sub.Text) })
	}
	if sub.Audio != nil {
		collect(func() error { return d.Pronunciation(ctx, sub.Audio) })
	}
	if sub.Word != "" {
		collect(func() error { return d.Lookup(ctx, sub.Word) })
	}

	// The group has no derived context, so one failure never cancels the
	// others. Wait reports only the first error; the rest are joined.
	if err := g.Wait(); err != nil {
		return stderrors.Join(errs...)
	}
	return nil
}

func (d *Dashboard) requireSession() error {
	if _, ok := d.sessions.Current(); !ok {
		return ErrSignedOut
	}
	return nil
}

func (d *Dashboard) fail(title, cause string) error {
	d.log.Warn().Str("feature", title).Str("cause", cause).Msg("request failed")
	d.write(func(w io.Writer) { RenderFailure(w, title) })
	return ErrRequestFailed
}

// write renders into a buffer first so concurrent features never interleave.
func (d *Dashboard) write(render func(io.Writer)) {
	var buf bytes.Buffer
	render(&buf)

	d.outMu.Lock()
	defer d.outMu.Unlock()
	if _, err := d.out.Write(buf.Bytes()); err != nil {
		d.log.Error().Err(err).Msg("failed to write output")
	}
}
