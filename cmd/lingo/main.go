package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/config"
	"github.com/windfall/lingua_service/internal/logger"
	"github.com/windfall/lingua_service/internal/session"
	"github.com/windfall/lingua_service/internal/ui"
	"github.com/windfall/lingua_service/pkg/functions"
)

const usage = `Usage: lingo <command> [flags]

Commands:
  grammar    -text "..."        check text for grammar mistakes (reads stdin when -text is empty)
  pronounce  -file rec.webm     score the pronunciation of a recording
  lookup     -word serendipity  define a word
  dashboard  [-text] [-file] [-word]
                                run the submitted features together (requires LINGO_ACCESS_TOKEN)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	log := logger.NewWithWriter(stderr, cfg.LogLevel, cfg.LogFormat)

	store := session.NewStore()
	if cfg.AccessToken != "" {
		if _, err := store.SignIn(cfg.AccessToken); err != nil {
			log.Warn().Err(err).Msg("ignoring LINGO_ACCESS_TOKEN")
		}
	}

	api := functions.New(cfg.FunctionsURL,
		functions.WithAPIKey(cfg.AnonKey),
		functions.WithSession(store),
		functions.WithClientInfo(cfg.ClientInfo),
		functions.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "grammar":
		err = runGrammar(ctx, api, rest, stdin, stdout)
	case "pronounce":
		err = runPronounce(ctx, api, rest, stdout)
	case "lookup":
		err = runLookup(ctx, api, rest, stdout)
	case "dashboard":
		err = runDashboard(ctx, store, api, rest, stdout, log)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	return exitCode(err, stderr)
}

func runGrammar(ctx context.Context, api *functions.Client, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("grammar", flag.ContinueOnError)
	text := fs.String("text", "", "Text to check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := *text
	if input == "" && fs.NArg() > 0 {
		input = strings.Join(fs.Args(), " ")
	}
	if input == "" && stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	input, err := ui.CaptureText(input)
	if err != nil {
		return err
	}

	result, msg := api.CheckGrammar(ctx, input).Unwrap()
	if msg != "" {
		ui.RenderFailure(stdout, ui.TitleGrammar)
		return ui.ErrRequestFailed
	}
	ui.RenderGrammar(stdout, result)
	return nil
}

func runPronounce(ctx context.Context, api *functions.Client, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("pronounce", flag.ContinueOnError)
	file := fs.String("file", "", "Path to the recording")
	if err := fs.Parse(args); err != nil {
		return err
	}

	audio, err := captureFile(*file)
	if err != nil {
		return err
	}

	result, msg := api.AnalyzePronunciation(ctx, audio).Unwrap()
	if msg != "" {
		ui.RenderFailure(stdout, ui.TitlePronunciation)
		return ui.ErrRequestFailed
	}
	ui.RenderPronunciation(stdout, result)
	return nil
}

func runLookup(ctx context.Context, api *functions.Client, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	word := fs.String("word", "", "Word to define")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := *word
	if input == "" && fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	input, err := ui.CaptureWord(input)
	if err != nil {
		return err
	}

	result, msg := api.LookupWord(ctx, input).Unwrap()
	if msg != "" {
		ui.RenderFailure(stdout, ui.TitleLookup)
		return ui.ErrRequestFailed
	}
	ui.RenderLookup(stdout, result)
	return nil
}

func runDashboard(ctx context.Context, store *session.Store, api *functions.Client, args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	text := fs.String("text", "", "Text to check")
	file := fs.String("file", "", "Path to a recording")
	word := fs.String("word", "", "Word to define")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sub := ui.Submission{Text: *text, Word: *word}
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("failed to open recording: %w", err)
		}
		defer f.Close()
		sub.Audio = f
	}

	d := ui.NewDashboard(store, api, stdout, log)
	defer d.Close()

	return d.RunAll(ctx, sub)
}

func captureFile(path string) (string, error) {
	if path == "" {
		return "", ui.ErrNoAudio
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()
	return ui.CaptureAudio(f)
}

// exitCode maps input problems to 2 and everything else to 1.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, flag.ErrHelp):
		return 0
	case stderrors.Is(err, ui.ErrNoText), stderrors.Is(err, ui.ErrNoWord), stderrors.Is(err, ui.ErrNoAudio):
		fmt.Fprintln(stderr, err)
		return 2
	case stderrors.Is(err, ui.ErrSignedOut):
		fmt.Fprintln(stderr, "Sign in first: set LINGO_ACCESS_TOKEN")
		return 1
	case stderrors.Is(err, ui.ErrRequestFailed):
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}
