// Command regexpand prints every string matched by a pattern, one per line.
//
// Usage:
//
//	regexpand [flags] PATTERN
//
// With -wordlist, each unescaped /x in PATTERN is replaced by every line of
// the word list in turn. Output is deduplicated and streamed; interrupting the
// command stops it cleanly.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coregx/regexpand"
	"github.com/coregx/regexpand/wordlist"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	wordlist     string
	capitalize   bool
	literalWords bool
	ceiling      int
	token        string
	limit        uint64
	count        bool
	strict       bool
	logLevel     string
	version      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, string, error) {
	def := regexpand.DefaultConfig()
	opts := &options{}

	fs := flag.NewFlagSet("regexpand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: regexpand [flags] PATTERN\n\nPrint every string matching PATTERN.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.wordlist, "wordlist", "", "path to a word list for placeholder substitution")
	fs.BoolVar(&opts.capitalize, "capitalize", false, "add casing variants of every word list line")
	fs.BoolVar(&opts.literalWords, "literal-words", false, "insert word list lines verbatim instead of as pattern text")
	fs.IntVar(&opts.ceiling, "ceiling", def.QuantifierCeiling, "maximum repetitions for + and *")
	fs.StringVar(&opts.token, "token", def.PlaceholderToken, "placeholder token replaced by word list lines")
	fs.Uint64Var(&opts.limit, "n", 0, "stop after printing this many strings (0 means no limit)")
	fs.BoolVar(&opts.count, "count", false, "print the size of the expansion instead of the strings")
	fs.BoolVar(&opts.strict, "strict", true, "also require PATTERN to be a valid RE2 regular expression")
	fs.StringVar(&opts.logLevel, "log-level", getEnv("REGEXPAND_LOG_LEVEL", "warn"), "log level: debug, info, warn or error")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if opts.version {
		return opts, "", nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", errors.New("expected exactly one PATTERN argument")
	}
	return opts, fs.Arg(0), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, src, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "regexpand: %v\n", err)
		}
		return exitUsage
	}
	if opts.version {
		fmt.Fprintln(stdout, "regexpand", Version)
		return exitOK
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(opts.logLevel),
	}))

	config := regexpand.DefaultConfig().
		WithQuantifierCeiling(opts.ceiling).
		WithPlaceholderToken(opts.token).
		WithCapitalizeWordList(opts.capitalize).
		WithLiteralWords(opts.literalWords).
		WithStrictSyntax(opts.strict)

	ex, err := compile(src, opts.wordlist, config, logger)
	if err != nil {
		logger.Error("cannot expand pattern", "pattern", src, "err", err)
		return exitError
	}

	n, exact := ex.Count()
	logger.Debug("compiled pattern",
		"pattern", src,
		"sites", ex.Sites(),
		"words", len(ex.Words()),
		"candidates", n,
		"exact", exact,
	)

	if opts.count {
		if !exact {
			logger.Warn("expansion size exceeds the counter range", "pattern", src)
		}
		fmt.Fprintln(stdout, n)
		return exitOK
	}

	written, err := emit(ctx, ex, stdout, opts.limit)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("interrupted", "written", written)
		return exitInterrupted
	case errors.Is(err, syscall.EPIPE):
		logger.Debug("output closed", "written", written)
		return exitOK
	case err != nil:
		logger.Error("write failed", "err", err, "written", written)
		return exitError
	}
	logger.Debug("done", "written", written)
	return exitOK
}

func compile(src, path string, config regexpand.Config, logger *slog.Logger) (*regexpand.Expander, error) {
	if path == "" {
		return regexpand.CompileWithConfig(src, config)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	defer f.Close()

	words, err := wordlist.Load(f)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	logger.Debug("loaded word list", "path", path, "lines", len(words))
	return regexpand.CompileWords(src, words, config)
}

// emit writes the distinct strings of ex, one per line, until the expansion
// ends, limit strings are written, or ctx is done. Output to a terminal is
// flushed line by line.
func emit(ctx context.Context, ex *regexpand.Expander, stdout io.Writer, limit uint64) (uint64, error) {
	w := bufio.NewWriter(stdout)
	interactive := false
	if f, ok := stdout.(*os.File); ok {
		interactive = isTerminal(f.Fd())
	}

	var written uint64
	for s := range ex.Strings() {
		if err := ctx.Err(); err != nil {
			_ = w.Flush()
			return written, err
		}
		if limit > 0 && written == limit {
			break
		}
		if _, err := w.WriteString(s); err != nil {
			return written, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return written, err
		}
		written++
		if interactive {
			if err := w.Flush(); err != nil {
				return written, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		_ = w.Flush()
		return written, err
	}
	return written, w.Flush()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
