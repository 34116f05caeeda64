// Command lexstat reports word statistics over a plain-text log file:
// frequent words, matching lines, words used once, n-grams, line context,
// a chunked timeline of one word and the sentiment of lines mentioning it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/lexstat/pkg/lexstat"
	"github.com/cognicore/lexstat/pkg/lexstat/analytics"
	"github.com/cognicore/lexstat/pkg/lexstat/config"
	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "lexstat: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, internalerr.ErrInvalidInput):
		return exitUsage
	default:
		return exitFailed
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	input      string
	exclude    string
	format     string
	logLevel   string
}

type app struct {
	flags  globals
	stdout io.Writer
	stderr io.Writer
}

// requestFunc turns parsed arguments and configured defaults into a request.
type requestFunc func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var top int

	root := &cobra.Command{
		Use:   "lexstat",
		Short: "Word statistics over a plain-text log file",
		Long: "lexstat reads a log file (input.log by default) and reports word statistics.\n" +
			"Without a subcommand it prints the most frequent words.",
		Example:       "  lexstat --top 10\n  lexstat list error\n  lexstat ngrams 3 disk --min-count 2",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			return lexstat.Request{Mode: lexstat.ModeTopWords, Count: intFlag(cmd, "top", top, cfg.Defaults.TopCount)}, nil
		}),
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", internalerr.ErrInvalidInput, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", config.DefaultPath, "YAML configuration file")
	pf.StringVarP(&a.flags.input, "input", "i", "", "log file to analyze (default from config, input.log)")
	pf.StringVar(&a.flags.exclude, "exclude", "", "exclusion word list (default from config, exclude_words.json)")
	pf.StringVarP(&a.flags.format, "format", "f", string(report.FormatText), "output format: text or json")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.Flags().IntVarP(&top, "top", "n", 20, "number of words to report")

	root.AddCommand(
		a.topCmd(),
		a.listCmd(),
		a.uniqueCmd(),
		a.ngramsCmd(),
		a.bigramsCmd(),
		a.contextCmd(),
		a.timelineCmd(),
		a.sentimentCmd(),
	)
	return root
}

func (a *app) topCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "top",
		Short:   "Print the most frequent words",
		Example: "  lexstat top --count 5",
		Args:    usageArgs(cobra.NoArgs),
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			return lexstat.Request{Mode: lexstat.ModeTopWords, Count: intFlag(cmd, "count", count, cfg.Defaults.TopCount)}, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of words to report")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <search>",
		Short:   "Print the lines containing a string, case-insensitively",
		Example: "  lexstat list error",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: a.runE(func(_ *cobra.Command, args []string, _ config.Config) (lexstat.Request, error) {
			return lexstat.Request{Mode: lexstat.ModeListLines, Search: args[0]}, nil
		}),
	}
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unique [filter]",
		Short:   "Print the words used exactly once, optionally only those containing filter",
		Example: "  lexstat unique\n  lexstat unique olo",
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: a.runE(func(_ *cobra.Command, args []string, _ config.Config) (lexstat.Request, error) {
			req := lexstat.Request{Mode: lexstat.ModeUniqueWords}
			if len(args) > 0 {
				req.Filter = args[0]
			}
			return req, nil
		}),
	}
}

// ngramFlags are shared by the ngrams and bigrams commands.
type ngramFlags struct {
	minCount int
	sort     string
}

func (f *ngramFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.minCount, "min-count", "m", 1, "drop n-grams seen fewer times")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", string(analytics.Desc), "sort by count: asc or desc")
}

func (f *ngramFlags) request(cmd *cobra.Command, cfg config.Config, n int, start string) (lexstat.Request, error) {
	sortValue := cfg.Defaults.Sort
	if cmd.Flags().Changed("sort") {
		sortValue = f.sort
	}
	order, err := analytics.ParseOrder(sortValue)
	if err != nil {
		return lexstat.Request{}, err
	}
	minCount := intFlag(cmd, "min-count", f.minCount, cfg.Defaults.MinCount)
	if minCount < 1 {
		return lexstat.Request{}, fmt.Errorf("--min-count %d must be at least 1: %w", minCount, internalerr.ErrInvalidInput)
	}
	return lexstat.Request{Mode: lexstat.ModeNGrams, N: n, StartWord: start, MinCount: minCount, Order: order}, nil
}

func (a *app) ngramsCmd() *cobra.Command {
	var f ngramFlags
	cmd := &cobra.Command{
		Use:     "ngrams <n> <start-word>",
		Short:   "Count the n-word sequences starting with a word",
		Example: "  lexstat ngrams 3 priestess --min-count 2 --sort asc",
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			n, err := parseInt("n", args[0])
			if err != nil {
				return lexstat.Request{}, err
			}
			return f.request(cmd, cfg, n, args[1])
		}),
	}
	f.register(cmd)
	return cmd
}

func (a *app) bigramsCmd() *cobra.Command {
	var f ngramFlags
	cmd := &cobra.Command{
		Use:     "bigrams <start-word>",
		Short:   "Count the word pairs starting with a word",
		Example: "  lexstat bigrams disk",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			return f.request(cmd, cfg, 2, args[0])
		}),
	}
	f.register(cmd)
	return cmd
}

func (a *app) contextCmd() *cobra.Command {
	var radius int
	cmd := &cobra.Command{
		Use:     "context <line>",
		Short:   "Print a line with its surrounding lines",
		Example: "  lexstat context 42 --radius 5",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			line, err := parseInt("line", args[0])
			if err != nil {
				return lexstat.Request{}, err
			}
			return lexstat.Request{
				Mode:       lexstat.ModeContext,
				LineNumber: line,
				Radius:     intFlag(cmd, "radius", radius, cfg.Defaults.Radius),
			}, nil
		}),
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 3, "lines to show on each side")
	return cmd
}

func (a *app) timelineCmd() *cobra.Command {
	var chunks int
	cmd := &cobra.Command{
		Use:     "timeline <word>",
		Short:   "Count a word in consecutive chunks of the file",
		Example: "  lexstat timeline error --chunks 10",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: a.runE(func(cmd *cobra.Command, args []string, cfg config.Config) (lexstat.Request, error) {
			return lexstat.Request{
				Mode:   lexstat.ModeTimeline,
				Word:   args[0],
				Chunks: intFlag(cmd, "chunks", chunks, cfg.Defaults.Chunks),
			}, nil
		}),
	}
	cmd.Flags().IntVarP(&chunks, "chunks", "c", 4, "number of chunks")
	return cmd
}

func (a *app) sentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sentiment <word>",
		Short:   "Summarize the polarity of lines mentioning a word",
		Example: "  lexstat sentiment deploy",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: a.runE(func(_ *cobra.Command, args []string, _ config.Config) (lexstat.Request, error) {
			return lexstat.Request{Mode: lexstat.ModeSentiment, Word: args[0]}, nil
		}),
	}
}

// runE wraps a requestFunc into the shared load, run and render sequence.
func (a *app) runE(build requestFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(cmd)
		if err != nil {
			return err
		}
		format, err := report.ParseFormat(a.flags.format)
		if err != nil {
			return err
		}
		req, err := build(cmd, args, cfg)
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.Log.Level, a.stderr)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		engine, c, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}

		res, err := engine.Run(cmd.Context(), req)
		if err != nil {
			return err
		}
		return report.Write(a.stdout, report.New().Build(c.Path(), c.Len(), req, res), format)
	}
}

// loadConfig reads the config file and applies persistent flag overrides.
// Only an explicitly requested config file must exist.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.flags.configPath)
	} else {
		cfg, err = config.LoadOptional(a.flags.configPath)
	}
	if err != nil {
		return cfg, err
	}

	if a.flags.input != "" {
		cfg.Input = a.flags.input
	}
	if a.flags.exclude != "" {
		cfg.ExcludeFile = a.flags.exclude
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	return cfg, nil
}

// buildEngine loads the configured components and the corpus.
func buildEngine(cfg config.Config, logger *zap.Logger) (*lexstat.Engine, *corpus.Corpus, error) {
	loader := config.Loader{Config: cfg, Logger: logger}
	comp, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	c, err := corpus.Load(cfg.Input, comp.Tokenizer.Folder())
	if err != nil {
		return nil, nil, err
	}
	logger.Info("corpus loaded", zap.String("path", c.Path()), zap.Int("lines", c.Len()), zap.Int("excluded", comp.Exclusions.Len()))

	engine := lexstat.New(lexstat.Options{
		Corpus:    c,
		Tokenizer: comp.Tokenizer,
		Scorer:    comp.Scorer,
		Logger:    logger,
	})
	return engine, c, nil
}

// newLogger builds a production JSON logger on w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w: %w", level, internalerr.ErrInvalidConfig, err)
	}
	cfg := zap.NewProductionConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg.EncoderConfig), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// intFlag returns the flag value when it was set on the command line and
// the configured default otherwise.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", name, s, internalerr.ErrInvalidInput)
	}
	return v, nil
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", internalerr.ErrInvalidInput, err)
		}
		return nil
	}
}
