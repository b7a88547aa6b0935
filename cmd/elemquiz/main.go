// Package main provides the CLI entrypoint for elemquiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/elemquiz/internal/browse"
	"github.com/verte-zerg/elemquiz/internal/config"
	"github.com/verte-zerg/elemquiz/internal/console"
	"github.com/verte-zerg/elemquiz/internal/elements"
	"github.com/verte-zerg/elemquiz/internal/match"
	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/quiz"
	"github.com/verte-zerg/elemquiz/internal/stats"
	"github.com/verte-zerg/elemquiz/internal/statsui"
	"github.com/verte-zerg/elemquiz/internal/store"
)

const (
	defaultMode        = "random"
	defaultQuestions   = quiz.DefaultQuestions
	defaultThreshold   = match.DefaultThreshold
	defaultWeakTop     = 8
	defaultWeakFactor  = 1.0
	defaultWeakWindow  = 20
	defaultTrendWindow = 5
	defaultStatsTop    = 10
	defaultTrendWidth  = 40
)

type quizFlags struct {
	mode           string
	questions      int
	threshold      float64
	maxRetryPasses int
	focusWeak      bool
	weakTop        int
	weakFactor     float64
	weakWindow     int
	seed           int64
	noHistory      bool
}

var (
	quizOpts quizFlags

	browsePlain bool

	statsSince       string
	statsLast        int
	statsMode        string
	statsTop         int
	statsTrendWindow int
	statsPlain       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "elemquiz",
		Short:         "Periodic table quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runMenuCmd,
	}
	rootCmd.Flags().IntVar(&quizOpts.questions, "questions", defaultQuestions, "default number of questions per round")
	addQuizFlags(rootCmd)

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addQuizFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&quizOpts.threshold, "threshold", defaultThreshold, "fuzzy match threshold for element names (0-1)")
	cmd.Flags().IntVar(&quizOpts.maxRetryPasses, "max-retry-passes", 0, "cap on retry passes per round (0 = until every miss is answered)")
	cmd.Flags().BoolVar(&quizOpts.focusWeak, "focus-weak", false, "bias questions toward frequently missed elements")
	cmd.Flags().IntVar(&quizOpts.weakTop, "weak-top", defaultWeakTop, "number of weak elements to focus on")
	cmd.Flags().Float64Var(&quizOpts.weakFactor, "weak-factor", defaultWeakFactor, "extra weight factor for weak elements")
	cmd.Flags().IntVar(&quizOpts.weakWindow, "weak-window", defaultWeakWindow, "number of recent rounds to compute weak elements")
	cmd.Flags().Int64Var(&quizOpts.seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().BoolVar(&quizOpts.noHistory, "no-history", false, "do not record rounds")
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round without the menu",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
	cmd.Flags().StringVar(&quizOpts.mode, "mode", defaultMode, "question mode: name-symbol, symbol-name, name-number, number-name, random")
	cmd.Flags().IntVar(&quizOpts.questions, "questions", defaultQuestions, "number of questions")
	addQuizFlags(cmd)
	return cmd
}

// quizRun bundles what both quiz commands need.
type quizRun struct {
	cfg     model.Config
	store   *store.Store
	session *quiz.Session
	lines   *console.LineSource
	out     io.Writer
}

func setupQuiz(cmd *cobra.Command) (*quizRun, error) {
	cfg, env, err := resolveQuizConfig(cmd)
	if err != nil {
		return nil, err
	}

	var st *store.Store
	if cfg.History {
		st, err = store.Open(env.ResolveDBPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
	}

	weakSet := map[int]struct{}{}
	if cfg.FocusWeak {
		weakSet = loadWeakSet(cmd.Context(), st, cfg)
	}

	var rnd *rand.Rand
	if cfg.Seed != 0 {
		rnd = rand.New(rand.NewSource(cfg.Seed))
	}

	out := cmd.OutOrStdout()
	lines := console.NewLineSource(cmd.InOrStdin(), out)
	threshold := cfg.Threshold
	session := quiz.NewSession(elements.All(), lines, quiz.WriterSink{W: out}, quiz.Options{
		Rand:           rnd,
		Threshold:      &threshold,
		MaxRetryPasses: cfg.MaxRetryPasses,
		WeakSet:        weakSet,
		WeakFactor:     cfg.WeakFactor,
	})
	return &quizRun{cfg: cfg, store: st, session: session, lines: lines, out: out}, nil
}

func (r *quizRun) close() {
	if r.store == nil {
		return
	}
	if cerr := r.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func (r *quizRun) record(ctx context.Context, result quiz.RoundResult) {
	if r.store == nil {
		return
	}
	if _, err := r.store.InsertRound(ctx, result.Stats(), result.Elements); err != nil {
		logErrf("failed to save round: %v\n", err)
	}
}

// finish turns closed input into a normal exit.
func (r *quizRun) finish(err error) error {
	if errors.Is(err, quiz.ErrInputClosed) {
		if _, werr := fmt.Fprintln(r.out, "\nInput closed. Goodbye!"); werr != nil {
			// Best-effort output.
			_ = werr
		}
		return nil
	}
	return err
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	run, err := setupQuiz(cmd)
	if err != nil {
		return err
	}
	defer run.close()

	menu := &console.Menu{
		Lines:            run.lines,
		Out:              run.out,
		Session:          run.session,
		Elements:         elements.All(),
		DefaultQuestions: run.cfg.Questions,
		OnRound: func(result quiz.RoundResult) {
			run.record(cmd.Context(), result)
		},
	}
	return run.finish(menu.Run())
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	run, err := setupQuiz(cmd)
	if err != nil {
		return err
	}
	defer run.close()

	result, err := run.session.PlayRound(run.cfg.Mode, run.cfg.Questions)
	if err != nil {
		return run.finish(err)
	}
	run.record(cmd.Context(), result)
	return nil
}

func loadWeakSet(ctx context.Context, st *store.Store, cfg model.Config) map[int]struct{} {
	weakSet := map[int]struct{}{}
	if st == nil {
		logErrln("weak-element focus needs round history; using normal weights")
		return weakSet
	}
	mode := ""
	if cfg.Mode.Concrete() {
		mode = cfg.Mode.String()
	}
	aggs, err := st.GetWeakElements(ctx, cfg.WeakWindow, mode)
	if err != nil {
		logErrf("failed to load weak elements: %v\n", err)
		return weakSet
	}
	weakSet = stats.SelectWeakElements(aggs, cfg.WeakTop)
	if len(weakSet) == 0 {
		logErrln("no stats available for weak-element focus yet; using normal weights")
	}
	return weakSet
}

func resolveQuizConfig(cmd *cobra.Command) (model.Config, config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, config.Env{}, err
	}
	fileCfg, err := config.LoadConfig(env.ResolveConfigPath())
	if err != nil {
		return model.Config{}, config.Env{}, fmt.Errorf("failed to load config: %w", err)
	}
	q := fileCfg.Quiz
	if cmd.Flags().Lookup("mode") != nil {
		applyStringConfig(cmd, "mode", &quizOpts.mode, q.Mode)
	}
	applyIntConfig(cmd, "questions", &quizOpts.questions, q.Questions)
	applyFloatConfig(cmd, "threshold", &quizOpts.threshold, q.Threshold)
	applyIntConfig(cmd, "max-retry-passes", &quizOpts.maxRetryPasses, q.MaxRetryPasses)
	applyBoolConfig(cmd, "focus-weak", &quizOpts.focusWeak, q.FocusWeak)
	applyIntConfig(cmd, "weak-top", &quizOpts.weakTop, q.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &quizOpts.weakFactor, q.WeakFactor)
	applyIntConfig(cmd, "weak-window", &quizOpts.weakWindow, q.WeakWindow)

	history := true
	if q.History != nil {
		history = *q.History
	}
	if env.NoHistory || quizOpts.noHistory {
		history = false
	}
	seed := quizOpts.seed
	if !cmd.Flags().Changed("seed") && env.Seed != 0 {
		seed = env.Seed
	}

	mode := model.ModeRandom
	if cmd.Flags().Lookup("mode") != nil {
		mode, err = model.ParseMode(quizOpts.mode)
		if err != nil {
			return model.Config{}, config.Env{}, fmt.Errorf("invalid --mode value: %w", err)
		}
	}

	cfg := model.Config{
		Mode:           mode,
		Questions:      quizOpts.questions,
		Threshold:      quizOpts.threshold,
		MaxRetryPasses: quizOpts.maxRetryPasses,
		FocusWeak:      quizOpts.focusWeak,
		WeakTop:        quizOpts.weakTop,
		WeakFactor:     quizOpts.weakFactor,
		WeakWindow:     quizOpts.weakWindow,
		Seed:           seed,
		History:        history,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, config.Env{}, err
	}
	return cfg, env, nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse all elements",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	cmd.Flags().BoolVar(&browsePlain, "plain", false, "print a plain table instead of the interactive view")
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	elems := elements.All()
	if !browsePlain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return browse.Run(elems)
	}
	if err := browse.RenderPlain(cmd.OutOrStdout(), elems); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <number|symbol|name>",
		Short: "Show one element",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookupCmd,
	}
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	e, ok := elements.Lookup(query)
	if !ok {
		return fmt.Errorf("no element matches %q", query)
	}
	lines := []string{
		fmt.Sprintf("%s (%s)", e.Name, e.Symbol),
		fmt.Sprintf("  Atomic number:     %d", e.Number),
		fmt.Sprintf("  Valence electrons: %d", e.Valence),
		fmt.Sprintf("  Discovered:        %s", e.Discovered),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show round history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N rounds")
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().IntVar(&statsTop, "top", defaultStatsTop, "number of weakest elements to list")
	cmd.Flags().IntVar(&statsTrendWindow, "trend-window", defaultTrendWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the interactive view")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	modeFilter := ""
	if statsMode != "" {
		mode, err := model.ParseMode(statsMode)
		if err != nil {
			return fmt.Errorf("invalid --mode value: %w", err)
		}
		modeFilter = mode.String()
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsTrendWindow < 1 {
		return fmt.Errorf("--trend-window must be > 0")
	}

	cfg := model.StatsConfig{
		Mode:  modeFilter,
		Since: sinceTime,
		Last:  statsLast,
		Top:   statsTop,
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	st, err := store.Open(env.ResolveDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if !statsPlain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		program := tea.NewProgram(statsui.NewModel(cmd.Context(), st, cfg, statsTrendWindow), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run stats TUI: %w", err)
		}
		return nil
	}

	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout(), cfg, statsTrendWindow, trendWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func trendWidth() int {
	if !isTerminal(os.Stdout) {
		return defaultTrendWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 20 {
		return defaultTrendWidth
	}
	// Room for the brackets and the percentage.
	return width - 12
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	path := env.ResolveConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# elemquiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# mode = %q           # Mode for "elemquiz play"
# questions = %d            # Questions per round
# threshold = %.2f        # Fuzzy match threshold for element names (0-1)
# max-retry-passes = 0      # Cap on retry passes (0 = until every miss is answered)
# focus-weak = false        # Bias questions toward frequently missed elements
# weak-top = %d              # Number of weak elements to focus on
# weak-factor = %.1f        # Extra weight factor for weak elements
# weak-window = %d          # Number of recent rounds to compute weak elements
# history = true            # Record finished rounds
`,
		defaultMode,
		defaultQuestions,
		defaultThreshold,
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Questions <= 0 {
		return fmt.Errorf("--questions must be > 0")
	}
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return fmt.Errorf("--threshold must be between 0 and 1")
	}
	if cfg.MaxRetryPasses < 0 {
		return fmt.Errorf("--max-retry-passes must be >= 0")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
