// Command llmjudge judges LLM responses, reviews verdicts, and validates
// response structure.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ctzreddy/llmjudge"
	"github.com/ctzreddy/llmjudge/bubbletea"
	"github.com/ctzreddy/llmjudge/chroma"
	"github.com/ctzreddy/llmjudge/clipboard"
	"github.com/ctzreddy/llmjudge/gemini"
	"github.com/ctzreddy/llmjudge/jsonl"
	"github.com/ctzreddy/llmjudge/lipgloss"
	"golang.org/x/sync/errgroup"
)

// reviewsPath returns the path for the reviews file given an input path.
// foo.jsonl -> foo-reviews.jsonl
func reviewsPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+"-reviews"+ext)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: llmjudge <command>\n\nCommands:\n  judge     Judge cases from JSONL using an LLM judge\n  review    Open the verdict review UI on a cases file\n  validate  Validate text against structural rules")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch os.Args[1] {
	case "judge":
		return runJudge(ctx)
	case "review":
		return runReview(ctx)
	case "validate":
		return runValidate()
	default:
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

// DefaultMaxRetries is the default number of retry attempts for judging.
const DefaultMaxRetries = 3

// JudgeRunner judges cases using an LLM judge.
type JudgeRunner struct {
	Output     io.Writer
	ErrOutput  io.Writer
	Cases      []llmjudge.Case
	Judge      llmjudge.ResponseJudge
	Options    llmjudge.JudgeOptions
	MaxRetries int
	// Workers sets the number of parallel workers. If <= 1, runs sequentially.
	Workers int
	// BackoffFn returns the backoff duration for a given attempt (1-indexed).
	// If nil, uses exponential backoff (1s, 2s, 4s...).
	BackoffFn func(attempt int) time.Duration
}

// Run judges each unjudged case and writes JSONL output in input order.
// Cases whose judge calls keep failing are emitted with the error verdict
// after max retries, so the failure stays visible downstream.
func (r *JudgeRunner) Run(ctx context.Context) error {
	if r.Workers > 1 {
		return r.runParallel(ctx)
	}
	return r.runSequential(ctx)
}

func (r *JudgeRunner) runSequential(ctx context.Context) error {
	encoder := json.NewEncoder(r.Output)
	errOut := r.errOutput()

	for i := range r.Cases {
		c := r.Cases[i]

		if c.Verdict == nil {
			verdict, err := r.judgeWithRetry(ctx, c)
			if err != nil {
				return err
			}
			if verdict.Error != "" {
				fmt.Fprintf(errOut, "warning: case %s still failing after %d attempts: %s\n",
					c.CaseID(), r.maxRetries(), verdict.Error)
			}
			c.Verdict = &verdict
		}

		if err := encoder.Encode(c); err != nil {
			return err
		}
	}

	return nil
}

func (r *JudgeRunner) runParallel(ctx context.Context) error {
	errOut := r.errOutput()

	// Collect results indexed by original position
	results := make([]llmjudge.Case, len(r.Cases))
	warnings := make([]string, len(r.Cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for i := range r.Cases {
		c := r.Cases[i]

		g.Go(func() error {
			if c.Verdict == nil {
				verdict, err := r.judgeWithRetry(ctx, c)
				if err != nil {
					return err
				}
				if verdict.Error != "" {
					warnings[i] = fmt.Sprintf("warning: case %s still failing after %d attempts: %s\n",
						c.CaseID(), r.maxRetries(), verdict.Error)
				}
				c.Verdict = &verdict
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Write results in order
	encoder := json.NewEncoder(r.Output)
	for i, c := range results {
		if warnings[i] != "" {
			fmt.Fprint(errOut, warnings[i])
		}
		if err := encoder.Encode(c); err != nil {
			return err
		}
	}

	return nil
}

// judgeWithRetry attempts judging with exponential backoff, retrying while
// the verdict carries a judge-call error.
func (r *JudgeRunner) judgeWithRetry(ctx context.Context, c llmjudge.Case) (llmjudge.Verdict, error) {
	backoffFn := r.BackoffFn
	if backoffFn == nil {
		backoffFn = func(attempt int) time.Duration {
			return time.Duration(1<<(attempt-1)) * time.Second
		}
	}
	maxRetries := r.maxRetries()

	var verdict llmjudge.Verdict
	for attempt := 1; attempt <= maxRetries; attempt++ {
		// Check for context cancellation before each attempt
		select {
		case <-ctx.Done():
			return llmjudge.Verdict{}, ctx.Err()
		default:
		}

		var err error
		verdict, err = r.Judge.Judge(ctx, c.Prompt, c.Response, r.Options)
		if err != nil {
			// Configuration errors won't improve with retries.
			return llmjudge.Verdict{}, err
		}
		if verdict.Error == "" {
			return verdict, nil
		}

		// Don't sleep after last attempt
		if attempt < maxRetries {
			backoff := backoffFn(attempt)
			select {
			case <-ctx.Done():
				return llmjudge.Verdict{}, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return verdict, nil
}

func (r *JudgeRunner) maxRetries() int {
	if r.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	return r.MaxRetries
}

func (r *JudgeRunner) errOutput() io.Writer {
	if r.ErrOutput == nil {
		return os.Stderr
	}
	return r.ErrOutput
}

func runJudge(ctx context.Context) error {
	fs := flag.NewFlagSet("judge", flag.ExitOnError)
	judgeType := fs.String("type", string(llmjudge.JudgeQuality), "Judge type: quality, correctness, appropriateness, comprehensiveness, custom")
	criteria := fs.String("criteria", "", "Evaluation criteria (required for -type custom)")
	passingScore := fs.Float64("passing-score", llmjudge.DefaultPassingScore, "Minimum score to pass (0-100)")
	model := fs.String("model", gemini.DefaultModel, "Judge model")
	workers := fs.Int("workers", 1, "Number of parallel workers (1 = sequential)")

	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
	}

	args := fs.Args()
	if len(args) < 1 {
		return fmt.Errorf("usage: llmjudge judge [flags] <cases.jsonl>")
	}
	inputPath := args[0]

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable required")
	}

	loader := jsonl.NewLoader()
	cases, err := loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases found in %s", inputPath)
	}

	client, err := gemini.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	runner := &JudgeRunner{
		Output: os.Stdout,
		Cases:  cases,
		Judge:  gemini.NewJudge(client, *model),
		Options: llmjudge.JudgeOptions{
			Type:         llmjudge.JudgeType(*judgeType),
			Criteria:     *criteria,
			PassingScore: *passingScore,
		},
		Workers: *workers,
	}

	return runner.Run(ctx)
}

func runReview(ctx context.Context) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: llmjudge review <cases.jsonl>")
	}
	inputPath := os.Args[2]

	loader := jsonl.NewLoader()
	cases, err := loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("error loading cases: %w", err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases to review")
	}

	store := jsonl.NewStore()
	outputPath := reviewsPath(inputPath)
	existingReviews, err := store.Load(outputPath)
	if err != nil {
		return fmt.Errorf("error loading reviews: %w", err)
	}

	// Set up syntax highlighting for raw judge output
	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return fmt.Errorf("error setting up syntax highlighting: %w", err)
	}

	opts := []bubbletea.ReviewModelOption{
		bubbletea.WithReviewStore(store, outputPath),
		bubbletea.WithStyles(theme.Styles()),
		bubbletea.WithTokenizer(tokenizer),
	}
	if len(existingReviews) > 0 {
		opts = append(opts, bubbletea.WithExistingReviews(existingReviews))
	}
	if cb, err := clipboard.New(); err == nil {
		opts = append(opts, bubbletea.WithClipboard(cb))
	}

	m := bubbletea.NewReviewModel(cases, opts...)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runValidate() error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	notEmpty := fs.Bool("not-empty", true, "Require non-empty text")
	minLen := fs.Int("min-length", 0, "Minimum character length (0 = unbounded)")
	maxLen := fs.Int("max-length", 0, "Maximum character length (0 = unbounded)")
	wantJSON := fs.Bool("json", false, "Require well-formed JSON")
	requireKeys := fs.String("require-keys", "", "Comma-separated required JSON keys (implies -json)")
	keywords := fs.String("keywords", "", "Comma-separated keywords the text must contain")
	allKeywords := fs.Bool("all-keywords", false, "Require all keywords instead of any")
	caseSensitive := fs.Bool("case-sensitive", false, "Match keywords case-sensitively")
	pattern := fs.String("regex", "", "Pattern the text must match")

	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
	}

	chain, err := buildChain(*notEmpty, *minLen, *maxLen, *wantJSON, *requireKeys, *keywords, *allKeywords, *caseSensitive, *pattern)
	if err != nil {
		return err
	}

	text, err := readInput(fs.Args())
	if err != nil {
		return err
	}

	report := chain.Validate(text)
	if report.Valid {
		fmt.Println("valid")
		return nil
	}
	for _, msg := range report.Errors {
		fmt.Fprintf(os.Stderr, "invalid: %s\n", msg)
	}
	os.Exit(1)
	return nil
}

// buildChain assembles a validator chain from flag values.
func buildChain(notEmpty bool, minLen, maxLen int, wantJSON bool, requireKeys, keywords string, allKeywords, caseSensitive bool, pattern string) (*llmjudge.Chain, error) {
	var validators []llmjudge.Validator

	if notEmpty {
		validators = append(validators, llmjudge.NewNotEmpty())
	}
	if minLen > 0 || maxLen > 0 {
		length, err := llmjudge.NewLength(minLen, maxLen)
		if err != nil {
			return nil, err
		}
		validators = append(validators, length)
	}
	if wantJSON || requireKeys != "" {
		validators = append(validators, llmjudge.NewJSON())
	}
	if requireKeys != "" {
		keys := splitList(requireKeys)
		validators = append(validators, llmjudge.NewJSONSchema(keys, nil))
	}
	if keywords != "" {
		contains, err := llmjudge.NewContains(splitList(keywords), caseSensitive, allKeywords)
		if err != nil {
			return nil, err
		}
		validators = append(validators, contains)
	}
	if pattern != "" {
		validators = append(validators, llmjudge.NewRegex(pattern))
	}

	return llmjudge.NewChain(validators...), nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// readInput reads the text to validate from the given file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
