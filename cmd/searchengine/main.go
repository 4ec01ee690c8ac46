// Command searchengine is an interactive CLI over the in-memory search
// engine in package engine. It owns no search semantics of its own: it
// loads a corpus, runs a read-query-print loop, and formats results.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/devancy/searchengine/engine"
	"github.com/devancy/searchengine/internal/corpus"
	"github.com/devancy/searchengine/internal/genload"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Str("component", "searchengine").Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// cliConfig holds the flag-derived configuration for the CLI, bound
// directly from Cobra flags.
type cliConfig struct {
	corpusPath string
	stopWords  string
	maxResults int
	policy     string
	workers    int
}

func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}

	root := &cobra.Command{
		Use:   "searchengine",
		Short: "In-memory TF-IDF search engine REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cfg)
		},
	}

	root.Flags().StringVarP(&cfg.corpusPath, "corpus", "p", "", "path to a TOML seed corpus (see internal/corpus)")
	root.Flags().StringVarP(&cfg.stopWords, "stop-words", "s", "", "space-separated stop words")
	root.Flags().IntVarP(&cfg.maxResults, "page-size", "n", engine.MaxResultDocumentCount, "results per page")
	root.Flags().StringVar(&cfg.policy, "policy", "sequential", "scoring policy: sequential|parallel")
	root.Flags().IntVarP(&cfg.workers, "workers", "w", engine.DefaultShardCount, "worker count for the parallel policy")

	root.AddCommand(newDedupeCmd(cfg))
	root.AddCommand(newBenchCmd(cfg))
	return root
}

// newDedupeCmd loads the configured corpus and removes duplicate
// documents, printing one colored notice per removed id.
func newDedupeCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove duplicate documents from the loaded corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			removed, notices := engine.RemoveDuplicates(e)
			for _, notice := range notices {
				color.Yellow(notice)
			}
			logger.Info().Int("removed", len(removed)).Int("remaining", e.GetDocumentCount()).Msg("dedupe complete")
			return nil
		},
	}
}

// newBenchCmd generates a random dictionary and query set and times
// sequential versus parallel scoring over the loaded (or freshly
// generated) corpus, using internal/genload.
func newBenchCmd(cfg *cliConfig) *cobra.Command {
	var queryCount int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare sequential and parallel scoring latency",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			return runBench(e, cfg, queryCount)
		},
	}
	cmd.Flags().IntVarP(&queryCount, "queries", "q", 200, "number of random queries to evaluate")
	return cmd
}

func buildEngine(cfg *cliConfig) (*engine.Engine, error) {
	e, err := engine.New(cfg.stopWords)
	if err != nil {
		return nil, fmt.Errorf("constructing engine: %w", err)
	}

	if cfg.corpusPath == "" {
		return e, nil
	}

	start := time.Now()
	n, err := corpus.Populate(e, cfg.corpusPath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	logger.Info().Int("documents", n).Dur("elapsed", time.Since(start)).Msg("corpus loaded")
	return e, nil
}

// runREPL builds an engine from cfg and drives a readline-backed
// read-query-print loop against it until the user exits or sends EOF.
func runREPL(cfg *cliConfig) error {
	e, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	queue := engine.NewRequestQueue(e)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "search> ",
		HistoryFile:     ".searchengine_history",
		InterruptPrompt: "^C\n",
		EOFPrompt:       "bye\n",
		HistoryLimit:    200,
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Type a query and press enter. Ctrl+C or 'exit' quits.")

	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			if len(line) == 0 {
				return nil
			}
			continue
		case err == io.EOF:
			return nil
		}

		rawQuery := strings.TrimSpace(line)
		if rawQuery == "" {
			continue
		}
		if rawQuery == "exit" || rawQuery == "quit" {
			return nil
		}

		docs, err := evaluate(queue, cfg, rawQuery)
		if err != nil {
			logger.Error().Err(err).Str("query", rawQuery).Msg("query failed")
			continue
		}
		printResults(docs, cfg.maxResults)
		logger.Info().Int("no_result_requests", queue.GetNoResultRequests()).Msg("window stats")
	}
}

func evaluate(queue *engine.RequestQueue, cfg *cliConfig, rawQuery string) ([]engine.Document, error) {
	policy := engine.Sequential
	if cfg.policy == "parallel" {
		policy = engine.Parallel
	}
	actualOnly := func(_ int, status engine.Status, _ int) bool {
		return status == engine.Actual
	}
	return queue.AddFindRequestPolicy(rawQuery, actualOnly, policy, cfg.workers)
}

func printResults(docs []engine.Document, pageSize int) {
	if len(docs) == 0 {
		color.Yellow("No matches found.")
		return
	}

	for _, page := range engine.Paginate(docs, pageSize) {
		tbl := table.New("ID", "Relevance", "Rating")
		tbl.WithHeaderFormatter(color.New(color.FgGreen, color.Bold).SprintfFunc())
		for _, doc := range page.Items() {
			tbl.AddRow(doc.ID, fmt.Sprintf("%.6f", doc.Relevance), doc.Rating)
		}
		tbl.Print()
	}
}

// runBench generates queryCount random queries over a generated
// dictionary and reports how long ProcessQueries (the sequential scorer,
// queries spread over a worker pool) and a loop of FindTopDocumentsParallel
// calls each take to evaluate the full set, using internal/genload for
// reproducible input.
func runBench(e *engine.Engine, cfg *cliConfig, queryCount int) error {
	gen := genload.New(7)
	dictionary := gen.Dictionary(2000, 10)
	queries := gen.Queries(dictionary, queryCount, 6)

	if e.GetDocumentCount() == 0 {
		for i := 0; i < 500; i++ {
			text := gen.Query(dictionary, 40, 0)
			if err := e.AddDocument(i, text, engine.Actual, []int{i % 5}); err != nil {
				return fmt.Errorf("seeding benchmark corpus: %w", err)
			}
		}
	}

	start := time.Now()
	results := e.ProcessQueries(queries)
	sequentialElapsed := time.Since(start)

	start = time.Now()
	for _, raw := range queries {
		if _, err := e.FindTopDocumentsParallel(raw, func(_ int, status engine.Status, _ int) bool {
			return status == engine.Actual
		}, cfg.workers); err != nil {
			return err
		}
	}
	parallelElapsed := time.Since(start)

	tbl := table.New("Policy", "Queries", "Elapsed")
	tbl.WithHeaderFormatter(color.New(color.FgCyan, color.Bold).SprintfFunc())
	tbl.AddRow("process-queries (pooled)", len(results), sequentialElapsed)
	tbl.AddRow("parallel (per-query)", len(queries), parallelElapsed)
	tbl.Print()
	return nil
}
