// Command langlex walks a directory tree and tokenizes every source
// file it finds, reporting the first fatal lexical error encountered.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ikramp/langlex/lexer"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var workers int
	root := &cobra.Command{
		Use:   "langlex <directory>",
		Short: "Tokenize every source file under a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args[0], workers)
		},
	}
	root.Flags().IntVarP(&workers, "jobs", "j", runtime.NumCPU(), "number of files to tokenize concurrently")
	return root
}

type fileResult struct {
	path   string
	tokens int
	err    error
}

func run(logger log.Logger, root string, workers int) error {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	start := time.Now()
	results := tokenizeAll(logger, paths, workers)

	var totalTokens, failed int
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.err
			}
			level.Error(logger).Log("msg", "fatal lex error", "file", r.path, "err", r.err)
			continue
		}
		totalTokens += r.tokens
	}

	level.Info(logger).Log(
		"msg", "tokenization complete",
		"files", len(paths),
		"failed", failed,
		"tokens", totalTokens,
		"elapsed", time.Since(start),
	)

	if firstErr != nil {
		return firstErr
	}
	return nil
}

// tokenizeAll tokenizes paths across a pool of workers goroutines
// (at least one, at most one per path); one file's fatal error does
// not stop workers already processing other files.
func tokenizeAll(logger log.Logger, paths []string, workers int) []fileResult {
	results := make([]fileResult, len(paths))
	jobs := make(chan int)

	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				path := paths[idx]
				level.Info(logger).Log("msg", "tokenizing file", "file", path)
				toks, err := lexer.TokenizeFile(path)
				results[idx] = fileResult{path: path, tokens: len(toks), err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
