package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nauticalab/tsconfig-engine/internal/extends"
)

// CheckJob represents one file to check
type CheckJob struct {
	Path string
}

// CheckResult represents the outcome of checking one file
type CheckResult struct {
	Path         string
	Success      bool
	Error        error
	Deprecations int
	Duration     time.Duration
}

// CheckOptions holds configuration for the check command
type CheckOptions struct {
	ResolveExtends bool
	Verbose        bool
}

// CheckRun parses every given file concurrently and reports each outcome
func CheckRun(cfg *CLIConfig, paths []string, opts CheckOptions) {
	resolver, err := cfg.NewResolver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if failures := checkFiles(os.Stdout, resolver, paths, opts); failures > 0 {
		os.Exit(1)
	}
}

// checkFiles returns the number of files that failed.
func checkFiles(w io.Writer, resolver *extends.Resolver, paths []string, opts CheckOptions) int {
	if len(paths) == 0 {
		fmt.Fprintln(w, "No files to check")
		return 0
	}

	fmt.Fprintf(w, "Found %d files to check.\n", len(paths))

	// Set up channels for worker communication
	const numWorkers = 4
	jobs := make(chan CheckJob, len(paths))
	results := make(chan CheckResult, len(paths))

	// Start worker goroutines
	for i := 0; i < numWorkers; i++ {
		go checkWorker(jobs, results, resolver, opts)
	}

	// Send all jobs to workers
	for _, path := range paths {
		jobs <- CheckJob{Path: path}
	}
	close(jobs)

	// Collect results
	var successCount, failureCount int
	var failures []CheckResult

	for i := 0; i < len(paths); i++ {
		result := <-results
		if result.Success {
			successCount++
			fmt.Fprintf(w, "[%d/%d] ✅ %s (%.1fs)\n",
				i+1, len(paths), result.Path, result.Duration.Seconds())
			if result.Deprecations > 0 {
				fmt.Fprintf(w, "       ⚠️  %d deprecated fields\n", result.Deprecations)
			}
		} else {
			failureCount++
			failures = append(failures, result)
			fmt.Fprintf(w, "[%d/%d] ❌ %s (%.1fs): %v\n",
				i+1, len(paths), result.Path, result.Duration.Seconds(), result.Error)
		}
	}

	// Print final summary
	fmt.Fprintf(w, "\n🎉 Check complete!\n")
	fmt.Fprintf(w, "✅ Successful: %d\n", successCount)
	if failureCount > 0 {
		fmt.Fprintf(w, "❌ Failed: %d\n", failureCount)
		fmt.Fprintf(w, "\nFailures:\n")
		for _, failure := range failures {
			fmt.Fprintf(w, "  - %s: %v\n", failure.Path, failure.Error)
		}
	}

	return failureCount
}

func checkWorker(jobs <-chan CheckJob, results chan<- CheckResult, resolver *extends.Resolver, opts CheckOptions) {
	for job := range jobs {
		startTime := time.Now()
		deprecations, err := checkFile(resolver, job.Path, opts)

		results <- CheckResult{
			Path:         job.Path,
			Success:      err == nil,
			Error:        err,
			Deprecations: deprecations,
			Duration:     time.Since(startTime),
		}
	}
}

func checkFile(resolver *extends.Resolver, path string, opts CheckOptions) (int, error) {
	if opts.ResolveExtends {
		chain, err := resolver.LoadChain(path)
		if err != nil {
			return 0, err
		}
		return len(chain.Deprecations), nil
	}

	_, deprecations, err := resolver.Load(path)
	if err != nil {
		return 0, err
	}
	return len(deprecations), nil
}
