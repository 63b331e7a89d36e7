// Package main provides a performance benchmarking tool for the chakra CLI.
// It measures execution times across sample sizes and command types,
// running each test multiple times, treating the first tracked run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - chakra binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-dir]
//
//	output-dir: Existing directory that receives the generated charts
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (untracked average, cold run and average of warm tracked runs).
type BenchmarkResult struct {
	Samples       int
	Command       string
	UntrackedTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	OutputDir     string
	HistoryDB     string
	Timeout       time.Duration
	UntrackedRuns int
	TrackedRuns   int
	SampleSizes   []int
	Commands      []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [output-dir]\n", os.Args[0])
		os.Exit(1)
	}
	outputDir := os.Args[1]

	config := BenchmarkConfig{
		OutputDir:     outputDir,
		HistoryDB:     filepath.Join(os.TempDir(), "chakra_benchmark_history.db"),
		Timeout:       2 * time.Minute,
		UntrackedRuns: 3,
		TrackedRuns:   4,
		SampleSizes:   []int{500, 1000, 2500, 5000},
		Commands:      []string{"full", "summary", "export"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Start from an empty history using chakra history clear
	fmt.Printf("Clearing history...\n")
	clearCmd := exec.Command("chakra", "history", "clear", "--analysis-backend", "sqlite", "--analysis-db-connect", config.HistoryDB)
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("History cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the chakra binary and the output directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("chakra"); err != nil {
		return fmt.Errorf("chakra binary not found in PATH")
	}
	info, err := os.Stat(config.OutputDir)
	if err != nil {
		return fmt.Errorf("output directory %s not found", config.OutputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", config.OutputDir)
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured sample sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sample sizes, %v timeout, untracked: %d runs, tracked: %d runs\n",
		len(config.SampleSizes), config.Timeout, config.UntrackedRuns, config.TrackedRuns)

	for _, samples := range config.SampleSizes {
		fmt.Printf("Benchmarking %d samples\n", samples)
		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, samples, command))
		}
	}

	return results
}

// runBenchmarkSuite runs both untracked and tracked benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, samples int, command string) BenchmarkResult {
	fmt.Printf("Running %s with %d samples\n", command, samples)

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, samples, command, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: runs without history tracking
	_, untrackedAvg := runPhase("none", config.UntrackedRuns, "Untracked")

	// Phase 2: runs tracked in SQLite
	coldTime, warmAvg := runPhase("sqlite", config.TrackedRuns, "Tracked")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  Untracked average: %s, Cold time: %s, Warm average: %s\n", untrackedAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Samples:       samples,
		Command:       command,
		UntrackedTime: untrackedAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// commandArgs builds the chakra arguments for one benchmark command.
func commandArgs(config BenchmarkConfig, samples int, command, backend string) []string {
	var args []string
	switch command {
	case "full":
		args = []string{"--output-dir", config.OutputDir, "--dpi", "100"}
	case "export":
		args = []string{"export", "--output-file", filepath.Join(os.TempDir(), "chakra_benchmark_signals.csv")}
	default:
		args = []string{command}
	}
	args = append(args, "--samples", strconv.Itoa(samples), "--emoji", "no", "--analysis-backend", backend)
	if backend == "sqlite" {
		args = append(args, "--analysis-db-connect", config.HistoryDB)
	}
	return args
}

// runBenchmark executes a chakra command multiple times with the specified history backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, samples int, command, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := commandArgs(config, samples, command, backend)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("chakra", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "full":
		return strings.Contains(outputStr, "Analysis complete!")
	case "summary":
		return strings.Contains(outputStr, "CHAKRA INFLUENCE SUMMARY")
	default:
		return true
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("chakra_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"samples", "cmd", "untracked_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Samples), result.Command, result.UntrackedTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, command := range config.Commands {
		printCommandSummary(results, command, strings.ToUpper(command[:1])+command[1:]+":")
	}

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %6d samples: Untracked: %s, Cold: %s, Warm: %s\n", result.Samples, result.UntrackedTime, result.ColdTime, result.WarmTime)
		}
	}
}
