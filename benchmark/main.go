// Package main provides a performance benchmarking tool for the samplerate CLI.
// It generates synthetic recordings of increasing size, runs each command multiple times,
// treats the first successful run as cold and averages the rest as warm,
// and writes CSV output for performance analysis and documentation.
//
// Prerequisites:
// - samplerate binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic CSV recordings are written
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	Samples  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   map[string]int // Dataset name to number of eye samples
	Order   []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes: map[string]int{
			"small":  1_000,
			"medium": 100_000,
			"large":  2_000_000,
		},
		Order: []string{"small", "medium", "large"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the samplerate binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("samplerate"); err != nil {
		return errors.New("samplerate binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks generates each dataset and times the analyze and compare commands on it
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs\n", len(config.Order), config.Timeout, config.Runs)

	for _, name := range config.Order {
		samples := config.Sizes[name]
		fmt.Printf("Generating %s dataset (%d eye samples)\n", name, samples)

		eyePath := filepath.Join(config.WorkDir, name+"_eye.csv")
		bodyPath := filepath.Join(config.WorkDir, name+"_body.csv")
		if err := writeRecording(eyePath, "gaze_capture_time", samples, 1.0/200); err != nil {
			return nil, err
		}
		if err := writeRecording(bodyPath, "time", samples/2, 1.0/100); err != nil {
			return nil, err
		}

		results = append(results, runBenchmarkSuite(config, name, samples, "analyze",
			[]string{"analyze", eyePath, "--column", "gaze_capture_time"}))
		results = append(results, runBenchmarkSuite(config, name, samples, "compare",
			[]string{"compare", "--eye-file", eyePath, "--body-file", bodyPath}))
	}

	return results, nil
}

// writeRecording writes a CSV whose first column holds jittered epoch seconds
func writeRecording(path, column string, samples int, period float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{column, "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	t := 1_700_000_000.0
	for i := range samples {
		t += period * (0.9 + 0.2*rand.Float64())
		if err := writer.Write([]string{strconv.FormatFloat(t, 'f', 6, 64), strconv.Itoa(i)}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmarkSuite runs one command several times and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, dataset string, samples int, command string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, dataset)

	coldTime, warmTimes := runBenchmark(config, args)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Command:  command,
		Samples:  samples,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a samplerate command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for range config.Runs {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "samplerate", args...).CombinedOutput()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil && isSuccess(output) {
			times = append(times, elapsed)
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Analysis completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("samplerate_benchmark_%s.csv", timestamp))

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

	if err := writer.Write([]string{"dataset", "cmd", "samples", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, strconv.Itoa(result.Samples), result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "analyze", "Analyze:")
	printCommandSummary(results, "compare", "Compare:")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s (%9d samples): Cold: %s, Warm: %s\n", result.Dataset, result.Samples, result.ColdTime, result.WarmTime)
		}
	}
}
