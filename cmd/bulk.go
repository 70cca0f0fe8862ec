package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nephila016/fakefilter/internal/classify"
	"github.com/nephila016/fakefilter/internal/debug"
	"github.com/nephila016/fakefilter/internal/output"
	"github.com/nephila016/fakefilter/internal/worker"
)

var (
	bulkFile     string
	bulkOutput   string
	bulkWorkers  int
	bulkSkipRole bool
	bulkSkipFree bool
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Classify multiple emails from a file",
	Long: `Classify multiple email addresses from an input file using concurrent
workers. The input has one address per line; empty lines and lines
starting with "#" are skipped.

Features:
  - Concurrent classification with configurable workers
  - Progress bar and statistics
  - Incremental saving
  - Graceful shutdown on Ctrl+C

Examples:
  fakefilter bulk -f signups.txt -o results.csv
  fakefilter bulk -f signups.txt -o flagged.txt -w 8
  fakefilter bulk -f signups.txt --domains custom.yaml -o results.jsonl`,
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().StringVarP(&bulkFile, "file", "f", "", "Input file with emails (required)")
	bulkCmd.Flags().StringVarP(&bulkOutput, "output", "o", "results.csv", "Output file")
	bulkCmd.Flags().IntVarP(&bulkWorkers, "workers", "w", 4, "Number of concurrent workers")
	bulkCmd.Flags().BoolVar(&bulkSkipRole, "skip-role", false, "Skip role account detection")
	bulkCmd.Flags().BoolVar(&bulkSkipFree, "skip-free", false, "Skip free provider detection")

	bulkCmd.MarkFlagRequired("file")
}

func runBulk(cmd *cobra.Command, args []string) error {
	log := debug.GetLogger()
	startTime := time.Now()

	// Load emails
	emails, err := loadEmails(bulkFile)
	if err != nil {
		return err
	}

	if len(emails) == 0 {
		return fmt.Errorf("no emails found in %s", bulkFile)
	}

	// Print settings
	if !quiet {
		printBulkSettings(len(emails))
	}

	// Create classifier
	cfg, err := loadDomainConfig()
	if err != nil {
		return err
	}
	c := classify.New(cfg, classify.Options{
		CheckRole:         !bulkSkipRole,
		CheckFreeProvider: !bulkSkipFree,
	})

	// Create output writer
	format := output.DetectFormat(bulkOutput)
	writer, err := output.NewWriter(bulkOutput, format)
	if err != nil {
		return err
	}
	defer writer.Close()

	// Create worker pool
	pool := worker.NewPool(c, &worker.PoolConfig{
		Workers:    bulkWorkers,
		BufferSize: 256,
	})

	// Statistics
	var stats struct {
		sync.Mutex
		fake    int
		suspect int
		clean   int
	}

	// Progress bar
	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(len(emails),
			progressbar.OptionSetDescription("Classifying"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("emails"),
		)
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			cancel()
			pool.Stop()
		case <-ctx.Done():
		}
	}()

	// Result handler
	pool.SetCallback(func(result *classify.Result) {
		// Update stats
		stats.Lock()
		switch result.Verdict {
		case classify.VerdictFake:
			stats.fake++
		case classify.VerdictSuspect:
			stats.suspect++
		default:
			stats.clean++
		}
		stats.Unlock()

		// Write result
		writer.Write(result)
		writer.Flush()

		// Update progress bar
		if bar != nil {
			bar.Add(1)
		}

		// Debug output
		log.Detail("RESULT", "%s: %s", result.Email, result.Verdict)
	})

	// Start workers
	pool.Start()

	// Submit jobs
	go func() {
		for i, email := range emails {
			select {
			case <-ctx.Done():
				return
			default:
				pool.Submit(email, i)
			}
		}
		pool.Close()
	}()

	// Wait for results
	for range pool.Results() {
		// Results are handled in callback
	}

	// Print summary
	if !quiet {
		if bar != nil {
			bar.Finish()
		}
		printBulkSummary(&stats, int(pool.Processed()), startTime)
	}

	fmt.Printf("\nResults saved to: %s\n", bulkOutput)

	return nil
}

func loadEmails(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var emails []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		emails = append(emails, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return emails, nil
}

func printBulkSettings(count int) {
	cyan := color.New(color.FgCyan)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Println("========================================")
	white.Println("        Fake Email Classifier")
	cyan.Println("========================================")
	fmt.Println()

	fmt.Printf("Emails to classify: %d\n", count)
	fmt.Printf("Workers:            %d\n", bulkWorkers)
	if domainsFile != "" {
		fmt.Printf("Domain dataset:     %s\n", domainsFile)
	} else {
		fmt.Printf("Domain dataset:     bundled\n")
	}
	fmt.Printf("Output:             %s\n", bulkOutput)
	fmt.Println()
}

func printBulkSummary(stats *struct {
	sync.Mutex
	fake    int
	suspect int
	clean   int
}, total int, startTime time.Time) {
	duration := time.Since(startTime)
	rate := float64(total) / duration.Seconds()

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("========================================")
	cyan.Println("              SUMMARY")
	cyan.Println("========================================")
	fmt.Println()

	stats.Lock()
	defer stats.Unlock()

	fmt.Printf("Total Classified:  %d\n", total)
	red.Printf("Fake:              %d\n", stats.fake)
	yellow.Printf("Suspect:           %d\n", stats.suspect)
	green.Printf("Clean:             %d\n", stats.clean)
	fmt.Println()
	fmt.Printf("Duration:          %s\n", duration.Round(time.Millisecond))
	fmt.Printf("Rate:              %.0f emails/sec\n", rate)
}
