// Package cmd contains the CLI for the application, built using the Cobra library.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/YANHAN-BLCU/reporank/internal/config"
	"github.com/YANHAN-BLCU/reporank/internal/gateway"
	"github.com/YANHAN-BLCU/reporank/internal/storage"
	"github.com/YANHAN-BLCU/reporank/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "reporank [username]",
	Short: "Ranks a GitHub user's repositories by popularity",
	Long: `reporank fetches a GitHub user's public repositories, drops forks,
ranks the rest by star count (ties broken by name), prints summary
statistics, and saves the ranked list as JSON.

If no username is given on the command line, reporank prompts for one.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.Flags().StringP("config", "c", "", "Path to a TOML config file")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Set up the logger. Debug output is suppressed unless --verbose is set;
	// user-facing results always go to stdout via plain prints.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	username, err := resolveUsername(args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	githubGateway, err := gateway.NewGitHubGateway(cfg.Timeout(), cfg.GitHub.BaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}

	out := cmd.OutOrStdout()

	// Fetch, timing the whole fetch+parse step. A transport or API failure
	// is fatal: nothing is printed beyond the error and no file is written.
	start := time.Now()
	repos, err := githubGateway.FetchRepositories(ctx, username)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	fmt.Fprintf(out, "Fetched repositories in %s\n", time.Since(start).Round(time.Millisecond))

	ranker := usecase.NewRanker(cfg.Stats.PopularThreshold, logger)
	ranked := ranker.Rank(repos)
	summary := ranker.Summarize(ranked)

	if summary.MostPopular != nil {
		fmt.Fprintf(out, "Most popular repository: %s\n", summary.MostPopular)
	}
	fmt.Fprintf(out, "Total non-fork repositories: %d\n", summary.Total)
	if summary.Total > 0 {
		fmt.Fprintf(out, "Average stars: %.1f (median %.1f)\n", summary.MeanStars, summary.MedianStars)
	}
	fmt.Fprintf(out, "Repositories with more than %d stars: %d\n", summary.Threshold, summary.Popular)

	writer := storage.NewWriter(cfg.Output.Path)
	if err := writer.Save(ranked); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved ranked repositories to %s\n", writer.Path())

	return nil
}

// loadConfig builds the effective configuration: defaults, overlaid by the
// --config file when given, overlaid by the --output flag when given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output.Path = output
	}

	return cfg, nil
}

// resolveUsername returns the positional argument when present, otherwise
// prompts on out and reads a single line from in.
func resolveUsername(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fmt.Fprint(out, "GitHub username: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read username: %w", err)
	}

	username := strings.TrimSpace(line)
	if username == "" {
		return "", fmt.Errorf("no username provided")
	}
	return username, nil
}

// newLogger creates a stderr logger in the application's standard format.
// Debug messages are only emitted when verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
