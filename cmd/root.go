package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deliberate/internal/llm"
	"deliberate/internal/reflection"
	"deliberate/internal/service"
	"deliberate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "deliberate",
	Short: "Deliberate practice for algorithm interview patterns",
	Long: "Deliberate — a terminal coach for interview preparation. Commit to a\n" +
		"pattern before you code, report what actually happened, and let the\n" +
		"history show you which patterns you lean on and which you avoid.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DELIBERATE_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (defaults to the OS username)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DELIBERATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner ID from --user or the OS username.
func resolveUser(cmd *cobra.Command) (string, error) {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	return u.Username, nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}

// openStore opens the database selected by flags and environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newService builds the attempt service. The LLM reviewer is wired only
// when a provider is configured; everything else works without one.
func newService(cmd *cobra.Command, s *store.Store, withReviewer bool) *service.AttemptService {
	opts := []service.Option{service.WithLogger(newLogger(cmd))}

	if withReviewer {
		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			}
		}
		if cfg.Validate() == nil {
			provider, err := llm.NewProvider(cmd.Context(), cfg, s.EventRepo())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Attempt reviews will be unavailable.")
			} else {
				opts = append(opts, service.WithReviewer(
					reflection.NewService(provider, reflection.DefaultConfig())))
			}
		}
	}

	return service.NewAttemptService(s.AttemptRepo(), s.EventRepo(), opts...)
}
