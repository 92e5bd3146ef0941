package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/llm"
	"github.com/abhisek/scouteye/internal/session"
	"github.com/abhisek/scouteye/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "scouteye",
	Short: "AI football scouting from player videos",
	Long:  "Scout Eye — scores youth football skills and extracts biomechanical metrics from a player video using a multimodal model.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SCOUTEYE_DB env var)")
	rootCmd.PersistentFlags().String("model", "", "Model ID or friendly name (overrides SCOUTEYE_GEMINI_MODEL)")
	rootCmd.PersistentFlags().Bool("mock", false, "Use the mock provider instead of Gemini")

	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(biomechCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SCOUTEYE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLLMConfig builds the provider configuration from environment and
// flags. Flags win.
func resolveLLMConfig(cmd *cobra.Command) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg.Model = m
	}
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		cfg.Provider = "mock"
	}
	return cfg, cfg.Validate()
}

// app bundles the wired services one analysis command needs.
type app struct {
	store    *store.Store
	provider llm.Provider
	files    llm.FileStore
	sess     *session.Session
}

// newApp opens the event store and constructs the provider, file store,
// asset manager, and session for an analysis run.
func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	cfg, err := resolveLLMConfig(cmd)
	if err != nil {
		s.Close()
		return nil, err
	}

	provider, files, err := llm.NewService(ctx, cfg, s.EventRepo())
	if err != nil {
		s.Close()
		return nil, err
	}

	mgr := asset.NewManager(files, asset.DefaultConfig())
	return &app{
		store:    s,
		provider: provider,
		files:    files,
		sess:     session.New(mgr),
	}, nil
}

// Close releases the session's remote asset and the database handle.
func (a *app) Close(ctx context.Context) {
	a.sess.Close(ctx)
	a.store.Close()
}
