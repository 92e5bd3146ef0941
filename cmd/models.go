package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/scouteye/internal/llm"
	"github.com/abhisek/scouteye/internal/skilleval"
	"github.com/abhisek/scouteye/internal/store"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List selectable models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := resolveLLMConfig(cmd)
		// The configured model may be a friendly name; compare full IDs.
		current := llm.ResolveModel(cfg.Model)
		for _, id := range llm.SelectableModels() {
			marker := " "
			if id == current {
				marker = "*"
			}
			cost := llm.LookupCost(id)
			if cost != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s $%.3f/$%.2f per MTok\n",
					marker, id, cost.InputPerMTok, cost.OutputPerMTok)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
			}
		}
		return nil
	},
}

var modelsTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test provider connectivity with a trivial prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		cfg, err := resolveLLMConfig(cmd)
		if err != nil {
			return err
		}
		provider, _, err := llm.NewService(ctx, cfg, s.EventRepo())
		if err != nil {
			return err
		}

		ctx = llm.WithPurpose(ctx, "connectivity-test")
		resp, err := provider.Generate(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: skilleval.ConnectivityTestPrompt},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("connectivity test failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s answered %q\n", provider.ModelID(), resp.Text)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsTestCmd)
}
