package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/scouteye/internal/analysis"
	"github.com/abhisek/scouteye/internal/biomech"
	"github.com/abhisek/scouteye/internal/llm"
	"github.com/abhisek/scouteye/internal/report"
)

var biomechCmd = &cobra.Command{
	Use:   "biomech <video>",
	Short: "Extract biomechanical metrics from a player video",
	Long: `Uploads the video, waits for remote processing, and asks the model for
the 13 biomechanical metrics. Metrics the model cannot estimate are
reported as "Not Clear".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath := args[0]
		if _, err := os.Stat(videoPath); err != nil {
			return fmt.Errorf("video file: %w", err)
		}

		ctx := context.Background()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close(ctx)
		ctx = llm.WithSession(ctx, a.sess.ID)

		fmt.Fprintf(cmd.OutOrStdout(), "Uploading %s and waiting for processing...\n", videoPath)
		remote, err := a.sess.EnsureAsset(ctx, videoPath)
		if err != nil {
			return fmt.Errorf("prepare video: %w", err)
		}

		svc := biomech.NewService(analysis.NewInvoker(a.provider))
		rec, err := svc.Extract(ctx, remote)
		if err != nil {
			// The record still covers all metrics; report and render it.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		a.sess.Biomech = rec

		fmt.Fprintln(cmd.OutOrStdout(), report.RenderMetrics(rec))
		return nil
	},
}
