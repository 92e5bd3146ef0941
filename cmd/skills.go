package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/scouteye/internal/analysis"
	"github.com/abhisek/scouteye/internal/llm"
	"github.com/abhisek/scouteye/internal/report"
	"github.com/abhisek/scouteye/internal/skilleval"
)

var skillsCmd = &cobra.Command{
	Use:   "skills <video>",
	Short: "Score football skills from a player video",
	Long: `Uploads the video, waits for remote processing, and scores each skill
of the selected age group against its rubric. Pass --skill to score a
single skill instead of the full set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath := args[0]
		if _, err := os.Stat(videoPath); err != nil {
			return fmt.Errorf("video file: %w", err)
		}

		group, err := ageGroupFlag(cmd)
		if err != nil {
			return err
		}

		var single skilleval.Skill
		if s, _ := cmd.Flags().GetString("skill"); s != "" {
			single = skilleval.Skill(s)
			if !skillInGroup(single, group) {
				return fmt.Errorf("skill %q is not evaluated for age group %q (options: %v)",
					s, group, skilleval.SkillsFor(group))
			}
		}

		ctx := context.Background()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close(ctx)
		a.sess.AgeGroup = group
		ctx = llm.WithSession(ctx, a.sess.ID)

		fmt.Fprintf(cmd.OutOrStdout(), "Uploading %s and waiting for processing...\n", videoPath)
		remote, err := a.sess.EnsureAsset(ctx, videoPath)
		if err != nil {
			return fmt.Errorf("prepare video: %w", err)
		}

		svc := skilleval.NewService(analysis.NewInvoker(a.provider))
		var sum skilleval.Summary
		if single != "" {
			sum, err = svc.EvaluateOne(ctx, remote, single, group)
		} else {
			sum, err = svc.EvaluateAll(ctx, remote, group)
		}
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}
		a.sess.Evaluation = &sum

		fmt.Fprintln(cmd.OutOrStdout(), report.RenderSummary(sum, group))
		return nil
	},
}

func init() {
	skillsCmd.Flags().String("age", "8+", `Age group: "5-8" or "8+"`)
	skillsCmd.Flags().String("skill", "", "Score only this skill (e.g. Passing)")
}

func ageGroupFlag(cmd *cobra.Command) (skilleval.AgeGroup, error) {
	v, _ := cmd.Flags().GetString("age")
	switch v {
	case "5-8":
		return skilleval.AgeGroup5To8, nil
	case "8+", "":
		return skilleval.AgeGroup8Plus, nil
	default:
		return "", fmt.Errorf(`invalid age group %q: use "5-8" or "8+"`, v)
	}
}

func skillInGroup(s skilleval.Skill, group skilleval.AgeGroup) bool {
	for _, sk := range skilleval.SkillsFor(group) {
		if sk == s {
			return true
		}
	}
	return false
}
