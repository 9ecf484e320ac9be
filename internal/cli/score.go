package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission commands",
	}

	cmd.AddCommand(newScoreRecordCmd())

	return cmd
}

func newScoreRecordCmd() *cobra.Command {
	var wave, score, playtime int

	cmd := &cobra.Command{
		Use:   "record <id-or-name>",
		Short: "Append a play session to a player's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{
				"wave":     wave,
				"score":    score,
				"playtime": playtime,
			}
			var result Player

			if err := client.Patch("/update_score/"+url.PathEscape(args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&wave, "wave", 0, "Furthest wave reached (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Points earned (required)")
	cmd.Flags().IntVar(&playtime, "playtime", 0, "Seconds played (required)")
	_ = cmd.MarkFlagRequired("wave")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("playtime")

	return cmd
}
