package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverbeek/verbuig/internal/app"
	"github.com/mverbeek/verbuig/internal/lexicon"
)

var (
	playTenses []string
	playCount  int
	playSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice round right away",
	Long: `Start a practice round without going through the home screen.

Tenses are given by code or short name: ott, ovt, vtt, vvt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenses []lexicon.Tense
		seen := make(map[lexicon.Tense]bool)
		for _, raw := range playTenses {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				t, err := lexicon.ParseTense(part)
				if err != nil {
					return fmt.Errorf("unknown tense %q (use ott, ovt, vtt or vvt)", part)
				}
				if !seen[t] {
					seen[t] = true
					tenses = append(tenses, t)
				}
			}
		}

		if playCount < 0 {
			return fmt.Errorf("count must be positive, got %d", playCount)
		}

		return app.Run(app.Options{
			Tenses:    tenses,
			Count:     playCount,
			Seed:      playSeed,
			AutoStart: true,
		})
	},
}

func init() {
	playCmd.Flags().StringSliceVarP(&playTenses, "tenses", "t", nil,
		"tenses to drill (ott, ovt, vtt, vvt); default all four")
	playCmd.Flags().IntVarP(&playCount, "count", "n", app.DefaultCount,
		"number of questions in the round")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0,
		"random seed for reproducible rounds (0 = time-based)")
}
