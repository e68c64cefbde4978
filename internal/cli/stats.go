package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Game stats commands",
	}

	cmd.AddCommand(newStatsSaveCmd())
	cmd.AddCommand(newStatsListCmd())
	cmd.AddCommand(newStatsSummaryCmd())

	return cmd
}

func newStatsSaveCmd() *cobra.Command {
	var (
		difficulty   string
		timeTaken    int
		win          bool
		minesFlagged int
		cellsOpened  int
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a finished game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				return fmt.Errorf("--difficulty is required")
			}

			req := map[string]any{
				"difficulty":    strings.ToUpper(difficulty),
				"time_taken":    timeTaken,
				"is_win":        win,
				"mines_flagged": minesFlagged,
				"cells_opened":  cellsOpened,
			}
			var result GameRecord

			if err := client.Post("/api/v1/game-stats", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: EASY, MEDIUM, HARD (required)")
	cmd.Flags().IntVar(&timeTaken, "time", 0, "Elapsed time in seconds (required)")
	cmd.Flags().BoolVar(&win, "win", false, "Whether the game was won")
	cmd.Flags().IntVar(&minesFlagged, "mines-flagged", 0, "Number of mines flagged")
	cmd.Flags().IntVar(&cellsOpened, "cells-opened", 0, "Number of cells opened")
	_ = cmd.MarkFlagRequired("difficulty")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newStatsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded games, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameRecordList

			if err := client.Get("/api/v1/game-stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatsSummary

			if err := client.Get("/api/v1/game-stats/summary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
