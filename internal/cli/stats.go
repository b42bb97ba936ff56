package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Group statistics commands",
	}

	cmd.AddCommand(newStatsLeaderboardCmd())
	cmd.AddCommand(newStatsVibesCmd())
	cmd.AddCommand(newStatsTopGamesCmd())
	cmd.AddCommand(newStatsHistoryCmd())

	return cmd
}

func newStatsLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the win leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/stats/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsVibesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vibes",
		Short: "Show vibe popularity across sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []VibeStat

			if err := client.Get("/api/v1/stats/vibes", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsTopGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top-games",
		Short: "Show the most played games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GamePlays

			if err := client.Get("/api/v1/stats/top-games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show session history, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Session

			if err := client.Get("/api/v1/stats/history", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
