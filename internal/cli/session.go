package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/boardnight/internal/dependencies/clock"
	"github.com/mcoot/boardnight/internal/model"
)

// cliClock supplies defaults for date and time flags; swapped for a mock in tests
var cliClock clock.Clock = clock.New()

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session planning commands",
	}

	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionAddCmd())
	cmd.AddCommand(newSessionDuplicateCmd())
	cmd.AddCommand(newSessionResultsCmd())
	cmd.AddCommand(newSessionRemoveCmd())

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Session

			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionAddCmd() *cobra.Command {
	var (
		date      string
		timeOfDay string
		location  string
		vibe      string
		gameID    string
		playerIDs []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vibe == "" {
				return fmt.Errorf("--vibe is required")
			}
			if gameID == "" {
				return fmt.Errorf("--game is required")
			}

			// Default to the current date and time when not given
			now := cliClock.Now()
			if date == "" {
				date = now.Format(model.DateLayout)
			}
			if timeOfDay == "" {
				timeOfDay = now.Format(model.TimeLayout)
			}

			req := map[string]any{
				"date":       date,
				"time":       timeOfDay,
				"vibe":       vibe,
				"game_id":    gameID,
				"player_ids": playerIDs,
			}
			if location != "" {
				req["location"] = location
			}
			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Session time, HH:MM (default: now)")
	cmd.Flags().StringVar(&location, "location", "", "Where the session happens")
	cmd.Flags().StringVar(&vibe, "vibe", "", "Session vibe (required)")
	cmd.Flags().StringVar(&gameID, "game", "", "Game ID (required)")
	cmd.Flags().StringSliceVar(&playerIDs, "player", nil, "Participant player IDs (repeatable)")
	_ = cmd.MarkFlagRequired("vibe")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newSessionDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <session-id>",
		Short: "Duplicate an existing session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/duplicate", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionResultsCmd() *cobra.Command {
	var winnerIDs []string

	cmd := &cobra.Command{
		Use:   "results <session-id>",
		Short: "Record the results of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(winnerIDs) == 0 {
				return fmt.Errorf("--winner is required")
			}

			req := map[string]any{"winner_ids": winnerIDs}
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/results", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&winnerIDs, "winner", nil, "Winner player IDs (repeatable, required)")
	_ = cmd.MarkFlagRequired("winner")

	return cmd
}

func newSessionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session-id>",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session removed")
			return nil
		},
	}
}
