package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game library commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameAddCmd())
	cmd.AddCommand(newGameRenameCmd())
	cmd.AddCommand(newGameRemoveCmd())
	cmd.AddCommand(newGameSuggestCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/games"
			if query != "" {
				path += "?q=" + url.QueryEscape(query)
			}

			var result []Game
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter games by title substring")

	return cmd
}

func newGameAddCmd() *cobra.Command {
	var (
		title      string
		minPlayers int
		maxPlayers int
		duration   int
		vibes      []string
		weight     string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			req := map[string]any{
				"title":       title,
				"min_players": minPlayers,
				"max_players": maxPlayers,
				"duration":    duration,
				"vibes":       vibes,
				"weight":      weight,
			}
			if notes != "" {
				req["notes"] = notes
			}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Game title (required)")
	cmd.Flags().IntVar(&minPlayers, "min-players", 2, "Minimum player count")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 4, "Maximum player count")
	cmd.Flags().IntVar(&duration, "duration", 30, "Typical play time in minutes")
	cmd.Flags().StringSliceVar(&vibes, "vibe", nil, "Game vibes (repeatable)")
	cmd.Flags().StringVar(&weight, "weight", "Medium", "Game weight: Light, Medium, Heavy")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newGameRenameCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "rename <game-id>",
		Short: "Rename a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			req := map[string]string{"title": title}
			var result Game

			if err := client.Patch("/api/v1/games/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New game title (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newGameRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Remove a game from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game removed")
			return nil
		},
	}
}

func newGameSuggestCmd() *cobra.Command {
	var (
		vibe  string
		count int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest games for a vibe and player count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vibe == "" {
				return fmt.Errorf("--vibe is required")
			}

			params := url.Values{}
			params.Set("vibe", vibe)
			params.Set("count", strconv.Itoa(count))
			if limit > 0 {
				params.Set("limit", strconv.Itoa(limit))
			}

			var result []Game
			if err := client.Get("/api/v1/games/suggestions?"+params.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&vibe, "vibe", "", "Desired vibe (required)")
	cmd.Flags().IntVar(&count, "count", 4, "Expected player count")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum suggestions to return")
	_ = cmd.MarkFlagRequired("vibe")

	return cmd
}
