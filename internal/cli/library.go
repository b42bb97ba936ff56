package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Library maintenance commands",
	}

	cmd.AddCommand(newLibraryExportCmd())
	cmd.AddCommand(newLibraryResetCmd())

	return cmd
}

func newLibraryExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all players, games and sessions as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.GetRaw("/api/v1/export")
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Exported to %s", outFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write export to a file instead of stdout")

	return cmd
}

func newLibraryResetCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset players and games to the starter library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("pass --yes to confirm the reset")
			}

			if err := client.Post("/api/v1/library/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Library reset to starter data")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm the reset")

	return cmd
}
