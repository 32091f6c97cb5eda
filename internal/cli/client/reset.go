package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResetCmd creates the reset command. Reset clears the six set-valued
// filter dimensions; ranking bounds stay in place (use
// `search --clear-ranking` to drop those).
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the filter dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			if _, err := api.Delete("/search/filters"); err != nil {
				return fmt.Errorf("failed to reset filters: %w", err)
			}

			fmt.Println("Filters reset.")
			return nil
		},
	}

	return cmd
}
