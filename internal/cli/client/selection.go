package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// SelectRequest represents the selection API request.
type SelectRequest struct {
	ID string `json:"id"`
}

// SelectCmd creates the select command.
func SelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Select an institution by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			resp, err := api.Put("/selection", SelectRequest{ID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to select institution: %w", err)
			}

			var inst InstitutionResponse
			if err := json.Unmarshal(resp.Data, &inst); err != nil {
				return fmt.Errorf("failed to parse institution: %w", err)
			}

			fmt.Printf("Selected %s (%s)\n", inst.Name, inst.ID)
			return nil
		},
	}

	return cmd
}

// UnselectCmd creates the unselect command.
func UnselectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unselect",
		Short: "Clear the current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			if _, err := api.Delete("/selection"); err != nil {
				return fmt.Errorf("failed to clear selection: %w", err)
			}

			fmt.Println("Selection cleared.")
			return nil
		},
	}

	return cmd
}
