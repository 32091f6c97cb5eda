package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// FilterPatchRequest mirrors the merge-filters API body. Only fields
// the user set on the command line are sent, so untouched dimensions
// stay as they are on the server.
type FilterPatchRequest struct {
	Location               *[]string `json:"location,omitempty"`
	Type                   *[]string `json:"type,omitempty"`
	EntryRequirements      *[]string `json:"entryRequirements,omitempty"`
	CoursesOffered         *[]string `json:"coursesOffered,omitempty"`
	CoCurricularActivities *[]string `json:"coCurricularActivities,omitempty"`
	SpecialPrograms        *[]string `json:"specialPrograms,omitempty"`
	MinRanking             *int      `json:"minRanking,omitempty"`
	MaxRanking             *int      `json:"maxRanking,omitempty"`
	ClearRanking           bool      `json:"clearRanking,omitempty"`
}

// SetQueryRequest represents the query API request.
type SetQueryRequest struct {
	Query string `json:"query"`
}

// SearchCmd creates the search command.
func SearchCmd() *cobra.Command {
	var (
		locations    []string
		types        []string
		entryReqs    []string
		courses      []string
		activities   []string
		programs     []string
		minRanking   int
		maxRanking   int
		clearRanking bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search and filter institutions",
		Long: `Updates the server's search state and shows the matching institutions.

A positional query matches institution names case-insensitively as a
substring. Repeatable filter flags narrow by dimension; a dimension
passes if the record matches any of its values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if _, err := api.Put("/search/query", SetQueryRequest{Query: args[0]}); err != nil {
					return fmt.Errorf("failed to set query: %w", err)
				}
			}

			patch := FilterPatchRequest{ClearRanking: clearRanking}
			if cmd.Flags().Changed("location") {
				patch.Location = &locations
			}
			if cmd.Flags().Changed("type") {
				patch.Type = &types
			}
			if cmd.Flags().Changed("entry-req") {
				patch.EntryRequirements = &entryReqs
			}
			if cmd.Flags().Changed("course") {
				patch.CoursesOffered = &courses
			}
			if cmd.Flags().Changed("activity") {
				patch.CoCurricularActivities = &activities
			}
			if cmd.Flags().Changed("program") {
				patch.SpecialPrograms = &programs
			}
			if cmd.Flags().Changed("min-ranking") {
				patch.MinRanking = &minRanking
			}
			if cmd.Flags().Changed("max-ranking") {
				patch.MaxRanking = &maxRanking
			}

			if _, err := api.Patch("/search/filters", patch); err != nil {
				return fmt.Errorf("failed to apply filters: %w", err)
			}

			return runView(api, outputJSON)
		},
	}

	cmd.Flags().StringSliceVarP(&locations, "location", "l", nil, "Filter by location (repeatable)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Filter by institution type (repeatable)")
	cmd.Flags().StringSliceVar(&entryReqs, "entry-req", nil, "Filter by entry requirement (repeatable)")
	cmd.Flags().StringSliceVar(&courses, "course", nil, "Filter by offered course (repeatable)")
	cmd.Flags().StringSliceVar(&activities, "activity", nil, "Filter by co-curricular activity (repeatable)")
	cmd.Flags().StringSliceVar(&programs, "program", nil, "Filter by special program (repeatable)")
	cmd.Flags().IntVar(&minRanking, "min-ranking", 0, "Minimum ranking (inclusive)")
	cmd.Flags().IntVar(&maxRanking, "max-ranking", 0, "Maximum ranking (inclusive)")
	cmd.Flags().BoolVar(&clearRanking, "clear-ranking", false, "Drop both ranking bounds")

	return cmd
}

// QueryCmd creates the query command, which sets only the free-text
// query without touching the filters.
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Set the free-text query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			resp, err := api.Put("/search/query", SetQueryRequest{Query: args[0]})
			if err != nil {
				return fmt.Errorf("failed to set query: %w", err)
			}

			var state SearchStateResponse
			if err := json.Unmarshal(resp.Data, &state); err != nil {
				return fmt.Errorf("failed to parse search state: %w", err)
			}

			fmt.Printf("Query set to %q\n", state.Query)
			return nil
		},
	}

	return cmd
}
