package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// InstitutionResponse represents a single institution record.
type InstitutionResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Location               string   `json:"location"`
	Type                   string   `json:"type"`
	EntryRequirements      []string `json:"entryRequirements"`
	CoursesOffered         []string `json:"coursesOffered"`
	CoCurricularActivities []string `json:"coCurricularActivities"`
	SpecialPrograms        []string `json:"specialPrograms"`
	Ranking                *int     `json:"ranking,omitempty"`
	Description            string   `json:"description,omitempty"`
	Website                string   `json:"website,omitempty"`
}

// SearchStateResponse represents the server's current search state.
type SearchStateResponse struct {
	Query   string `json:"query"`
	Filters struct {
		Location               []string `json:"location"`
		Type                   []string `json:"type"`
		EntryRequirements      []string `json:"entryRequirements"`
		CoursesOffered         []string `json:"coursesOffered"`
		CoCurricularActivities []string `json:"coCurricularActivities"`
		SpecialPrograms        []string `json:"specialPrograms"`
		MinRanking             *int     `json:"minRanking,omitempty"`
		MaxRanking             *int     `json:"maxRanking,omitempty"`
	} `json:"filters"`
}

// ViewResponse represents the directory view API response.
type ViewResponse struct {
	Institutions []InstitutionResponse `json:"institutions"`
	Loading      bool                  `json:"loading"`
	Error        string                `json:"error,omitempty"`
	Selected     *InstitutionResponse  `json:"selected,omitempty"`
	Search       SearchStateResponse   `json:"search"`
}

// ViewCmd creates the view command.
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the filtered institution list",
		Long:  "Shows the institutions matching the server's current search state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}
			return runView(api, outputJSON)
		},
	}

	return cmd
}

func runView(api *APIClient, outputJSON bool) error {
	resp, err := api.Get("/institutions")
	if err != nil {
		return fmt.Errorf("failed to fetch directory view: %w", err)
	}

	var view ViewResponse
	if err := json.Unmarshal(resp.Data, &view); err != nil {
		return fmt.Errorf("failed to parse directory view: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(view, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	printView(view)
	return nil
}

func printView(view ViewResponse) {
	if view.Loading {
		fmt.Println("Directory is still loading...")
		return
	}

	if view.Error != "" {
		fmt.Printf("Warning: %s\n\n", view.Error)
	}

	if len(view.Institutions) == 0 {
		fmt.Println("No institutions match the current search.")
		return
	}

	for _, inst := range view.Institutions {
		ranking := "unranked"
		if inst.Ranking != nil {
			ranking = fmt.Sprintf("#%d", *inst.Ranking)
		}
		fmt.Printf("%-14s %-30s %-12s %-10s %s\n", inst.ID, inst.Name, inst.Location, inst.Type, ranking)
	}

	fmt.Printf("\n%d institution(s)\n", len(view.Institutions))

	if view.Selected != nil {
		fmt.Printf("Selected: %s (%s)\n", view.Selected.Name, view.Selected.ID)
	}
}
