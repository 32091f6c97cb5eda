package main

import (
	"fmt"
	"os"

	"github.com/pathwaylabs/schoolscout/internal/cli"
	"github.com/pathwaylabs/schoolscout/internal/cli/client"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "schoolscout",
		Short: "Schoolscout CLI - browse and filter the school directory",
		Long: `Schoolscout CLI drives the directory server's search state and
shows the filtered institution list.

Environment variables:
  SCHOOLSCOUT_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.ViewCmd())
	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.QueryCmd())
	rootCmd.AddCommand(client.ResetCmd())
	rootCmd.AddCommand(client.SelectCmd())
	rootCmd.AddCommand(client.UnselectCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
