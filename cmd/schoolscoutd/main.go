package main

import (
	"fmt"
	"os"

	"github.com/pathwaylabs/schoolscout/internal/cli"
	"github.com/pathwaylabs/schoolscout/internal/cli/admin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schoolscoutd",
		Short: "Schoolscout directory daemon",
		Long:  "Schoolscout daemon serving the school-directory data-access API",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
