package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goclt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goclt v%s\n", version.Version)
		fmt.Println("CLT Beam Analysis Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
