package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "goclt",
	Short: "CLT Beam Analysis Tool",
	Long: `goclt - Go CLT Beam Analyzer

A CLI tool for computing and visualizing the structural response of
cross-laminated-timber beams under uniformly distributed load.

This tool helps structural engineers:
  - Compute deflection, bending moment and shear force diagrams
  - Analyze simply supported and two-span continuous beams
  - Combine characteristic loads into design loads
  - Export line charts, layup diagrams, PDF reports and Excel tables
  - Serve sampled series as JSON for a browser front end`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goclt v%-49s║\n", version.Version)
		fmt.Println("  ║   Go CLT Beam Analyzer                                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing and visualizing the structural")
		fmt.Println("  response of cross-laminated-timber beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Deflection, bending moment and shear force diagrams")
		fmt.Println("    • Simply supported and two-span continuous conditions")
		fmt.Println("    • Load combinations for the design UDL")
		fmt.Println("    • Chart, layup diagram, PDF and Excel export")
		fmt.Println("    • JSON API for browser canvas rendering")
		fmt.Println()
		fmt.Println("  Use 'goclt --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
