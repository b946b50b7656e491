package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/loads"
)

var (
	// Characteristic UDLs (kN/m)
	loadDead float64
	loadLive float64
	loadSnow float64

	loadShowAll bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Combine characteristic loads into a design UDL",
	Long: `Calculate the design uniformly distributed load from characteristic
permanent, imposed and snow loads using the basic load combinations.

The governing ULS value is what you feed to 'goclt analyze --udl'; the
SLS value is the one relevant for deflection limits.

Examples:
  # Dead + live load
  goclt load --dead 3.2 --live 2.5

  # Show every combination
  goclt load --dead 3.2 --live 2.5 --snow 1.0 --all`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Characteristic permanent load G (kN/m)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "q", 0, "Characteristic imposed load Q (kN/m)")
	loadCmd.Flags().Float64VarP(&loadSnow, "snow", "s", 0, "Characteristic snow load S (kN/m)")
	loadCmd.Flags().BoolVarP(&loadShowAll, "all", "a", false, "Show all load combination results")
}

func runLoad(cmd *cobra.Command, args []string) {
	u := loads.UDL{Dead: loadDead, Live: loadLive, Snow: loadSnow}

	if u.Dead == 0 && u.Live == 0 && u.Snow == 0 {
		fmt.Println("Error: Please provide at least one characteristic load.")
		fmt.Println("Use 'goclt load --help' for usage information.")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 DESIGN LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CHARACTERISTIC LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if u.Dead != 0 {
		fmt.Fprintf(w, "  Permanent (G):\t%.2f\n", u.Dead)
	}
	if u.Live != 0 {
		fmt.Fprintf(w, "  Imposed (Q):\t%.2f\n", u.Live)
	}
	if u.Snow != 0 {
		fmt.Fprintf(w, "  Snow (S):\t%.2f\n", u.Snow)
	}
	w.Flush()
	fmt.Println()

	maxLoad, governing := loads.Governing(u, loads.ULSCombinations)

	if loadShowAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tw (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, combo := range loads.ULSCombinations {
			factored := combo.Factored(u)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, factored, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN UDL (ULS) = %.2f kN/m  \n", maxLoad)
	fmt.Printf("  ║  SLS UDL          = %.2f kN/m  \n", loads.SLSCombination.Factored(u))
	fmt.Printf("  ╚════════════════════════════════════════╝\n")
	fmt.Println()
}
