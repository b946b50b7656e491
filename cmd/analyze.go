package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/diagram"
	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

var (
	analyzeInput  beamInput
	analyzeCharts bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a beam and print response extremes",
	Long: `Compute deflection, bending moment and shear force for a beam under
uniformly distributed load and print the response extremes, support
reactions and terminal charts.

Conditions:
  simply-supported   - single span, both ends free to rotate
  two-span-unequal   - continuous over three supports, unequal spans

Examples:
  # 4 m simply supported span of CLT120-3s under 10 kN/m
  goclt analyze --span 4 --udl 10 --material CLT120-3s

  # Two-span continuous beam with explicit stiffness
  goclt analyze -c two-span-unequal -l 3 --span2 2 -w 5 --ei 1200`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeInput.addFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeCharts, "charts", true, "Render terminal charts")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	b, cond, err := analyzeInput.buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	defl, mom, shear, err := sampleAll(b, analyzeInput.udl, cond, analyzeInput.step)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                     BEAM ANALYSIS - goclt")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Condition:\t%s\n", cond)
	fmt.Fprintf(w, "  Primary span (L1):\t%.2f m\n", b.PrimarySpan)
	if cond == beam.TwoSpanUnequal {
		fmt.Fprintf(w, "  Secondary span (L2):\t%.2f m\n", b.SecondarySpan)
	}
	fmt.Fprintf(w, "  UDL (w):\t%.2f kN/m\n", analyzeInput.udl)
	fmt.Fprintf(w, "  Material:\t%s\n", b.Material.Name)
	if ei, ok := b.Material.Property(material.KeyEI); ok {
		fmt.Fprintf(w, "  EI:\t%.1f kN-m²\n", ei)
	}
	if ga, ok := b.Material.Property(material.KeyGA); ok {
		fmt.Fprintf(w, "  GA:\t%.1f kN\n", ga)
	}
	w.Flush()
	fmt.Println()

	if cond == beam.TwoSpanUnequal {
		r, rerr := beam.TwoSpanReactions(b, analyzeInput.udl)
		if rerr == nil {
			fmt.Println("SUPPORT REACTIONS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  R1 (left end):\t%.3f kN\n", r.R1)
			fmt.Fprintf(w, "  R2 (interior):\t%.3f kN\n", r.R2)
			fmt.Fprintf(w, "  R3 (right end):\t%.3f kN\n", r.R3)
			fmt.Fprintf(w, "  M1 (interior support):\t%.3f kN-m\n", r.M1)
			w.Flush()
			fmt.Println()
		}
	}

	fmt.Println("RESPONSE EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printExtremes(w, "Deflection", "mm", defl)
	printExtremes(w, "Bending moment", "kN-m", mom)
	printExtremes(w, "Shear force", "kN", shear)
	w.Flush()
	fmt.Println()

	if analyzeCharts {
		fmt.Println(diagram.RenderResponseChart(defl, "Deflection (mm)", 10))
		fmt.Println()
		fmt.Println(diagram.RenderResponseChart(mom, "Bending Moment (kNm)", 10))
		fmt.Println()
		fmt.Println(diagram.RenderResponseChart(shear, "Shear Force (kN)", 10))
		fmt.Println()
	}

	min, max := defl.Extremes()
	summary := []string{
		fmt.Sprintf("Max deflection   %.3f mm at x = %.2f m", maxAbs(min, max).Y, maxAbs(min, max).X),
	}
	mmin, mmax := mom.Extremes()
	summary = append(summary,
		fmt.Sprintf("Max sagging M    %.3f kN-m at x = %.2f m", mmax.Y, mmax.X))
	if cond == beam.TwoSpanUnequal {
		summary = append(summary,
			fmt.Sprintf("Max hogging M    %.3f kN-m at x = %.2f m", mmin.Y, mmin.X))
	}
	smin, smax := shear.Extremes()
	summary = append(summary,
		fmt.Sprintf("Max shear        %.3f kN at x = %.2f m", maxAbs(smin, smax).Y, maxAbs(smin, smax).X))

	fmt.Println(diagram.DrawSummaryBox("GOVERNING VALUES", summary))
}

func printExtremes(w *tabwriter.Writer, label, unit string, pair series.Pair) {
	min, max := pair.Extremes()
	fmt.Fprintf(w, "  %s:\tmax %.3f %s at x=%.2f m\tmin %.3f %s at x=%.2f m\n",
		label, max.Y, unit, max.X, min.Y, unit, min.X)
}

func maxAbs(min, max series.Extreme) series.Extreme {
	if -min.Y > max.Y {
		return min
	}
	return max
}
