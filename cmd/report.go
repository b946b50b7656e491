package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/report"
)

var (
	reportInput    beamInput
	reportProject  string
	reportEngineer string
	reportOut      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report",
	Long: `Run the analysis and write a one-page PDF calculation note with the
input data, support reactions and response extremes.

Example:
  goclt report --span 4 --udl 10 --material CLT120-3s \
    --project "Roof beam B1" --engineer "J. Smith" --out beam-b1.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportInput.addFlags(reportCmd)
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportEngineer, "engineer", "", "Engineer name")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.pdf", "Output PDF file")
}

func runReport(cmd *cobra.Command, args []string) {
	b, cond, err := reportInput.buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	defl, mom, shear, err := sampleAll(b, reportInput.udl, cond, reportInput.step)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	data := report.Data{
		Project:    reportProject,
		Engineer:   reportEngineer,
		Beam:       b,
		Load:       reportInput.udl,
		Condition:  cond,
		Deflection: defl,
		Moment:     mom,
		Shear:      shear,
	}
	if cond == beam.TwoSpanUnequal {
		if r, rerr := beam.TwoSpanReactions(b, reportInput.udl); rerr == nil {
			data.Reactions = &r
		}
	}

	if err := report.WriteFile(reportOut, data); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", reportOut)
}
