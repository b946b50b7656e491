package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/export"
)

var (
	exportInput beamInput
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sampled response series to an Excel workbook",
	Long: `Run the analysis and write the sampled deflection, bending moment and
shear force series to an xlsx workbook, one sheet per quantity.

Example:
  goclt export --span 4 --udl 10 --material CLT120-3s --out beam.xlsx`,
	Run: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportInput.addFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "beam.xlsx", "Output xlsx file")
}

func runExport(cmd *cobra.Command, args []string) {
	b, cond, err := exportInput.buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	defl, mom, shear, err := sampleAll(b, exportInput.udl, cond, exportInput.step)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sheets := []export.Sheet{
		{Name: "Deflection", Pair: defl},
		{Name: "Bending Moment", Pair: mom},
		{Name: "Shear Force", Pair: shear},
	}
	if err := export.WriteWorkbook(exportOut, sheets); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", exportOut)
}
