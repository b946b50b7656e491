package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/diagram"
	"github.com/cltlab/goclt/internal/series"
)

var (
	diagramInput  beamInput
	diagramOutDir string
	diagramFormat string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Export response diagrams as image files",
	Long: `Export the deflection, bending moment and shear force diagrams of a
beam as line-chart images (png, svg or pdf).

Examples:
  goclt diagram --span 4 --udl 10 --material CLT120-3s --out diagrams
  goclt diagram -c two-span-unequal -l 3 --span2 2 -w 5 --ei 1200 --format svg`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramInput.addFlags(diagramCmd)
	diagramCmd.Flags().StringVarP(&diagramOutDir, "out", "o", ".", "Output directory")
	diagramCmd.Flags().StringVarP(&diagramFormat, "format", "f", "png", "Image format: png, svg or pdf")
}

func runDiagram(cmd *cobra.Command, args []string) {
	b, cond, err := diagramInput.buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	defl, mom, shear, err := sampleAll(b, diagramInput.udl, cond, diagramInput.step)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	supports := supportPositions(b, cond)
	charts := []struct {
		name  string
		title string
		pair  series.Pair
	}{
		{"deflection", "Deflection", defl},
		{"bending-moment", "Bending Moment", mom},
		{"shear-force", "Shear Force", shear},
	}

	for _, c := range charts {
		filename := filepath.Join(diagramOutDir, c.name+"."+diagramFormat)
		if err := diagram.ExportResponseChart(c.pair, c.title, supports, filename); err != nil {
			fmt.Printf("Error exporting %s: %v\n", c.name, err)
			return
		}
		fmt.Printf("Wrote %s\n", filename)
	}
}
