package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the catalog CLT materials",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("CATALOG MATERIALS (1 m strip, C24 lamellae):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tLayers\tDepth (mm)\tEI (kN-m²)\tGA (kN)\n")
		fmt.Fprintf(w, "  ────\t──────\t──────────\t──────────\t───────\n")
		for _, name := range material.PresetNames() {
			m, err := material.Preset(name)
			if err != nil {
				continue
			}
			ei, _ := m.Property(material.KeyEI)
			ga, _ := m.Property(material.KeyGA)
			fmt.Fprintf(w, "  %s\t%d\t%.0f\t%.0f\t%.0f\n",
				m.Name, len(m.Layup), m.Layup.Depth(), ei, ga)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
