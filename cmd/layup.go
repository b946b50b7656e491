package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/diagram"
	"github.com/cltlab/goclt/internal/material"
)

var (
	layupMaterial string
	layupOut      string
)

var layupCmd = &cobra.Command{
	Use:   "layup",
	Short: "Draw the layer diagram of a CLT material",
	Long: `Draw the cross-laminated layer stack of a catalog material, either as
a terminal drawing or exported to an image file.

Examples:
  goclt layup --material CLT150-5s
  goclt layup --material CLT150-5s --out layup.png`,
	Run: runLayup,
}

func init() {
	rootCmd.AddCommand(layupCmd)
	layupCmd.Flags().StringVarP(&layupMaterial, "material", "m", "", "Material preset name [required]")
	layupCmd.Flags().StringVarP(&layupOut, "out", "o", "", "Image file to export (png, svg or pdf); terminal drawing when omitted")
	layupCmd.MarkFlagRequired("material")
}

func runLayup(cmd *cobra.Command, args []string) {
	m, err := material.Preset(layupMaterial)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if layupOut == "" {
		fmt.Println(diagram.DrawLayupASCII(m))
		return
	}

	if err := diagram.ExportLayupDiagram(m, layupOut); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", layupOut)
}
