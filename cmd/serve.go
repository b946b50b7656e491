package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Start the JSON API used by the browser front end.

Endpoints:
  POST /api/analyze    - sampled response series for a beam
  GET  /api/materials  - catalog materials with layups

The listen address comes from --addr, the GOCLT_ADDR environment
variable or a .env file, in that order.

Example:
  goclt serve --addr :9000`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides GOCLT_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.LoadConfig()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if err := server.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
