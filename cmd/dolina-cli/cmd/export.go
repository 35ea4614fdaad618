package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dolinaroz/landing/internal/export"
	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/rendering"
	"github.com/dolinaroz/landing/internal/storage"
	"github.com/dolinaroz/landing/web"
)

// appFs is the filesystem the export is written to. Tests swap in a MemMapFs.
var appFs = afero.NewOsFs()

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page as a static site",
	Long: `Render the landing page, the legal pages, the mobile menu fragments and
the static assets into a directory that any static host can serve.

The exported form posts straight to the relay endpoint with the configured
access key, so no server is needed.

Examples:
  dolina-cli export                 # writes into ./dist
  dolina-cli export --out public    # writes into ./public`,
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		x := export.New(storage.NewDirStore(appFs, exportOut), rendering.NewUniversalRenderer())
		written, err := x.Export(cmd.Context(), export.Site{
			Meta:      page.NewMetadata(cfg.AppBaseURL),
			Endpoint:  cfg.RelayEndpoint,
			AccessKey: cfg.RelayAccessKey,
			WhatsApp:  page.WhatsAppURL(cfg.WhatsAppNumber),
			Assets:    web.FS,
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, p := range written {
			fmt.Fprintf(out, "  %s\n", p)
		}
		fmt.Fprintf(out, "Exported %d files to %s\n", len(written), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
	rootCmd.AddCommand(exportCmd)
}
