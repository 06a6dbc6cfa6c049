package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var formatName string
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a document without starting the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, doc, err := loadDocument(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeDoc(cmd, app, doc, formatName, width)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "markdown", "Output format ("+strings.Join(formatNames(), "|")+")")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --format terminal")
	return cmd
}
