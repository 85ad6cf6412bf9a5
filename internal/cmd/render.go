package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/appstate"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/htmltable"
	"github.com/domonda/go-datatable/internal/logging"
)

// RenderFormats lists the output formats of the render command.
var RenderFormats = []string{"html", "text", "csv"}

type renderOptions struct {
	format    string
	page      int
	separator string
	encoding  string
}

func newRenderCommand(v *viper.Viper) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page of the explorer table",
		Long: `Render one page of the explorer table to stdout.

Formats:
  html   table markup as served by the serve command
  text   columns padded with spaces
  csv    header row and one line per record without
         the action and button columns

Examples:
  datatable render --format text --page 2
  datatable render --format csv --separator , --encoding "Windows 1252" > page.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			// stdout receives the rendered table
			logging.SetupWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

			service := newService(cmd.Context(), cfg)
			if msg := service.Store().State().ErrorMessageOr(""); msg != "" {
				return fmt.Errorf("loading explorer data: %s", msg)
			}
			table := service.Page(cmd.Context(), opts.page, 0)
			return renderTable(cmd.Context(), cmd.OutOrStdout(), table, opts, service.Messages().Locale())
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: html, text or csv")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number, clamped to the available pages")
	cmd.Flags().StringVar(&opts.separator, "separator", ";", "csv field separator")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "UTF-8", "csv character encoding")
	return cmd
}

func renderTable(ctx context.Context, w io.Writer, table *datatable.Table, opts renderOptions, locale string) error {
	switch opts.format {
	case "html":
		return htmltable.NewWriter().
			WithTableClass("datatable").
			WithLocale(locale).
			WithColumnFormatter(appstate.KeyIcon, htmltable.ImageCellFormatter).
			Write(ctx, w, table)

	case "text":
		return datatable.WriteText(ctx, w, datatable.TableView{Table: table}, true)

	case "csv":
		format := csvtable.NewFormat(opts.separator)
		format.Encoding = opts.encoding
		format.Newline = "\n"
		writer, err := csvtable.NewWriter().WithHeaderRow(true).WithFormat(format)
		if err != nil {
			return err
		}
		// Buttons and action menus have no meaning outside the table
		return writer.Write(ctx, w, datatable.ValueColumns(table))
	}
	return fmt.Errorf("unsupported render format %q, expected one of %v", opts.format, RenderFormats)
}
