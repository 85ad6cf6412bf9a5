package cmd

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/internal/logging"
	"github.com/domonda/go-datatable/termtable"
)

func newTUICommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the explorer table in the terminal",
		Long: `Browse the explorer table in the terminal.

Keys:
  up/down    select row
  enter      row details
  b          details button
  n/p        next/previous page
  home/end   first/last page
  t          toggle light/dark theme
  q          quit

The log is written to logging.file because the
terminal belongs to the table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), v)
		},
	}
}

func runTUI(ctx context.Context, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	logWriter, err := openLogWriter(fs.File(cfg.Logging.File))
	if err != nil {
		return err
	}
	defer logWriter.Close()
	logging.SetupWriter(logWriter, cfg.Logging.Level, cfg.Logging.Format)

	service := newService(ctx, cfg)
	model := termtable.New(ctx, termtable.Options{
		Source: termtable.SourceFunc(func(page int) *datatable.Table {
			return service.Page(ctx, page, 0)
		}),
		Store:    service.Store(),
		Messages: service.Messages(),
		Margin:   cfg.UI.TerminalMargin,
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// openLogWriter opens logFile for appending
// or discards the log if logFile is empty.
func openLogWriter(logFile fs.File) (io.WriteCloser, error) {
	if logFile == "" {
		return nopWriteCloser{io.Discard}, nil
	}
	return logFile.OpenAppendWriter(fs.UserReadWrite)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
