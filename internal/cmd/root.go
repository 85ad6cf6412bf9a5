// Package cmd implements the datatable command line interface.
package cmd

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable/appstate"
	"github.com/domonda/go-datatable/internal/config"
	"github.com/domonda/go-datatable/internal/explorer"
)

// NewRootCommand returns the datatable root command
// with all sub-commands reading their configuration from v.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datatable",
		Short: "Explore paginated tabular data in the browser or terminal",
		Long: `Datatable presents the explorer dataset as paginated table
with tooltips, action buttons and a persisted light/dark theme.

Serve it as HTML, browse it in the terminal or render a page
as HTML, plain text or CSV.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/datatable/config.yaml)")
	rootCmd.PersistentFlags().String("payload", "", "explorer payload JSON file (overrides data.payload_file)")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("data.payload_file", rootCmd.PersistentFlags().Lookup("payload"))

	rootCmd.AddCommand(
		newServeCommand(v),
		newTUICommand(v),
		newRenderCommand(v),
	)
	return rootCmd
}

// Execute runs the root command using the global viper instance.
func Execute() error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}
	return NewRootCommand(viper.GetViper()).Execute()
}

// loadConfig reads defaults, the config file and the environment into v.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	if err := config.Init(v, v.GetString("config")); err != nil {
		return nil, err
	}
	return config.Load(v)
}

// newService creates the state store with the persisted theme
// and loads the explorer payload. A failed load is kept as
// error message in the state and not returned.
func newService(ctx context.Context, cfg *config.Config) *explorer.Service {
	store := appstate.NewStore(ctx,
		appstate.WithThemeStorage(appstate.NewFileThemeStorage(cfg.Theme.StorageDir)),
	)
	source := explorer.FilePayload{File: fs.File(cfg.Data.PayloadFile)}
	service := explorer.NewService(store, source, cfg.Data.PageSize, cfg.UI.Locale)
	_ = service.Load(ctx)
	return service
}
