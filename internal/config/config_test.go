package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate(), "defaults must be valid")
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, 20, cfg.UI.Margin)
	assert.Equal(t, "en", cfg.UI.Locale)
}

func TestInitAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		require.NoError(t, Init(v, ""))
		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, 25, cfg.Data.PageSize)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DATATABLE_SERVER_PORT", "9090")
		t.Setenv("DATATABLE_UI_LOCALE", "de")
		t.Setenv("DATATABLE_SERVER_SHUTDOWN_TIMEOUT", "3s")
		v := viper.New()
		require.NoError(t, Init(v, ""))
		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "de", cfg.UI.Locale)
		assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("config file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "datatable.yaml")
		yaml := "data:\n  payload_file: /data/explorer.json\n  page_size: 10\nlogging:\n  format: json\n"
		require.NoError(t, os.WriteFile(file, []byte(yaml), 0o600))

		v := viper.New()
		require.NoError(t, Init(v, file))
		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, "/data/explorer.json", cfg.Data.PayloadFile)
		assert.Equal(t, 10, cfg.Data.PageSize)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		v := viper.New()
		require.Error(t, Init(v, filepath.Join(t.TempDir(), "missing.yaml")))
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("DATATABLE_SERVER_PORT", "0")
		t.Setenv("DATATABLE_LOGGING_LEVEL", "verbose")
		v := viper.New()
		require.NoError(t, Init(v, ""))
		_, err := Load(v)
		require.Error(t, err)
		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 2)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 70000
	cfg.Server.ShutdownTimeout = 0
	cfg.Data.PayloadFile = ""
	cfg.Data.PageSize = -1
	cfg.UI.Locale = "fr"
	cfg.UI.Margin = -5
	cfg.Logging.Format = "xml"

	errs := cfg.Validate()
	fields := make([]string, len(errs))
	for i, err := range errs {
		fields[i] = err.Field
	}
	assert.Equal(t, []string{
		"server.port",
		"server.shutdown_timeout",
		"data.payload_file",
		"data.page_size",
		"ui.locale",
		"ui.margin",
		"logging.format",
	}, fields, "all failures are reported")
}

func TestValidationErrors_Error(t *testing.T) {
	var empty ValidationErrors
	assert.Equal(t, "", empty.Error())

	single := ValidationErrors{{Field: "server.port", Value: 0, Message: "must be between 1 and 65535"}}
	assert.Equal(t, "server.port: must be between 1 and 65535 (got: 0)", single.Error())

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	msg := multi.Error()
	assert.True(t, strings.HasPrefix(msg, "2 validation errors:\n"))
	assert.Contains(t, msg, "  1. a: bad (got: 1)\n")
	assert.Contains(t, msg, "  2. b: worse (got: 2)\n")
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "datatable"), ConfigDir())
}
