// Package runtime provides application runtime context for fitjournal.
package runtime

import (
	"io"
	"os"

	"github.com/fitjournal/fitjournal/internal/config"
	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/logging"
	"github.com/fitjournal/fitjournal/internal/output"
	"github.com/fitjournal/fitjournal/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Formatter *output.Formatter
	History   storage.History

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// Config supplies store selection; nil uses config.Global.
	Config    *config.RuntimeConfig
	Writer    io.Writer
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Config:    config.Global,
		Writer:    os.Stdout,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context and opens the configured history store.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Global
	}

	if opts.Debug {
		logging.InitDebug()
	}

	history, err := storage.OpenHistory(storage.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	logging.DebugLog("history opened", logging.KeyStore, cfg.History.Store, logging.KeyPath, history.Name())

	formatter := output.NewFormatter()
	if opts.Writer != nil {
		formatter.Writer = opts.Writer
	}
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    cfg,
		Formatter: formatter,
		History:   history,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.History != nil {
		return c.History.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// FormatError formats an error with its suggestion, if any.
func FormatError(err error) string {
	return errors.FormatByCategory(err)
}
