// Package commands implements the wiscayenne CLI.
package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "wiscayenne",
		Short: "Encode sensor readings into Cayenne LPP frames",
		Long: `wiscayenne encodes GNSS fixes, VOC indices and device ids into compact
Cayenne LPP frames of a fixed size, ready to be sent over LoRa or LoRaWAN.

Use "wiscayenne [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newEncodeCmd(&cfgFile))
	root.AddCommand(newDevidCmd())
	root.AddCommand(newTagsCmd())

	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// Execute runs the CLI until it finishes or the process is interrupted.
// It is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// newLogger creates the console logger used by the commands.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
