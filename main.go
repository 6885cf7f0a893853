package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nconklindev/menuconv/internal/config"
	"github.com/nconklindev/menuconv/internal/converter"
	"github.com/nconklindev/menuconv/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "menuconv",
	Short: "Convert the restaurant menu workbook to JSON",
	Long: `menuconv reads ./input/Restaurant Menu Nutrients.xlsx and writes one JSON
record per menu item to ./output/results.json. Each sheet is a cuisine type;
ingredients and nutrient flags are parsed from the sheet columns.

Paths can be overridden with a menuconv.yaml file in the working directory.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(os.Stderr)
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("menuconv %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
}

// setup loads the config and builds the logger. console may be nil to log to the file only.
func setup(console io.Writer) (*config.Config, *zap.Logger, func() error, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, nil, err
	}

	log, closeLog, err := logger.New(logger.Options{
		File:    cfg.Logging.Path,
		Level:   cfg.Logging.Level,
		Console: console,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, closeLog, nil
}

func newConverter(cfg *config.Config, log *zap.Logger) *converter.Converter {
	return converter.New(converter.Options{
		InputFile:  cfg.Input.Path,
		OutputFile: cfg.Output.Path,
		Indent:     cfg.Output.Indent,
	}, log)
}

func runConversion(console io.Writer) error {
	cfg, log, closeLog, err := setup(console)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := newConverter(cfg, log).Run(nil); err != nil {
		return loggedError{err}
	}
	return nil
}

// loggedError marks an error the converter has already written to the log.
type loggedError struct {
	error
}

func (e loggedError) Unwrap() error {
	return e.error
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
