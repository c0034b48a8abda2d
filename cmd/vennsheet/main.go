// Package main provides the CLI entry point for vennsheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/vennsheet/internal/config"
	"github.com/ukaji3/vennsheet/internal/logging"
)

// app holds flag values and the state shared by every command.
type app struct {
	configPath  string
	verbose     bool
	logJSON     bool
	colorA      string
	colorB      string
	alpha       float64
	labelHeight float64

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "vennsheet",
		Short: "Compare two columns per worksheet as a Venn diagram",
		Long: `vennsheet reads an Excel workbook, compares the first two columns of every
worksheet as sets, and writes a Venn diagram PNG and a result CSV per worksheet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultFileName, "Config file path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&a.colorA, "color-a", "", "Fill color of the left circle (hex)")
	flags.StringVar(&a.colorB, "color-b", "", "Fill color of the right circle (hex)")
	flags.Float64Var(&a.alpha, "alpha", 0, "Fill transparency in [0, 1]")
	flags.Float64Var(&a.labelHeight, "label-height", 0, "Label height as a factor of the radius, in [0.9, 1.6]")

	rootCmd.AddCommand(
		newSheetsCmd(a),
		newPreviewCmd(a),
		newExportCmd(a),
		newBatchCmd(a),
	)
	return rootCmd
}

// init loads the config, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("config") {
		if _, err := os.Stat(a.configPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", a.configPath)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if flags.Changed("color-a") {
		cfg.Style.ColorA = a.colorA
	}
	if flags.Changed("color-b") {
		cfg.Style.ColorB = a.colorB
	}
	if flags.Changed("alpha") {
		cfg.Style.Alpha = a.alpha
	}
	if flags.Changed("label-height") {
		cfg.Style.LabelHeight = a.labelHeight
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logJSON {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Any("style", cfg.Style),
		zap.String("output_dir", cfg.Output.DirName))
	return nil
}
