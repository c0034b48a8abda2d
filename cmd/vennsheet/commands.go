package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/vennsheet/pkg/vennsheet"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/export"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/session"
)

// selection picks the worksheet and its labels.
type selection struct {
	sheet  string
	labelA string
	labelB string
}

func (s *selection) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.sheet, "sheet", "", "Worksheet name or 1-based index (default: first)")
	cmd.Flags().StringVar(&s.labelA, "label-a", "", "Label for the first column (default: its header)")
	cmd.Flags().StringVar(&s.labelB, "label-b", "", "Label for the second column (default: its header)")
}

// open loads the workbook into a new session and applies the selection.
func (a *app) open(path string, sel selection) (*session.Session, error) {
	sess := session.New(models.DefaultStyle())
	if err := sess.SetStyle(a.cfg.Style); err != nil {
		return nil, err
	}
	if err := vennsheet.Load(sess, path); err != nil {
		return nil, err
	}
	a.logger.Debug("workbook loaded", zap.String("path", path), zap.Int("sheets", sess.Len()))

	if sel.sheet != "" && !sess.SelectName(sel.sheet) {
		i, err := strconv.Atoi(sel.sheet)
		if err != nil || !sess.Select(i-1) {
			return nil, fmt.Errorf("no comparable worksheet %q", sel.sheet)
		}
	}
	if sel.labelA != "" || sel.labelB != "" {
		sess.SetLabels(sel.labelA, sel.labelB)
	}
	return sess, nil
}

func (a *app) exporter() *export.Exporter {
	return a.cfg.Options().NewExporter(a.logger)
}

func newSheetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <workbook>",
		Short: "List worksheets and whether they can be compared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := vennsheet.Open(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSheets(wb))
			return nil
		},
	}
}

func newPreviewCmd(a *app) *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:   "preview <workbook>",
		Short: "Print counts and item lists for one worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.open(args[0], sel)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPreview(sess))
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:   "export <workbook>",
		Short: "Write the diagram and result table for one worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.open(args[0], sel)
			if err != nil {
				return err
			}
			report, err := a.exporter().ExportCurrent(sess)
			if report != nil {
				fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
			}
			return err
		},
	}
	sel.register(cmd)
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		sel        selection
		combined   bool
		noCombined bool
	)
	cmd := &cobra.Command{
		Use:   "batch <workbook>",
		Short: "Write diagrams and result tables for every worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.open(args[0], sel)
			if err != nil {
				return err
			}

			opts := a.cfg.Options()
			writeCombined := opts.ShouldWriteCombined()
			if cmd.Flags().Changed("combined") {
				writeCombined = combined
			}
			if noCombined {
				writeCombined = false
			}

			report, err := a.exporter().ExportAll(sess, writeCombined)
			if report != nil {
				fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
			}
			return err
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolVar(&combined, "combined", true, "Also write every result table into one workbook")
	cmd.Flags().BoolVar(&noCombined, "no-combined", false, "Skip the combined workbook")
	return cmd
}
