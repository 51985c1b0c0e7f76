package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	"github.com/arloliu/segdeque/internal/workload"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// Don't uppercase the header and footer values.
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	return t
}

// writeRunReport prints operation counts and the final layout of a workload run.
func writeRunReport(w io.Writer, rep workload.Report, elapsed time.Duration) error {
	ops := newTable(w)
	ops.AppendHeader(table.Row{"operation", "count"})
	for _, k := range workload.Kinds() {
		ops.AppendRow(table.Row{k.String(), rep.Count(k)})
	}
	ops.AppendFooter(table.Row{"total", rep.Ops})
	ops.Render()

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	layout := newTable(w)
	layout.AppendHeader(table.Row{"metric", "value"})
	layout.AppendRows([]table.Row{
		{"empty pops", rep.EmptyPops},
		{"max length", rep.MaxLen},
		{"final length", rep.Final.Len},
		{"chunk size", rep.Final.ChunkSize},
		{"directory rows", rep.Final.Rows},
		{"rows in use", rep.Final.RowsInUse},
		{"growths", rep.Final.Growths},
		{"fingerprint", formatFingerprint(rep.Fingerprint)},
		{"elapsed", elapsed.Round(time.Microsecond)},
	})
	layout.Render()

	return nil
}

// writeGrowthTable prints one row per directory reallocation.
func writeGrowthTable(w io.Writer, steps []growthStep) error {
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, "no directory growth")
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"push", "rows before", "rows after", "first row", "rows in use", "length"})
	for _, s := range steps {
		t.AppendRow(table.Row{s.Push, s.OldRows, s.NewRows, s.FirstRow, s.InUse, s.Len})
	}
	t.Render()

	return nil
}

func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
