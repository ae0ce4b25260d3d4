package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/bubbly/engine"
)

// ============================================================================
// OUTPUT — Figure as JSON, flat CSV or a text summary
// ============================================================================

func validFormat(format string) bool {
	switch format {
	case "json", "pretty", "csv", "text":
		return true
	}
	return false
}

// withOutput runs write against the --out file, or stdout when path is empty.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("Bubbly: output written", "file", path)
	return nil
}

func writeFigure(w io.Writer, fig *engine.Figure, format string) error {
	switch format {
	case "csv":
		return writeCSV(w, engine.Flatten(fig))
	case "text":
		_, err := fmt.Fprintln(w, engine.Summarize(fig).Reply)
		return err
	default:
		return writeJSON(w, fig, format == "pretty")
	}
}

// ============================================================================
// CSV OUTPUT — one row per bubble, ready for Sheets/Excel
// ============================================================================

func writeCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	var out []byte
	var err error

	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
