package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// PrintTable writes rows as a boxed table with header as the first row.
func PrintTable(w io.Writer, header []string, rows [][]string) error {
	data := append([][]string{header}, rows...)

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// RenderList lays out rows in aligned columns without a header or border.
func RenderList(rows [][]string) (string, error) {
	str, err := pterm.DefaultTable.
		WithBoxed(false).
		WithSeparator("  ").
		WithData(rows).
		Srender()
	if err != nil {
		return "", err
	}

	// the last column is padded to its widest cell
	lines := strings.Split(str, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	return strings.Join(lines, "\n"), nil
}
