package main

import (
	"fmt"
	"io"
	"unicode/utf8"
)

func printTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range append(rows, footers) {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	printRow := func(cells []string) {
		for i, cell := range cells {
			fmt.Fprintf(w, "%-*s  ", colWidths[i], cell)
		}
		fmt.Fprintln(w)
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
	if len(footers) > 0 {
		printRow(footers)
	}
}
