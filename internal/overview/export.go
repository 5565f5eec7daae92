package overview

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"workhours/internal/platform/apperr"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	CSVContentType  = "text/csv; charset=utf-8"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "xlsx" (also the default for "") and "csv".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX, "":
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", apperr.Invalid("format must be xlsx or csv")
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return CSVContentType
	}
	return XLSXContentType
}

// Export writes s in format f.
func Export(w io.Writer, s Summary, f Format) error {
	if f == FormatCSV {
		return WriteCSV(w, s)
	}
	return WriteXLSX(w, s)
}

var exportHeader = []any{"Datum", "Start", "Einde", "Netto uren", "Locatie", "Notitie"}

// WriteXLSX writes the summary as a single-sheet workbook named after the period.
func WriteXLSX(w io.Writer, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.Label
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	row := 2
	for _, d := range s.Days {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{d.DateString, d.StartTime, d.EndTime, d.NetHours, deref(d.Site), deref(d.Note)}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
	}

	row++
	for _, line := range [][]any{
		{"Totaal", "", "", s.TotalHours},
		{"Norm", "", "", s.TargetHours},
		{"Overuren", "", "", s.OvertimeHours},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet, row, row, bold); err != nil {
			return err
		}
		row++
	}
	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "F", "F", 40); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteCSV writes the summary as semicolon-separated values with decimal
// commas, UTF-8 with a byte order mark so spreadsheet apps pick the encoding.
func WriteCSV(w io.Writer, s Summary) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)
	cw.Comma = ';'

	header := make([]string, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h.(string)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, d := range s.Days {
		if err := cw.Write([]string{d.DateString, d.StartTime, d.EndTime, decimalComma(d.NetHours), deref(d.Site), deref(d.Note)}); err != nil {
			return err
		}
	}
	for _, line := range [][]string{
		{"Totaal", "", "", decimalComma(s.TotalHours), "", ""},
		{"Norm", "", "", decimalComma(s.TargetHours), "", ""},
		{"Overuren", "", "", decimalComma(s.OvertimeHours), "", ""},
	} {
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return tw.Close()
}

func decimalComma(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// FileName is the download name for a summary export.
func FileName(s Summary, f Format) string {
	return fmt.Sprintf("uren-%s.%s", s.Label, f)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
