// Package export writes list view-models to XLSX or CSV. Columns come from
// the `csv` struct tags of the view-model.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Table is a rectangular export: one header row and the data rows.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// TableOf lays rows out by their csv tags. Fields tagged "-" or without a
// tag are skipped.
func TableOf[T any](sheet string, rows []T) Table {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var (
		headers []string
		index   []int
	)
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("csv"), ",")
			if !f.IsExported() || name == "" || name == "-" {
				continue
			}
			headers = append(headers, name)
			index = append(index, i)
		}
	}
	table := Table{Sheet: sheet, Headers: headers, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		v := reflect.ValueOf(r)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				break
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			continue
		}
		cells := make([]any, len(index))
		for c, i := range index {
			cells[c] = cellValue(v.Field(i))
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func cellValue(v reflect.Value) any {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return "Yes"
		}
		return "No"
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	default:
		return v.Interface()
	}
}

// XLSX writes t as a workbook with a bold, frozen header row.
func XLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		index, err := f.NewSheet(sheet)
		if err != nil {
			return errors.Wrap(err, "create sheet")
		}
		f.SetActiveSheet(index)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return errors.Wrap(err, "drop default sheet")
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	for col, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrapf(err, "set header %s", cell)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return errors.Wrap(err, "style header")
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(max(12, len(h)+4))); err != nil {
			return errors.Wrap(err, "set column width")
		}
	}
	for r, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write row %d", r+2)
		}
	}
	if len(t.Headers) > 0 {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return errors.Wrap(err, "freeze header")
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

// CSV writes rows with gocsv; the header row comes from the csv tags.
func CSV[T any](w io.Writer, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return nil
}

// WriteFile picks the format from the file extension (.xlsx or .csv).
func WriteFile[T any](path, sheet string, rows []T) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".csv" {
		return fmt.Errorf("unsupported export format %q: use .xlsx or .csv", ext)
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	if ext == ".csv" {
		err = CSV(out, rows)
	} else {
		err = XLSX(out, TableOf(sheet, rows))
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
