package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/iota-uz/pharma-admin/pkg/crud"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func writeListing(out io.Writer, l crud.Listing) error {
	tw := newTable(out)
	fmt.Fprintln(tw, strings.Join(l.Headers, "\t"))
	for _, row := range l.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fmt.Sprint(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	footer := fmt.Sprintf("%s: %d item(s)", l.Title, l.TotalItems)
	if l.PageCount > 1 {
		footer += fmt.Sprintf(", page %d of %d", l.Page, l.PageCount)
	}
	if len(l.Categories) > 0 {
		footer += "; categories: " + strings.Join(l.Categories, ", ")
	}
	_, err := fmt.Fprintln(out, footer)
	return err
}

func writeSummary(out io.Writer, title string, s crud.Summary) error {
	fmt.Fprintln(out, title)
	tw := newTable(out)
	for _, st := range s.Stats {
		fmt.Fprintf(tw, "  %s\t%s\n", st.Label, st.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, series := range s.Series {
		fmt.Fprintf(out, "  %s\n", series.Name)
		tw = newTable(out)
		for _, p := range series.Points {
			fmt.Fprintf(tw, "    %s\t%s\n", p.Label, p.Value.String())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// writeEdit lists the assets the record kept and the fields the edit
// changed.
func writeEdit(out io.Writer, res crud.EditResult) error {
	tw := newTable(out)
	for _, field := range slices.Sorted(maps.Keys(res.Previews)) {
		fmt.Fprintf(tw, "%s\t%s\n", field, res.Previews[field])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !res.Submitted {
		_, err := fmt.Fprintln(out, "no changes")
		return err
	}
	for _, c := range res.Changes {
		fmt.Fprintf(out, "changed: %s\n", c)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
