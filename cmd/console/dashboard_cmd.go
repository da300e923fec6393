package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iota-uz/pharma-admin/pkg/crud"
)

func newDashboardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the headline numbers of every screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(s.out)
			fmt.Fprintln(tw, "Screen\tTotal\tDetails")
			failed := 0
			for _, screen := range s.app.Screens() {
				sum, err := screen.Summary(cmd.Context(), crud.ListOptions{})
				if err != nil {
					failed++
					fmt.Fprintf(tw, "%s\t-\tunavailable\n", screen.Title())
					continue
				}
				total, details := "0", ""
				for i, st := range sum.Stats {
					if i == 0 {
						total = st.Value
						continue
					}
					if details != "" {
						details += ", "
					}
					details += st.Label + " " + st.Value
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", screen.Title(), total, details)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed == len(s.app.Screens()) && failed > 0 {
				return withCode(exitAPI, fmt.Errorf("no screen could be loaded"))
			}
			return nil
		},
	}
}
