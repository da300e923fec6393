package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFindCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-find a screen by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")
			links := s.app.QuickLinks().Find(q)
			if len(links) == 0 {
				return withCode(exitUsage, fmt.Errorf("no screen matches %q", q))
			}
			tw := newTable(s.out)
			for _, l := range links {
				fmt.Fprintf(tw, "%s\t%s\tconsole %s\n", l.Label, l.Link, l.Command)
			}
			return tw.Flush()
		},
	}
}
