package main

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

func newScreenCmd(s *session, screen crud.Screen) *cobra.Command {
	cmd := &cobra.Command{
		Use:   screen.Name(),
		Short: fmt.Sprintf("Manage %s (%s)", strings.ToLower(screen.Title()), screen.Route()),
	}
	cmd.AddCommand(
		newListCmd(s, screen),
		newShowCmd(s, screen),
		newDeleteCmd(s, screen),
		newSummaryCmd(s, screen),
	)
	if screen.HasForm() {
		cmd.AddCommand(newCreateCmd(s, screen), newEditCmd(s, screen), newFieldsCmd(s, screen))
	}
	if choices := screen.StatusChoices(); len(choices) > 0 {
		cmd.AddCommand(newStatusCmd(s, screen))
		if slices.Equal(choices, crud.BoolStatuses) {
			cmd.AddCommand(newPublishCmd(s, screen, "publish", "published"), newPublishCmd(s, screen, "unpublish", "unpublished"))
		}
	}
	return cmd
}

func addListFlags(cmd *cobra.Command, opts *crud.ListOptions) {
	cmd.Flags().StringVar(&opts.Search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category filter")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page number")
}

func newListCmd(s *session, screen crud.Screen) *cobra.Command {
	var (
		opts       crud.ListOptions
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Page < 1 {
				return withCode(exitUsage, fmt.Errorf("--page must be 1 or more"))
			}
			if exportPath != "" {
				if err := screen.Export(cmd.Context(), opts, exportPath); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "exported %s to %s\n", strings.ToLower(screen.Title()), exportPath)
				return nil
			}
			listing, err := screen.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writeListing(s.out, listing)
		},
	}
	addListFlags(cmd, &opts)
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the rows to a .xlsx or .csv file instead")
	return cmd
}

func newShowCmd(s *session, screen crud.Screen) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := screen.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(s.out, rec)
		},
	}
}

func formInput(screen crud.Screen, sets, files []string) (url.Values, map[string][]upload.File, error) {
	values, err := parseSet(sets)
	if err != nil {
		return nil, nil, err
	}
	keys := screen.FormKeys()
	for key := range values {
		top := key
		if i := strings.IndexAny(key, "[."); i >= 0 {
			top = key[:i]
		}
		if !slices.Contains(keys, top) {
			return nil, nil, withCode(exitUsage, fmt.Errorf("unknown field %q: choose from %s", key, strings.Join(keys, ", ")))
		}
	}
	uploads, err := parseFiles(files)
	if err != nil {
		return nil, nil, err
	}
	for field := range uploads {
		if !slices.ContainsFunc(screen.FileFields(), func(f upload.FieldSpec) bool { return f.Field == field }) {
			return nil, nil, withCode(exitUsage, fmt.Errorf("%s has no file field %q", screen.Title(), field))
		}
	}
	return values, uploads, nil
}

func newCreateCmd(s *session, screen crud.Screen) *cobra.Command {
	var sets, files []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, uploads, err := formInput(screen, sets, files)
			if err != nil {
				return err
			}
			id, err := screen.Create(cmd.Context(), values, uploads)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field value as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&files, "file", nil, "File to upload as field=path (repeatable)")
	return cmd
}

func newEditCmd(s *session, screen crud.Screen) *cobra.Command {
	var sets, files, removes, clears []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a record; unset fields keep their values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, uploads, err := formInput(screen, sets, files)
			if err != nil {
				return err
			}
			refs, err := parseRowRefs(removes)
			if err != nil {
				return err
			}
			keys := screen.FormKeys()
			rowKeys := slices.Clone(clears)
			for _, r := range refs {
				rowKeys = append(rowKeys, r.Key)
			}
			for _, key := range rowKeys {
				if !slices.Contains(keys, key) {
					return withCode(exitUsage, fmt.Errorf("unknown field %q: choose from %s", key, strings.Join(keys, ", ")))
				}
			}
			res, err := screen.Edit(cmd.Context(), args[0], crud.EditInput{
				Values: values,
				Files:  uploads,
				Remove: refs,
				Clear:  clears,
			})
			if err != nil {
				return err
			}
			return writeEdit(s.out, res)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field value as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&files, "file", nil, "File to upload as field=path (repeatable)")
	cmd.Flags().StringArrayVar(&removes, "remove", nil, "Row to remove as field[index], counted as loaded (repeatable)")
	cmd.Flags().StringArrayVar(&clears, "clear", nil, "Repeated field to empty (repeatable)")
	return cmd
}

func newFieldsCmd(s *session, screen crud.Screen) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the keys accepted by --set and --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(s.out)
			for _, k := range screen.FormKeys() {
				fmt.Fprintf(tw, "%s\tvalue\n", k)
			}
			for _, f := range screen.FileFields() {
				accept := "any"
				if len(f.Accept) > 0 {
					accept = strings.Join(f.Accept, ", ")
				}
				fmt.Fprintf(tw, "%s\tfile (%s, max %s)\n", f.Field, accept, upload.HumanSize(f.MaxSize))
			}
			return tw.Flush()
		},
	}
}

func newDeleteCmd(s *session, screen crud.Screen) *cobra.Command {
	var opts crud.ListOptions
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record after two confirmations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return screen.Delete(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page the record is listed on")
	return cmd
}

func newStatusCmd(s *session, screen crud.Screen) *cobra.Command {
	var opts crud.ListOptions
	cmd := &cobra.Command{
		Use:   "status <id> <value>",
		Short: "Set the status of a record (" + strings.Join(screen.StatusChoices(), ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return screen.SetStatus(cmd.Context(), args[0], args[1], opts)
		},
	}
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page the record is listed on")
	return cmd
}

func newPublishCmd(s *session, screen crud.Screen, use, status string) *cobra.Command {
	var opts crud.ListOptions
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: "Mark a record " + status,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return screen.SetStatus(cmd.Context(), args[0], status, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page the record is listed on")
	return cmd
}

func newSummaryCmd(s *session, screen crud.Screen) *cobra.Command {
	var opts crud.ListOptions
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print counts and chart series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := screen.Summary(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writeSummary(s.out, screen.Title(), sum)
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}
