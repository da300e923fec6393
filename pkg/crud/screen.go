package crud

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/iota-uz/pharma-admin/pkg/export"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

var (
	ErrInvalidStatus = serrors.NewError("INVALID_STATUS", "invalid status value", "")
	ErrNoForm        = serrors.NewError("NO_FORM", "this screen has no form", "")
)

type ListOptions struct {
	Page     int
	Search   string
	Category string
}

// Listing is one rendered page of a list screen.
type Listing struct {
	Title      string
	Headers    []string
	Rows       [][]any
	Page       int
	PageCount  int
	TotalItems int
	HasPrev    bool
	HasNext    bool
	Categories []string
}

type Stat struct {
	Label string
	Value string
}

type Series struct {
	Name   string
	Points []Point
}

// RowRef addresses one row of a repeated field, e.g. villages[1].
type RowRef struct {
	Key   string
	Index int
}

// EditInput is a change to a loaded record. Row removals and clears apply
// first, against the rows as loaded; values and files apply after.
type EditInput struct {
	Values url.Values
	Files  map[string][]upload.File
	Remove []RowRef
	Clear  []string
}

// EditResult reports what an edit changed. Changes holds one "op /path"
// entry per JSON difference from the loaded record; Previews holds the URLs
// of the assets the record already had.
type EditResult struct {
	Changes   []string
	Previews  map[string]string
	Submitted bool
}

// Summary holds the dashboard cards and chart series of a screen.
type Summary struct {
	Stats  []Stat
	Series []Series
}

// Screen is the type-erased face of a list/form pair, as driven by the
// console.
type Screen interface {
	Name() string
	Title() string
	Route() string
	HasForm() bool
	FormKeys() []string
	FileFields() []upload.FieldSpec
	StatusChoices() []string
	List(ctx context.Context, opts ListOptions) (Listing, error)
	Export(ctx context.Context, opts ListOptions, path string) error
	Show(ctx context.Context, id string) (any, error)
	Create(ctx context.Context, values url.Values, files map[string][]upload.File) (string, error)
	Update(ctx context.Context, id string, values url.Values, files map[string][]upload.File) error
	Edit(ctx context.Context, id string, in EditInput) (EditResult, error)
	Delete(ctx context.Context, id string, opts ListOptions) error
	SetStatus(ctx context.Context, id, status string, opts ListOptions) error
	Summary(ctx context.Context, opts ListOptions) (Summary, error)
}

// Binding assembles a Screen from a form and a list configuration.
type Binding[T any, D any, S comparable, VM any] struct {
	Key      string
	Label    string
	ListPath string
	// Form is nil for list-only screens.
	Form        *FormConfig[T, D]
	Lister      ListConfig[T, S, VM]
	ParseStatus func(string) (S, error)
	Statuses    []string
	Summarize   func(rows []T) Summary
}

func (b *Binding[T, D, S, VM]) Name() string  { return b.Key }
func (b *Binding[T, D, S, VM]) Title() string { return b.Label }
func (b *Binding[T, D, S, VM]) Route() string { return b.ListPath }

func (b *Binding[T, D, S, VM]) HasForm() bool { return b.Form != nil }

func (b *Binding[T, D, S, VM]) FormKeys() []string {
	if b.Form == nil {
		return nil
	}
	keys := slices.Collect(maps.Keys(jsonKeys(reflect.TypeOf((*D)(nil)).Elem())))
	slices.Sort(keys)
	return keys
}

func (b *Binding[T, D, S, VM]) FileFields() []upload.FieldSpec {
	if b.Form == nil {
		return nil
	}
	return b.Form.Files
}

func (b *Binding[T, D, S, VM]) StatusChoices() []string { return b.Statuses }

func (b *Binding[T, D, S, VM]) load(ctx context.Context, opts ListOptions) (*ListController[T, S, VM], error) {
	l := NewList(b.Lister)
	if opts.Page > 1 {
		l.page = opts.Page
	}
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	l.SetSearch(opts.Search)
	l.SetCategory(opts.Category)
	return l, nil
}

func (b *Binding[T, D, S, VM]) List(ctx context.Context, opts ListOptions) (Listing, error) {
	l, err := b.load(ctx, opts)
	if err != nil {
		return Listing{}, err
	}
	table := export.TableOf(b.Label, l.Views())
	return Listing{
		Title:      b.Label,
		Headers:    table.Headers,
		Rows:       table.Rows,
		Page:       l.Page(),
		PageCount:  l.PageCount(),
		TotalItems: l.TotalItems(),
		HasPrev:    l.HasPrev(),
		HasNext:    l.HasNext(),
		Categories: l.Categories(),
	}, nil
}

// Export writes the filtered rows of the requested page to path.
func (b *Binding[T, D, S, VM]) Export(ctx context.Context, opts ListOptions, path string) error {
	l, err := b.load(ctx, opts)
	if err != nil {
		return err
	}
	return export.WriteFile(path, b.Label, l.Views())
}

func (b *Binding[T, D, S, VM]) Show(ctx context.Context, id string) (any, error) {
	if b.Form != nil {
		rec, err := b.Form.Store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	l, err := b.locate(ctx, id, ListOptions{})
	if err != nil {
		return nil, err
	}
	rec, ok := l.Find(id)
	if !ok {
		return nil, ErrRowNotFound
	}
	return rec, nil
}

func (b *Binding[T, D, S, VM]) fill(f *FormController[T, D], values url.Values, files map[string][]upload.File) error {
	if err := f.Apply(values); err != nil {
		return err
	}
	for field, fs := range files {
		if err := f.Attach(field, fs...); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binding[T, D, S, VM]) Create(ctx context.Context, values url.Values, files map[string][]upload.File) (string, error) {
	if b.Form == nil {
		return "", ErrNoForm
	}
	f := NewForm(*b.Form, "")
	if err := b.fill(f, values, files); err != nil {
		return "", err
	}
	rec, err := f.Submit(ctx)
	if err != nil {
		return "", err
	}
	return b.Lister.Access.ID(rec), nil
}

func (b *Binding[T, D, S, VM]) Update(ctx context.Context, id string, values url.Values, files map[string][]upload.File) error {
	_, err := b.Edit(ctx, id, EditInput{Values: values, Files: files})
	return err
}

// Edit loads record id, applies in and submits the full field set. An edit
// that changes nothing is not sent; it posts an informational notice.
func (b *Binding[T, D, S, VM]) Edit(ctx context.Context, id string, in EditInput) (EditResult, error) {
	if b.Form == nil {
		return EditResult{}, ErrNoForm
	}
	f := NewForm(*b.Form, id)
	if err := f.Load(ctx); err != nil {
		return EditResult{}, err
	}
	res := EditResult{Previews: f.Previews()}

	removals := slices.Clone(in.Remove)
	slices.SortStableFunc(removals, func(x, y RowRef) int { return y.Index - x.Index })
	for _, r := range removals {
		if err := f.RemoveRow(r.Key, r.Index); err != nil {
			return res, err
		}
	}
	for _, key := range in.Clear {
		if err := f.ClearRows(key); err != nil {
			return res, err
		}
	}
	if err := b.fill(f, in.Values, in.Files); err != nil {
		return res, err
	}

	patch, err := f.Changes()
	if err != nil {
		return res, err
	}
	for _, op := range patch {
		res.Changes = append(res.Changes, fmt.Sprintf("%s %s", op.Type, op.Path))
	}
	if !f.Dirty() {
		f.cfg.Surface.Info(f.cfg.Resource, "update", "No changes to save")
		return res, nil
	}
	if _, err := f.Submit(ctx); err != nil {
		return res, err
	}
	res.Submitted = true
	return res, nil
}

// locate loads the page holding id, walking later pages of a paginated
// list when the requested page does not have it.
func (b *Binding[T, D, S, VM]) locate(ctx context.Context, id string, opts ListOptions) (*ListController[T, S, VM], error) {
	l, err := b.load(ctx, opts)
	if err != nil {
		return nil, err
	}
	if _, ok := l.Find(id); ok || b.Lister.PageSize <= 0 {
		return l, nil
	}
	for p := 1; p <= l.PageCount(); p++ {
		if p == l.Page() {
			continue
		}
		if err := l.GoTo(ctx, p); err != nil {
			return nil, err
		}
		if _, ok := l.Find(id); ok {
			return l, nil
		}
	}
	return l, nil
}

func (b *Binding[T, D, S, VM]) Delete(ctx context.Context, id string, opts ListOptions) error {
	l, err := b.locate(ctx, id, opts)
	if err != nil {
		return err
	}
	return l.Delete(ctx, id)
}

func (b *Binding[T, D, S, VM]) SetStatus(ctx context.Context, id, status string, opts ListOptions) error {
	if b.ParseStatus == nil {
		return fmt.Errorf("%s: %w", b.Label, ErrInvalidStatus)
	}
	s, err := b.ParseStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %s (choose from %s)", ErrInvalidStatus, status, strings.Join(b.Statuses, ", "))
	}
	l, err := b.locate(ctx, id, opts)
	if err != nil {
		return err
	}
	return l.SetStatus(ctx, id, s)
}

func (b *Binding[T, D, S, VM]) Summary(ctx context.Context, opts ListOptions) (Summary, error) {
	l, err := b.load(ctx, opts)
	if err != nil {
		return Summary{}, err
	}
	// Every card counts the same rows; with a filter, the filtered ones.
	first := Stat{Label: "Total", Value: fmt.Sprint(l.TotalItems())}
	if opts.Search != "" || opts.Category != "" {
		first = Stat{Label: "Matching", Value: fmt.Sprint(len(l.Filtered()))}
	}
	sum := Summary{Stats: []Stat{first}}
	if b.Summarize != nil {
		extra := b.Summarize(l.Filtered())
		sum.Stats = append(sum.Stats, extra.Stats...)
		sum.Series = extra.Series
	}
	return sum, nil
}

// ParseBoolStatus reads the published/unpublished vocabulary.
func ParseBoolStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "published", "publish", "active", "on":
		return true, nil
	case "false", "0", "no", "unpublished", "unpublish", "inactive", "off":
		return false, nil
	}
	return false, ErrInvalidStatus
}

// BoolStatuses is the choice list for boolean status screens.
var BoolStatuses = []string{"published", "unpublished"}
