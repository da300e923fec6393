package crud

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

var ErrRowNotFound = serrors.NewError("ROW_NOT_FOUND", "row is not in the current list", "")

// ListStore is the part of a Resource Client a list screen needs.
type ListStore[T any] interface {
	List(ctx context.Context, q restclient.Query) (httpapi.Page[T], error)
	Remove(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status any) (T, error)
}

// Accessor reads and patches the identity and status of a record.
type Accessor[T any, S comparable] struct {
	ID     func(T) string
	Status func(T) S
	// WithStatus returns a copy of the record with only its status changed.
	WithStatus func(T, S) T
}

type ListConfig[T any, S comparable, VM any] struct {
	Resource  string
	FormRoute string
	Store     ListStore[T]
	Access    Accessor[T, S]
	ToView    func(T) VM
	// PageSize enables server pagination; 0 fetches the whole collection.
	PageSize int
	// Search returns the fields free-text search looks at.
	Search   func(T) []string
	Category func(T) string
	Surface  *Surface
	Logger   *logrus.Logger
}

// ListController is the in-memory state of one list screen. Filtering,
// aggregates and row menus work on the fetched rows only. It is not safe for
// concurrent use.
type ListController[T any, S comparable, VM any] struct {
	cfg      ListConfig[T, S, VM]
	rows     []T
	total    int
	page     int
	search   string
	category string
	menus    map[string]bool
}

func NewList[T any, S comparable, VM any](cfg ListConfig[T, S, VM]) *ListController[T, S, VM] {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
		cfg.Logger.SetLevel(logrus.PanicLevel)
	}
	if cfg.Surface == nil {
		cfg.Surface = NewSurface(nil, nil, nil, cfg.Logger)
	}
	return &ListController[T, S, VM]{cfg: cfg, page: 1, menus: map[string]bool{}}
}

// Load fetches the current page, or the whole collection when unpaginated.
// On failure the previously loaded rows stay in place.
func (l *ListController[T, S, VM]) Load(ctx context.Context) error {
	q := restclient.Query{}
	if l.cfg.PageSize > 0 {
		q.Page = l.page
		q.Limit = l.cfg.PageSize
	}
	page, err := l.cfg.Store.List(ctx, q)
	if err != nil {
		l.cfg.Surface.Fail(l.cfg.Resource, "load", err)
		return err
	}
	l.rows = page.Data
	l.total = page.TotalItems
	l.menus = map[string]bool{}
	l.cfg.Logger.WithFields(logrus.Fields{
		"resource": l.cfg.Resource,
		"page":     l.page,
		"rows":     len(l.rows),
		"total":    l.total,
	}).Debug("list loaded")
	return nil
}

// Rows returns every fetched row, ignoring filters.
func (l *ListController[T, S, VM]) Rows() []T {
	return l.rows
}

func (l *ListController[T, S, VM]) SetSearch(q string) {
	l.search = q
}

func (l *ListController[T, S, VM]) SetCategory(c string) {
	l.category = c
}

// Filtered applies search and category to the fetched rows.
func (l *ListController[T, S, VM]) Filtered() []T {
	out := make([]T, 0, len(l.rows))
	for _, r := range l.rows {
		if l.cfg.Search != nil && !MatchesSearch(l.search, l.cfg.Search(r)...) {
			continue
		}
		if l.cfg.Category != nil && !MatchesCategory(l.category, l.cfg.Category(r)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (l *ListController[T, S, VM]) Views() []VM {
	rows := l.Filtered()
	out := make([]VM, 0, len(rows))
	for _, r := range rows {
		out = append(out, l.cfg.ToView(r))
	}
	return out
}

// Categories lists the distinct categories among fetched rows, sorted.
func (l *ListController[T, S, VM]) Categories() []string {
	if l.cfg.Category == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, r := range l.rows {
		c := strings.TrimSpace(l.cfg.Category(r))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (l *ListController[T, S, VM]) Page() int { return l.page }

func (l *ListController[T, S, VM]) TotalItems() int { return l.total }

func (l *ListController[T, S, VM]) PageCount() int {
	if l.cfg.PageSize <= 0 {
		return 1
	}
	n := (l.total + l.cfg.PageSize - 1) / l.cfg.PageSize
	if n < 1 {
		return 1
	}
	return n
}

func (l *ListController[T, S, VM]) HasPrev() bool { return l.page > 1 }

func (l *ListController[T, S, VM]) HasNext() bool { return l.page < l.PageCount() }

// GoTo changes page and re-fetches. Out of range pages are clamped.
func (l *ListController[T, S, VM]) GoTo(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	if l.total > 0 && page > l.PageCount() {
		page = l.PageCount()
	}
	prev := l.page
	l.page = page
	if err := l.Load(ctx); err != nil {
		l.page = prev
		return err
	}
	return nil
}

func (l *ListController[T, S, VM]) Next(ctx context.Context) error {
	if !l.HasNext() {
		return nil
	}
	return l.GoTo(ctx, l.page+1)
}

func (l *ListController[T, S, VM]) Prev(ctx context.Context) error {
	if !l.HasPrev() {
		return nil
	}
	return l.GoTo(ctx, l.page-1)
}

// EditRoute is the form route for an existing record.
func (l *ListController[T, S, VM]) EditRoute(id string) string {
	return l.cfg.FormRoute + "?id=" + url.QueryEscape(id)
}

// Edit navigates to the form of row id.
func (l *ListController[T, S, VM]) Edit(ctx context.Context, id string) {
	l.CloseMenus()
	l.cfg.Surface.Navigate(ctx, l.EditRoute(id))
}

// Find returns the fetched row with the given id.
func (l *ListController[T, S, VM]) Find(id string) (T, bool) {
	if i := l.index(id); i >= 0 {
		return l.rows[i], true
	}
	var zero T
	return zero, false
}

func (l *ListController[T, S, VM]) index(id string) int {
	for i, r := range l.rows {
		if l.cfg.Access.ID(r) == id {
			return i
		}
	}
	return -1
}

// Delete asks twice, removes the record on the server, then drops the row
// locally without re-fetching.
func (l *ListController[T, S, VM]) Delete(ctx context.Context, id string) error {
	l.CloseMenus()
	if l.index(id) < 0 {
		return ErrRowNotFound
	}
	err := l.cfg.Surface.Confirm(ctx, l.cfg.Resource, "delete",
		Prompt{
			Title:   "Are you sure?",
			Message: fmt.Sprintf("You are about to delete %s %s.", l.cfg.Resource, id),
		},
		Prompt{
			Title:   "This cannot be undone",
			Message: fmt.Sprintf("Delete %s %s permanently?", l.cfg.Resource, id),
		},
	)
	if err != nil {
		return err
	}
	if err := l.cfg.Store.Remove(ctx, id); err != nil {
		l.cfg.Surface.Fail(l.cfg.Resource, "delete", err)
		return err
	}
	if i := l.index(id); i >= 0 {
		l.rows = slices.Delete(slices.Clone(l.rows), i, i+1)
		if l.total > 0 {
			l.total--
		}
	}
	delete(l.menus, id)
	l.cfg.Surface.Success(l.cfg.Resource, "delete", fmt.Sprintf("%s deleted successfully", l.cfg.Resource))
	return nil
}

// SetStatus asks once, sends the new status, then patches only the status
// of the local row.
func (l *ListController[T, S, VM]) SetStatus(ctx context.Context, id string, status S) error {
	l.CloseMenus()
	if l.index(id) < 0 {
		return ErrRowNotFound
	}
	err := l.cfg.Surface.Confirm(ctx, l.cfg.Resource, "status", Prompt{
		Title:   "Change status?",
		Message: fmt.Sprintf("Set %s %s status to %v?", l.cfg.Resource, id, status),
	})
	if err != nil {
		return err
	}
	if _, err := l.cfg.Store.SetStatus(ctx, id, status); err != nil {
		l.cfg.Surface.Fail(l.cfg.Resource, "status", err)
		return err
	}
	if i := l.index(id); i >= 0 {
		rows := slices.Clone(l.rows)
		rows[i] = l.cfg.Access.WithStatus(rows[i], status)
		l.rows = rows
	}
	l.cfg.Surface.Success(l.cfg.Resource, "status", fmt.Sprintf("%s status updated", l.cfg.Resource))
	return nil
}

// ToggleMenu opens the row menu of id, closing any other.
func (l *ListController[T, S, VM]) ToggleMenu(id string) {
	open := l.menus[id]
	l.menus = map[string]bool{}
	if !open {
		l.menus[id] = true
	}
}

func (l *ListController[T, S, VM]) MenuOpen(id string) bool {
	return l.menus[id]
}

func (l *ListController[T, S, VM]) CloseMenus() {
	clear(l.menus)
}
