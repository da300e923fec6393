package crud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/wI2L/jsondiff"

	"github.com/iota-uz/pharma-admin/pkg/constants"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Store is the part of a Resource Client a form needs.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, payload *restclient.Payload) (T, error)
	Update(ctx context.Context, id string, payload *restclient.Payload) (T, error)
}

// Normalizer is implemented by form values that trim or canonicalize input
// before validation.
type Normalizer interface {
	Normalize()
}

// CrossChecker is implemented by form values with rules spanning several
// fields, such as a date range.
type CrossChecker interface {
	CrossCheck() serrors.ValidationErrors
}

type FormConfig[T, D any] struct {
	// Resource is the display name used in notices, e.g. "Doctor".
	Resource  string
	ListRoute string
	Store     Store[T]
	// FromRecord maps a fetched record onto form values for edit pre-fill.
	FromRecord func(T) D
	Files      []upload.FieldSpec
	// Assets returns the server paths of a record's existing files, keyed by
	// file field.
	Assets   func(T) map[string]string
	AssetURL func(path string) string
	// Labels overrides display labels by field path.
	Labels  map[string]string
	Surface *Surface
	Logger  *logrus.Logger
}

// FormController holds the state of one create or edit form. The mode is
// fixed at construction. It is not safe for concurrent use.
type FormController[T, D any] struct {
	cfg    FormConfig[T, D]
	mode   Mode
	id     string
	loaded bool

	values   D
	snapshot []byte
	files    map[string][]upload.File
	previews map[string]string
	touched  map[string]bool
	errs     serrors.ValidationErrors
	keys     map[string]string
}

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	dec := form.NewDecoder()
	dec.SetTagName("json")
	dec.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if strings.TrimSpace(vals[0]) == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(strings.TrimSpace(vals[0]))
	}, decimal.Decimal{})
	return dec
}

// NewForm builds a controller in edit mode when id is non-empty and in
// create mode otherwise.
func NewForm[T, D any](cfg FormConfig[T, D], id string) *FormController[T, D] {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
		cfg.Logger.SetLevel(logrus.PanicLevel)
	}
	if cfg.Surface == nil {
		cfg.Surface = NewSurface(nil, nil, nil, cfg.Logger)
	}
	c := &FormController[T, D]{
		cfg:  cfg,
		id:   strings.TrimSpace(id),
		keys: jsonKeys(reflect.TypeOf((*D)(nil)).Elem()),
	}
	if c.id != "" {
		c.mode = ModeEdit
	}
	c.reset()
	return c
}

func (c *FormController[T, D]) reset() {
	var zero D
	c.values = zero
	c.snapshot = mustJSON(c.values)
	c.files = map[string][]upload.File{}
	c.previews = map[string]string{}
	c.touched = map[string]bool{}
	c.errs = serrors.ValidationErrors{}
}

func (c *FormController[T, D]) Mode() Mode { return c.mode }

func (c *FormController[T, D]) ID() string { return c.id }

func (c *FormController[T, D]) Values() D { return c.values }

// Load pre-fills an edit form from the server. It fetches at most once;
// create forms have nothing to load.
func (c *FormController[T, D]) Load(ctx context.Context) error {
	if c.mode != ModeEdit || c.loaded {
		return nil
	}
	rec, err := c.cfg.Store.Get(ctx, c.id)
	if err != nil {
		c.cfg.Surface.Fail(c.cfg.Resource, "load", err)
		return err
	}
	c.values = c.cfg.FromRecord(rec)
	c.snapshot = mustJSON(c.values)
	if c.cfg.Assets != nil {
		for field, path := range c.cfg.Assets(rec) {
			if path == "" {
				continue
			}
			if c.cfg.AssetURL != nil {
				path = c.cfg.AssetURL(path)
			}
			c.previews[field] = path
		}
	}
	c.loaded = true
	return nil
}

// Apply decodes key=value input (server keys, rows as designations[0] or
// villages[1].name) onto the current values and marks the fields touched.
func (c *FormController[T, D]) Apply(values url.Values) error {
	if err := formDecoder.Decode(&c.values, values); err != nil {
		return fmt.Errorf("decode form values: %w", err)
	}
	for key := range values {
		top := key
		if i := strings.IndexAny(key, "[."); i >= 0 {
			top = key[:i]
		}
		if field, ok := c.keys[top]; ok {
			c.touched[field] = true
		}
	}
	return nil
}

// Edit changes values in place.
func (c *FormController[T, D]) Edit(fn func(*D)) {
	fn(&c.values)
}

// Blur marks field touched and re-validates it, returning its message or "".
// Rows are addressed by their top-level field: Blur("Villages") covers every
// village row.
func (c *FormController[T, D]) Blur(field string) string {
	c.touched[field] = true
	all := c.check(false)
	for path := range c.errs {
		if coversPath(field, path) {
			delete(c.errs, path)
		}
	}
	msg := ""
	for path, m := range all {
		if coversPath(field, path) {
			c.errs[path] = m
			if path == field || msg == "" {
				msg = m
			}
		}
	}
	return msg
}

var ErrNoRow = serrors.NewError("NO_ROW", "no such row", "")

// rowEditor is the index-free face of Rows used by key-addressed edits.
type rowEditor interface {
	Remove(k int) bool
	Clear()
	Len() int
}

func (c *FormController[T, D]) rows(key string) (rowEditor, error) {
	field, ok := c.keys[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrNoRow, c.cfg.Resource, key)
	}
	v := reflect.ValueOf(&c.values).Elem().FieldByName(field)
	rows, ok := v.Addr().Interface().(rowEditor)
	if !ok {
		return nil, fmt.Errorf("%w: %s field %q has no rows", ErrNoRow, c.cfg.Resource, key)
	}
	return rows, nil
}

// RemoveRow drops row k of the repeated field key (e.g. "villages"); later
// rows shift down by one.
func (c *FormController[T, D]) RemoveRow(key string, k int) error {
	rows, err := c.rows(key)
	if err != nil {
		return err
	}
	if !rows.Remove(k) {
		return fmt.Errorf("%w: %s[%d] (%s has %d rows)", ErrNoRow, key, k, key, rows.Len())
	}
	c.touched[c.keys[key]] = true
	return nil
}

// ClearRows drops every row of the repeated field key.
func (c *FormController[T, D]) ClearRows(key string) error {
	rows, err := c.rows(key)
	if err != nil {
		return err
	}
	rows.Clear()
	c.touched[c.keys[key]] = true
	return nil
}

func coversPath(field, path string) bool {
	return path == field || strings.HasPrefix(path, field+"[") || strings.HasPrefix(path, field+".")
}

// Attach sets the files of a file field and checks them immediately.
func (c *FormController[T, D]) Attach(field string, files ...upload.File) error {
	spec, ok := c.fileSpec(field)
	if !ok {
		return fmt.Errorf("%s has no file field %q", c.cfg.Resource, field)
	}
	c.files[field] = files
	c.touched[field] = true
	delete(c.errs, field)
	if msg := spec.Check(files, c.mode == ModeCreate); msg != "" {
		c.errs[field] = msg
	}
	return nil
}

// Detach clears a file field; on edit that keeps the existing asset.
func (c *FormController[T, D]) Detach(field string) {
	delete(c.files, field)
	delete(c.errs, field)
}

func (c *FormController[T, D]) Files(field string) []upload.File {
	return c.files[field]
}

// Preview is the display URL of the asset the record already has.
func (c *FormController[T, D]) Preview(field string) string {
	return c.previews[field]
}

// Previews returns every loaded asset URL by file field.
func (c *FormController[T, D]) Previews() map[string]string {
	return maps.Clone(c.previews)
}

func (c *FormController[T, D]) Touched(field string) bool {
	return c.touched[field]
}

func (c *FormController[T, D]) Errors() serrors.ValidationErrors {
	out := make(serrors.ValidationErrors, len(c.errs))
	out.Merge(c.errs)
	return out
}

// Changes is the JSON diff between the loaded values and the current ones.
func (c *FormController[T, D]) Changes() (jsondiff.Patch, error) {
	return jsondiff.CompareJSON(c.snapshot, mustJSON(c.values))
}

// Dirty reports whether any value or file differs from what was loaded.
func (c *FormController[T, D]) Dirty() bool {
	if len(c.files) > 0 {
		return true
	}
	patch, err := c.Changes()
	return err != nil || len(patch) > 0
}

// Validate runs every field, cross-field and file rule.
func (c *FormController[T, D]) Validate() serrors.ValidationErrors {
	c.errs = c.check(true)
	return c.Errors()
}

func (c *FormController[T, D]) check(normalize bool) serrors.ValidationErrors {
	if n, ok := any(&c.values).(Normalizer); ok && normalize {
		n.Normalize()
	}
	errs := serrors.ValidationErrors{}
	if err := constants.Validate.Struct(&c.values); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs.Merge(serrors.ProcessValidatorErrors(verrs, func(path string) string {
				return fieldLabel(c.cfg.Labels, path)
			}))
		} else {
			errs.Add("_", err.Error())
		}
	}
	if cc, ok := any(&c.values).(CrossChecker); ok {
		errs.Merge(cc.CrossCheck())
	}
	for _, spec := range c.cfg.Files {
		if msg := spec.Check(c.files[spec.Field], c.mode == ModeCreate); msg != "" {
			errs.Add(spec.Field, msg)
		}
	}
	return errs
}

// Submit validates and sends the form. Invalid input returns
// serrors.ValidationErrors without any network call. On success the form
// notifies, navigates to the list route and resets; on failure it notifies
// and keeps the entered values.
func (c *FormController[T, D]) Submit(ctx context.Context) (T, error) {
	var zero T
	if errs := c.Validate(); len(errs) > 0 {
		c.cfg.Logger.WithField("resource", c.cfg.Resource).WithField("errors", errs.Error()).Debug("form invalid")
		return zero, errs
	}

	payload := c.Payload()
	var (
		rec    T
		err    error
		action string
	)
	if c.mode == ModeEdit {
		action = "update"
		rec, err = c.cfg.Store.Update(ctx, c.id, payload)
	} else {
		action = "create"
		rec, err = c.cfg.Store.Create(ctx, payload)
	}
	if err != nil {
		c.cfg.Surface.Fail(c.cfg.Resource, action, err)
		return zero, err
	}

	c.cfg.Surface.Success(c.cfg.Resource, action, fmt.Sprintf("%s %sd successfully", c.cfg.Resource, action))
	c.cfg.Surface.Navigate(ctx, c.cfg.ListRoute)
	c.reset()
	c.loaded = false
	return rec, nil
}

// Payload is the request body for the current values: the full field set,
// plus a part per attached file. File fields without a new file are left out.
func (c *FormController[T, D]) Payload() *restclient.Payload {
	var parts []restclient.FilePart
	for _, spec := range c.cfg.Files {
		for _, f := range c.files[spec.Field] {
			parts = append(parts, f.Part(spec.Field))
		}
	}
	return restclient.NewPayload(c.values, parts...)
}

func (c *FormController[T, D]) fileSpec(field string) (upload.FieldSpec, bool) {
	for _, s := range c.cfg.Files {
		if s.Field == field {
			return s, true
		}
	}
	return upload.FieldSpec{}, false
}

// jsonKeys maps top-level json keys of t to Go field names.
func jsonKeys(t reflect.Type) map[string]string {
	keys := map[string]string{}
	if t.Kind() != reflect.Struct {
		return keys
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys[name] = f.Name
	}
	return keys
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return b
}
