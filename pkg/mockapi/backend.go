// Package mockapi is an in-memory implementation of the admin REST
// contract: collections under /api/<resource>/, single records addressed
// with ?id=, page/limit pagination, JSON or multipart bodies and
// {message, error} failure bodies. It backs local runs and tests.
package mockapi

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"path"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/middleware"
)

// Record is a stored resource in its JSON shape.
type Record = map[string]any

// Reject is returned by collection rules to refuse a write.
type Reject struct {
	Status int
	// Message goes to the "message" member and Detail to "error".
	Message string
	Detail  string
}

func (r *Reject) Error() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Detail
}

type CollectionOptions[T any] struct {
	// Label is used in messages, e.g. "Doctor".
	Label string
	// IDKey is the JSON member holding the identifier. Defaults to "id".
	IDKey string
	// Envelope wraps single-record and unpaginated list responses in
	// {"data": ...}.
	Envelope bool
	// Validate runs on every decoded write.
	Validate func(T) error
	// Unique lists JSON members that must not repeat across records.
	Unique []string
}

type asset struct {
	contentType string
	data        []byte
}

type collection struct {
	name     string
	label    string
	idKey    string
	envelope bool
	unique   []string
	lists    map[string]bool
	decode   func(existing Record, r *http.Request, maxUpload int64) (Record, error)

	records []Record
	nextID  int64
}

type failure struct {
	status int
	body   httpapi.ErrorEnvelope
}

// Backend owns the collections and uploaded assets.
type Backend struct {
	mu            sync.Mutex
	collections   map[string]*collection
	assets        map[string]asset
	failures      map[string][]failure
	maxUploadSize int64
}

func NewBackend(maxUploadSize int64) *Backend {
	if maxUploadSize <= 0 {
		maxUploadSize = 32 << 20
	}
	return &Backend{
		collections:   map[string]*collection{},
		assets:        map[string]asset{},
		failures:      map[string][]failure{},
		maxUploadSize: maxUploadSize,
	}
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

// Register adds a collection whose records have the JSON shape of T.
// Writes are decoded into T, so malformed fields are rejected the way a
// typed backend would reject them.
func Register[T any](b *Backend, name string, opts CollectionOptions[T]) {
	c := &collection{
		name:     name,
		label:    opts.Label,
		idKey:    opts.IDKey,
		envelope: opts.Envelope,
		unique:   opts.Unique,
		lists:    sliceFields(reflect.TypeOf((*T)(nil)).Elem()),
	}
	if c.label == "" {
		c.label = name
	}
	if c.idKey == "" {
		c.idKey = "id"
	}
	c.decode = func(existing Record, r *http.Request, maxUpload int64) (Record, error) {
		var rec T
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mediaType {
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxUpload); err != nil {
				return nil, &Reject{Status: http.StatusBadRequest, Detail: "invalid multipart body"}
			}
			values, sent := splitLists(r.MultipartForm.Value, c.lists)
			if existing != nil {
				base := maps.Clone(existing)
				for _, name := range sent {
					base[name] = []any{}
				}
				if err := remarshal(base, &rec); err != nil {
					return nil, err
				}
			}
			if err := formDecoder.Decode(&rec, values); err != nil {
				return nil, &Reject{Status: http.StatusBadRequest, Detail: err.Error()}
			}
		default:
			if existing != nil {
				if err := remarshal(existing, &rec); err != nil {
					return nil, err
				}
			}
			body, err := io.ReadAll(io.LimitReader(r.Body, maxUpload))
			if err != nil {
				return nil, errors.Wrap(err, "read body")
			}
			if len(strings.TrimSpace(string(body))) > 0 {
				if err := json.Unmarshal(body, &rec); err != nil {
					return nil, &Reject{Status: http.StatusBadRequest, Detail: "invalid request body"}
				}
			}
		}
		if opts.Validate != nil {
			if err := opts.Validate(rec); err != nil {
				var rej *Reject
				if errors.As(err, &rej) {
					return nil, rej
				}
				return nil, &Reject{Status: http.StatusBadRequest, Message: err.Error()}
			}
		}
		out := Record{}
		if err := remarshal(rec, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.collections[name] = c
}

// sliceFields reports which top-level JSON members of t are arrays.
func sliceFields(t reflect.Type) map[string]bool {
	out := map[string]bool{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = f.Type.Kind() == reflect.Slice
	}
	return out
}

// splitLists drops the "name[]" empty-list markers from values and reports
// every list member the form sends, so an update replaces those lists
// instead of writing rows over the stored ones.
func splitLists(values map[string][]string, lists map[string]bool) (map[string][]string, []string) {
	out := make(map[string][]string, len(values))
	seen := map[string]bool{}
	for key, vals := range values {
		name, rest, indexed := strings.Cut(key, "[")
		if lists[name] {
			seen[name] = true
			if indexed && rest == "]" {
				continue
			}
		}
		out[key] = vals
	}
	return out, slices.Sorted(maps.Keys(seen))
}

func remarshal(in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decode record")
}

// Seed stores records as given, assigning ids to those without one.
func (b *Backend) Seed(name string, records ...Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.collections[name]
	if !ok {
		panic(fmt.Sprintf("mockapi: unknown collection %q", name))
	}
	for _, rec := range records {
		cp := Record{}
		for k, v := range rec {
			cp[k] = v
		}
		if id, ok := cp[c.idKey]; ok && id != nil {
			if n, err := strconv.ParseInt(fmt.Sprint(id), 10, 64); err == nil && n > c.nextID {
				c.nextID = n
			}
		} else {
			c.nextID++
			cp[c.idKey] = c.nextID
		}
		c.records = append(c.records, cp)
	}
}

// Records returns a copy of a collection's records in insertion order.
func (b *Backend) Records(name string) []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.collections[name]
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		cp := Record{}
		for k, v := range r {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out
}

// Names lists registered collections, sorted.
func (b *Backend) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.collections))
	for n := range b.collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FailNext makes the next request to a collection fail with status and body.
func (b *Backend) FailNext(name string, status int, body httpapi.ErrorEnvelope) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[name] = append(b.failures[name], failure{status: status, body: body})
}

func (b *Backend) Key() string {
	return "/api"
}

func (b *Backend) Register(r *mux.Router) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	r.HandleFunc("/api/{resource}/", b.serveCollection).Methods(methods...)
	r.HandleFunc("/api/{resource}", b.serveCollection).Methods(methods...)
	r.PathPrefix("/media/").HandlerFunc(b.serveAsset).Methods(http.MethodGet)
}

func (b *Backend) serveCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]

	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.collections[name]
	if !ok {
		_ = httpapi.WriteError(w, http.StatusNotFound, "UNKNOWN_RESOURCE", fmt.Sprintf("unknown resource %q", name), nil)
		return
	}
	if queue := b.failures[name]; len(queue) > 0 {
		b.failures[name] = queue[1:]
		logRequest(r, "injected failure")
		_ = httpapi.WriteJSON(w, queue[0].status, queue[0].body)
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	switch {
	case r.Method == http.MethodGet && id == "":
		b.list(w, r, c)
	case r.Method == http.MethodGet:
		b.get(w, c, id)
	case r.Method == http.MethodPost:
		b.create(w, r, c)
	case id == "":
		_ = httpapi.WriteJSON(w, http.StatusBadRequest, httpapi.ErrorEnvelope{Error: "id is required"})
	case r.Method == http.MethodPut:
		b.update(w, r, c, id)
	case r.Method == http.MethodDelete:
		b.remove(w, c, id)
	}
}

func (b *Backend) list(w http.ResponseWriter, r *http.Request, c *collection) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page > 0 && limit > 0 {
		start := min((page-1)*limit, len(c.records))
		end := min(start+limit, len(c.records))
		_ = httpapi.WriteJSON(w, http.StatusOK, httpapi.Page[Record]{
			Data:       append([]Record{}, c.records[start:end]...),
			TotalItems: len(c.records),
		})
		return
	}
	data := append([]Record{}, c.records...)
	if c.envelope {
		_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"data": data})
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, data)
}

func (c *collection) index(id string) int {
	for i, rec := range c.records {
		if fmt.Sprint(rec[c.idKey]) == id {
			return i
		}
	}
	return -1
}

func (b *Backend) writeRecord(w http.ResponseWriter, status int, c *collection, rec Record) {
	if c.envelope {
		_ = httpapi.WriteJSON(w, status, map[string]any{"data": rec})
		return
	}
	_ = httpapi.WriteJSON(w, status, rec)
}

func (b *Backend) notFound(w http.ResponseWriter, c *collection) {
	_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", c.label+" not found", nil)
}

func (b *Backend) get(w http.ResponseWriter, c *collection, id string) {
	i := c.index(id)
	if i < 0 {
		b.notFound(w, c)
		return
	}
	b.writeRecord(w, http.StatusOK, c, c.records[i])
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request, c *collection) {
	rec, err := c.decode(nil, r, b.maxUploadSize)
	if err != nil {
		writeReject(w, err)
		return
	}
	id := c.nextID + 1
	rec[c.idKey] = id
	if err := c.checkUnique(rec, -1); err != nil {
		writeReject(w, err)
		return
	}
	if err := b.storeFiles(r, c, strconv.FormatInt(id, 10), rec); err != nil {
		writeReject(w, err)
		return
	}
	c.nextID = id
	c.records = append(c.records, rec)
	logRequest(r, c.label+" created")
	b.writeRecord(w, http.StatusCreated, c, rec)
}

func (b *Backend) update(w http.ResponseWriter, r *http.Request, c *collection, id string) {
	i := c.index(id)
	if i < 0 {
		b.notFound(w, c)
		return
	}
	rec, err := c.decode(c.records[i], r, b.maxUploadSize)
	if err != nil {
		writeReject(w, err)
		return
	}
	rec[c.idKey] = c.records[i][c.idKey]
	if err := c.checkUnique(rec, i); err != nil {
		writeReject(w, err)
		return
	}
	if err := b.storeFiles(r, c, id, rec); err != nil {
		writeReject(w, err)
		return
	}
	c.records[i] = rec
	b.writeRecord(w, http.StatusOK, c, rec)
}

func (b *Backend) remove(w http.ResponseWriter, c *collection, id string) {
	i := c.index(id)
	if i < 0 {
		b.notFound(w, c)
		return
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message": c.label + " deleted"})
}

func (c *collection) checkUnique(rec Record, self int) error {
	for _, key := range c.unique {
		val := strings.TrimSpace(fmt.Sprint(rec[key]))
		if val == "" {
			continue
		}
		for i, other := range c.records {
			if i != self && strings.EqualFold(fmt.Sprint(other[key]), val) {
				return &Reject{Status: http.StatusConflict, Detail: fmt.Sprintf("%s %s already exists", key, val)}
			}
		}
	}
	return nil
}

// storeFiles keeps uploaded parts in memory and writes their paths into the
// record. Fields without a new upload keep their current path.
func (b *Backend) storeFiles(r *http.Request, c *collection, id string, rec Record) error {
	if r.MultipartForm == nil {
		return nil
	}
	for field, headers := range r.MultipartForm.File {
		paths := make([]string, 0, len(headers))
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				return errors.Wrap(err, "open upload")
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return errors.Wrap(err, "read upload")
			}
			p := path.Join("/media", c.name, id, field, path.Base(h.Filename))
			b.assets[p] = asset{contentType: h.Header.Get("Content-Type"), data: data}
			paths = append(paths, p)
		}
		if c.lists[field] {
			rec[field] = paths
			continue
		}
		rec[field] = paths[len(paths)-1]
	}
	return nil
}

func (b *Backend) serveAsset(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	a, ok := b.assets[r.URL.Path]
	b.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	if a.contentType != "" {
		w.Header().Set("Content-Type", a.contentType)
	}
	_, _ = w.Write(a.data)
}

func writeReject(w http.ResponseWriter, err error) {
	var rej *Reject
	if !errors.As(err, &rej) {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
		return
	}
	status := rej.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	_ = httpapi.WriteJSON(w, status, httpapi.ErrorEnvelope{Message: rej.Message, Error: rej.Detail})
}

// logRequest is a no-op outside WithLogger.
func logRequest(r *http.Request, msg string) {
	if entry, ok := middleware.UseLogger(r.Context()); ok {
		entry.Debug(msg)
	}
}
