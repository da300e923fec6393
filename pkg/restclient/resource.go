package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
)

// Query narrows a list call. Zero Page/Limit means an unpaginated fetch.
type Query struct {
	Page   int
	Limit  int
	Params url.Values
}

func (q Query) values() url.Values {
	v := url.Values{}
	for k, vals := range q.Params {
		v[k] = append([]string(nil), vals...)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Resource is the per-domain client. Single records are addressed with a
// query parameter (?id=) on the collection path, not a path segment.
type Resource[T any] struct {
	client  *Client
	name    string
	path    string
	idParam string
}

// NewResource binds T to {base}/api/<name>/.
func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{
		client:  client,
		name:    name,
		path:    "api/" + strings.Trim(name, "/") + "/",
		idParam: "id",
	}
}

// WithPath overrides the collection path, relative to the base URL.
func (r *Resource[T]) WithPath(path string) *Resource[T] {
	r.path = strings.TrimLeft(path, "/")
	return r
}

// WithIDParam overrides the query parameter carrying the record id.
func (r *Resource[T]) WithIDParam(param string) *Resource[T] {
	r.idParam = param
	return r
}

func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) Client() *Client { return r.client }

func (r *Resource[T]) byID(id string) url.Values {
	return url.Values{r.idParam: []string{id}}
}

func (r *Resource[T]) op(action string) string {
	return r.name + "." + action
}

func (r *Resource[T]) List(ctx context.Context, q Query) (httpapi.Page[T], error) {
	body, err := r.client.do(ctx, call{op: r.op("list"), method: http.MethodGet, path: r.path, query: q.values()})
	if err != nil {
		return httpapi.Page[T]{}, err
	}
	page, err := decodePage[T](body)
	if err != nil {
		return httpapi.Page[T]{}, &Error{Kind: KindDecode, Op: r.op("list"), Message: FallbackMessage, Err: err}
	}
	return page, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	return r.one(ctx, call{op: r.op("get"), method: http.MethodGet, path: r.path, query: r.byID(id)})
}

func (r *Resource[T]) Create(ctx context.Context, payload *Payload) (T, error) {
	return r.one(ctx, call{op: r.op("create"), method: http.MethodPost, path: r.path, payload: payload})
}

// Update replaces the record. The payload is sent as given; there is no
// diffing against the server copy.
func (r *Resource[T]) Update(ctx context.Context, id string, payload *Payload) (T, error) {
	return r.one(ctx, call{op: r.op("update"), method: http.MethodPut, path: r.path, query: r.byID(id), payload: payload})
}

func (r *Resource[T]) Remove(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, call{op: r.op("remove"), method: http.MethodDelete, path: r.path, query: r.byID(id)})
	return err
}

// SetStatus sends the partial body {"status": status} to the update endpoint.
func (r *Resource[T]) SetStatus(ctx context.Context, id string, status any) (T, error) {
	payload := NewPayload(map[string]any{"status": status})
	return r.one(ctx, call{op: r.op("status"), method: http.MethodPut, path: r.path, query: r.byID(id), payload: payload})
}

func (r *Resource[T]) one(ctx context.Context, in call) (T, error) {
	body, err := r.client.do(ctx, in)
	if err != nil {
		var zero T
		return zero, err
	}
	rec, err := decodeRecord[T](body)
	if err != nil {
		var zero T
		return zero, &Error{Kind: KindDecode, Op: in.op, Message: FallbackMessage, Err: err}
	}
	return rec, nil
}
